package genson

import (
	"github.com/starkandwayne/goutils/ansi"
)

// RecursionError is returned when entering a node would push the evaluation
// past the configured recursion ceiling. It terminates the whole run.
type RecursionError struct {
	Depth int
}

// Error ...
func (e RecursionError) Error() string {
	return ansi.Sprintf("@R{recursion depth exceeded} @r{(%d levels)}", e.Depth)
}

// OrphanParentError is returned for a parent-qualified write on a context
// that has no parent frame (or a write to the bare path "parent").
type OrphanParentError struct {
	Path string
}

// Error ...
func (e OrphanParentError) Error() string {
	return ansi.Sprintf("@R{no parent scope for write to} @r{%s}", e.Path)
}
