package genson

import (
	"strings"

	. "github.com/AlseFum/genson/log"
)

const parentPrefix = "parent."

// tokenizePath splits a path string into segment tokens. Dots separate, a
// bracketed group emits its literal contents as one token, and a run of
// identifier characters emits one token. An unmatched '[' stops
// tokenization at that point.
func tokenizePath(path string) []string {
	var tokens []string

	for pos := 0; pos < len(path); {
		c := path[pos]

		switch {
		case c == '.':
			pos++

		case c == '[':
			end := strings.IndexByte(path[pos:], ']')
			if end < 0 {
				return tokens
			}
			tokens = append(tokens, path[pos+1:pos+end])
			pos += end + 1

		case isPathRune(c):
			start := pos
			for pos < len(path) && isPathRune(path[pos]) {
				pos++
			}
			tokens = append(tokens, path[start:pos])

		default:
			pos++
		}
	}

	return tokens
}

func isPathRune(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '$'
}

func isIndexToken(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func indexOf(tok string) int {
	n := 0
	for i := 0; i < len(tok); i++ {
		n = n*10 + int(tok[i]-'0')
	}
	return n
}

// GetPath resolves a path against the context's scope chain. A path equal
// to "parent" yields the parent scope itself; a "parent." prefix walks out
// one frame. Any step that misses yields nil.
func (ctx *Context) GetPath(path string) interface{} {
	if path == "parent" {
		if ctx.Parent == nil {
			return nil
		}
		return ctx.Parent.Scope
	}
	if strings.HasPrefix(path, parentPrefix) {
		if ctx.Parent == nil {
			return nil
		}
		return ctx.Parent.GetPath(path[len(parentPrefix):])
	}

	var cur interface{} = ctx.Scope
	for _, tok := range tokenizePath(path) {
		switch c := cur.(type) {
		case map[string]interface{}:
			cur = c[tok]
		case []interface{}:
			if !isIndexToken(tok) {
				return nil
			}
			i := indexOf(tok)
			if i >= len(c) {
				return nil
			}
			cur = c[i]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// SetPath writes a value into the scope at the given path, creating missing
// intermediate mappings as it goes. Writes never create sequences. An empty
// path is a no-op; a parent-qualified write on a parentless context is a
// terminal error.
func (ctx *Context) SetPath(path string, value interface{}) error {
	if path == "parent" {
		return OrphanParentError{Path: path}
	}
	if strings.HasPrefix(path, parentPrefix) {
		if ctx.Parent == nil {
			return OrphanParentError{Path: path}
		}
		return ctx.Parent.SetPath(path[len(parentPrefix):], value)
	}

	tokens := tokenizePath(path)
	if len(tokens) == 0 {
		DEBUG("ignoring write to empty path %q", path)
		return nil
	}

	cur := ctx.Scope
	for _, tok := range tokens[:len(tokens)-1] {
		next, ok := cur[tok].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			cur[tok] = next
		}
		cur = next
	}
	cur[tokens[len(tokens)-1]] = value
	return nil
}
