package genson

import (
	. "github.com/AlseFum/genson/log"
)

// NodeOperator evaluates one node kind and emits generated text.
type NodeOperator interface {
	Run(ctx *Context, node map[string]interface{}) (string, error)
}

var nodeOpRegistry = map[string]NodeOperator{}

// RegisterNodeOp registers a node operator under its canonical tag.
func RegisterNodeOp(tag string, op NodeOperator) {
	nodeOpRegistry[tag] = op
}

// NodeOperatorFor returns the operator for a canonical tag, or nil.
func NodeOperatorFor(tag string) NodeOperator {
	return nodeOpRegistry[tag]
}

// tagAliases maps alternate tag spellings onto canonical ones. var has no
// evaluator of its own and dispatches as ref.
var tagAliases = map[string]string{
	"seq":      "sequence",
	"Roulette": "roulette",
	"repeat":   "repetition",
	"expr":     "expression",
	"var":      "ref",
}

func canonicalTag(tag string) string {
	if canonical, ok := tagAliases[tag]; ok {
		return canonical
	}
	return tag
}

// evaluateNode evaluates a schema node to its generated text. Entry bumps
// the recursion depth through a sibling context; primitives stringify,
// sequences concatenate, and mappings dispatch on their canonical tag.
// Unknown tags emit nothing.
func evaluateNode(node interface{}, ctx *Context) (string, error) {
	c := ctx.sibling()
	if c.depth > c.limits.MaxDepth {
		return "", RecursionError{Depth: c.depth}
	}

	switch n := node.(type) {
	case nil:
		return "", nil

	case map[string]interface{}:
		tag := canonicalTag(Stringify(n["type"]))
		op := NodeOperatorFor(tag)
		if op == nil {
			DEBUG("no node operator registered for tag %q", tag)
			return "", nil
		}
		return op.Run(c, n)

	case []interface{}:
		out := ""
		for _, item := range n {
			s, err := evaluateNode(item, c)
			if err != nil {
				return "", err
			}
			out += s
		}
		return out, nil

	default:
		return Stringify(n), nil
	}
}

// NullNodeOperator emits nothing. Declarations (match, domain) reached
// through node dispatch land here.
type NullNodeOperator struct{}

// Run ...
func (NullNodeOperator) Run(_ *Context, _ map[string]interface{}) (string, error) {
	return "", nil
}

func init() {
	RegisterNodeOp("match", NullNodeOperator{})
	RegisterNodeOp("domain", NullNodeOperator{})
}
