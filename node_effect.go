package genson

import (
	. "github.com/AlseFum/genson/log"
)

// SetOperator evaluates its value and writes it at path. Emits nothing.
type SetOperator struct{}

// Run ...
func (SetOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	v, err := evaluateExpr(node["value"], ctx)
	if err != nil {
		return "", err
	}
	path := Stringify(node["path"])
	TRACE("set %q = %v", path, v)
	if err := ctx.SetPath(path, v); err != nil {
		return "", err
	}
	return "", nil
}

// EffectOperator performs its set and nested effect items for their
// writes. Effects never contribute to output.
type EffectOperator struct{}

// Run ...
func (EffectOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	for _, item := range asList(node["items"]) {
		m := asObject(item)
		if m == nil {
			continue
		}
		switch canonicalTag(Stringify(m["type"])) {
		case "set", "effect":
			if _, err := evaluateNode(m, ctx); err != nil {
				return "", err
			}
		default:
			DEBUG("ignoring effect item of type %q", m["type"])
		}
	}
	return "", nil
}

func init() {
	RegisterNodeOp("set", SetOperator{})
	RegisterNodeOp("effect", EffectOperator{})
}
