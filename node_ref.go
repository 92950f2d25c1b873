package genson

// RefOperator resolves a path through the scope chain. A resolved node
// (mapping with a type tag) evaluates recursively; any other value
// stringifies; nil falls back to the else node, if present.
type RefOperator struct{}

// Run ...
func (RefOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	path := Stringify(fieldOf(node, "to", "path", "value"))
	resolved := ctx.GetPath(path)

	if resolved == nil {
		if alt, ok := node["else"]; ok && alt != nil {
			return evaluateNode(alt, ctx)
		}
		return "", nil
	}

	if m := asObject(resolved); m != nil {
		if _, tagged := m["type"]; tagged {
			return evaluateNode(m, ctx)
		}
	}
	return Stringify(resolved), nil
}

// ExpressionNodeOperator evaluates the carried expression and stringifies
// the result.
type ExpressionNodeOperator struct{}

// Run ...
func (ExpressionNodeOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	v, err := evaluateExpr(fieldOf(node, "value", "expr"), ctx)
	if err != nil {
		return "", err
	}
	return Stringify(v), nil
}

// CallNodeOperator dispatches a call node and stringifies the result.
type CallNodeOperator struct{}

// Run ...
func (CallNodeOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	v, err := evaluateCall(node, ctx)
	if err != nil {
		return "", err
	}
	return Stringify(v), nil
}

func init() {
	RegisterNodeOp("ref", RefOperator{})
	RegisterNodeOp("expression", ExpressionNodeOperator{})
	RegisterNodeOp("call", CallNodeOperator{})
}
