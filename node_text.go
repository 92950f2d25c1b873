package genson

// TextOperator emits the literal text field.
type TextOperator struct{}

// Run ...
func (TextOperator) Run(_ *Context, node map[string]interface{}) (string, error) {
	return Stringify(node["text"]), nil
}

// SequenceOperator concatenates the evaluations of its items in order.
type SequenceOperator struct{}

// Run ...
func (SequenceOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	out := ""
	for _, item := range asList(node["items"]) {
		s, err := evaluateNode(item, ctx)
		if err != nil {
			return "", err
		}
		out += s
	}
	return out, nil
}

// VecOperator evaluates each item as an expression and collects the
// results into a sequence. Node dispatch must yield a string, so the
// sequence is stringified on the way out.
type VecOperator struct{}

// Run ...
func (VecOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	var vec []interface{}
	for _, item := range asList(node["items"]) {
		v, err := evaluateExpr(item, ctx)
		if err != nil {
			return "", err
		}
		vec = append(vec, v)
	}
	return Stringify(vec), nil
}

func init() {
	RegisterNodeOp("text", TextOperator{})
	RegisterNodeOp("sequence", SequenceOperator{})
	RegisterNodeOp("vec", VecOperator{})
}
