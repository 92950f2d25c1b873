package genson

// LogicalOperator implements and/or over standard truthiness. Both operands
// are evaluated; only the ternary operator is lazy.
type LogicalOperator struct {
	op string
}

// Run ...
func (o LogicalOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	left, err := evaluateExpr(m["left"], ctx)
	if err != nil {
		return nil, err
	}
	right, err := evaluateExpr(m["right"], ctx)
	if err != nil {
		return nil, err
	}

	if o.op == "and" {
		return truthy(left) && truthy(right), nil
	}
	return truthy(left) || truthy(right), nil
}

// NotOperator negates its operand, read from value (or left).
type NotOperator struct{}

// Run ...
func (NotOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	operand, err := evaluateExpr(fieldOf(m, "value", "left"), ctx)
	if err != nil {
		return nil, err
	}
	return !truthy(operand), nil
}

// TernaryOperator implements ?: with a lazily chosen branch.
type TernaryOperator struct{}

// Run ...
func (TernaryOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	cond, err := evaluateExpr(m["cond"], ctx)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return evaluateExpr(m["then"], ctx)
	}
	return evaluateExpr(m["else"], ctx)
}

func init() {
	RegisterExprOp("and", LogicalOperator{op: "and"})
	RegisterExprOp("or", LogicalOperator{op: "or"})
	RegisterExprOp("not", NotOperator{})
	RegisterExprOp("?:", TernaryOperator{})
}
