package genson

import (
	. "github.com/AlseFum/genson/log"
)

// ComparisonOperator implements the relational and equality operators.
// Relational comparisons are numeric when both operands are finite numbers
// by type and fall back to string order otherwise (numeric-looking strings
// included); equality is structural.
type ComparisonOperator struct {
	op string
}

// Run ...
func (o ComparisonOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	left, err := evaluateExpr(m["left"], ctx)
	if err != nil {
		return nil, err
	}
	right, err := evaluateExpr(m["right"], ctx)
	if err != nil {
		return nil, err
	}

	switch o.op {
	case "==":
		return structurallyEqual(left, right), nil
	case "!=":
		return !structurallyEqual(left, right), nil
	}

	// Only genuine numbers compare numerically. Numeric-looking strings
	// keep string order.
	ln, rn := toNumber(left), toNumber(right)
	if isNumeric(left) && isNumeric(right) && isFiniteNumber(ln) && isFiniteNumber(rn) {
		switch o.op {
		case ">":
			return ln > rn, nil
		case "<":
			return ln < rn, nil
		case ">=":
			return ln >= rn, nil
		case "<=":
			return ln <= rn, nil
		}
	}

	DEBUG("%s falling back to string comparison (%v, %v)", o.op, left, right)
	ls, rs := Stringify(left), Stringify(right)
	switch o.op {
	case ">":
		return ls > rs, nil
	case "<":
		return ls < rs, nil
	case ">=":
		return ls >= rs, nil
	case "<=":
		return ls <= rs, nil
	}
	return false, nil
}

func init() {
	RegisterExprOp("==", ComparisonOperator{op: "=="})
	RegisterExprOp("eq", ComparisonOperator{op: "=="})
	RegisterExprOp("!=", ComparisonOperator{op: "!="})
	RegisterExprOp(">", ComparisonOperator{op: ">"})
	RegisterExprOp("<", ComparisonOperator{op: "<"})
	RegisterExprOp(">=", ComparisonOperator{op: ">="})
	RegisterExprOp("<=", ComparisonOperator{op: "<="})
}
