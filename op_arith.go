package genson

import (
	"math"

	. "github.com/AlseFum/genson/log"
)

// AddOperator implements the + operator: numeric addition when both
// operands convert to finite numbers, string concatenation otherwise.
type AddOperator struct{}

// Run ...
func (AddOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	left, err := evaluateExpr(m["left"], ctx)
	if err != nil {
		return nil, err
	}
	right, err := evaluateExpr(m["right"], ctx)
	if err != nil {
		return nil, err
	}

	ln, rn := toNumber(left), toNumber(right)
	if isFiniteNumber(ln) && isFiniteNumber(rn) {
		return ln + rn, nil
	}

	DEBUG("+ falling back to string concatenation (%v, %v)", left, right)
	return Stringify(left) + Stringify(right), nil
}

// ArithmeticOperator implements - * / %. Non-numeric operands and division
// by zero yield NaN rather than an error.
type ArithmeticOperator struct {
	op string
}

// Run ...
func (o ArithmeticOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	left, err := evaluateExpr(m["left"], ctx)
	if err != nil {
		return nil, err
	}
	right, err := evaluateExpr(m["right"], ctx)
	if err != nil {
		return nil, err
	}

	ln, rn := toNumber(left), toNumber(right)
	if math.IsNaN(ln) || math.IsNaN(rn) {
		return math.NaN(), nil
	}

	switch o.op {
	case "-":
		return ln - rn, nil
	case "*":
		return ln * rn, nil
	case "/":
		if rn == 0 {
			return math.NaN(), nil
		}
		return ln / rn, nil
	case "%":
		if rn == 0 {
			return math.NaN(), nil
		}
		return math.Mod(ln, rn), nil
	}
	return math.NaN(), nil
}

func init() {
	RegisterExprOp("+", AddOperator{})
	RegisterExprOp("-", ArithmeticOperator{op: "-"})
	RegisterExprOp("*", ArithmeticOperator{op: "*"})
	RegisterExprOp("/", ArithmeticOperator{op: "/"})
	RegisterExprOp("%", ArithmeticOperator{op: "%"})
}
