package genson

import (
	. "github.com/AlseFum/genson/log"
)

// ExprOperator evaluates one operator form inside an expression mapping.
// Operand fields are read straight off the mapping so that lazy operators
// can defer evaluation.
type ExprOperator interface {
	Run(ctx *Context, m map[string]interface{}) (interface{}, error)
}

var exprOpRegistry = map[string]ExprOperator{}

// RegisterExprOp registers an expression operator under a symbol.
func RegisterExprOp(symbol string, op ExprOperator) {
	exprOpRegistry[symbol] = op
}

// ExprOperatorFor returns the operator registered under symbol, or nil.
func ExprOperatorFor(symbol string) ExprOperator {
	return exprOpRegistry[symbol]
}

// fieldOf returns the first of the named fields present with a non-nil
// value. Aliased field spellings run through here.
func fieldOf(m map[string]interface{}, names ...string) interface{} {
	for _, name := range names {
		if v, ok := m[name]; ok && v != nil {
			return v
		}
	}
	return nil
}

// evaluateExpr evaluates an expression value. Primitives pass through,
// sequences concatenate their stringified evaluations, and mappings carry
// either a node-ish type tag, an operator, or the compact list form.
func evaluateExpr(expr interface{}, ctx *Context) (interface{}, error) {
	switch e := expr.(type) {
	case nil:
		return "", nil

	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return e, nil

	case []interface{}:
		out := ""
		for _, item := range e {
			v, err := evaluateExpr(item, ctx)
			if err != nil {
				return nil, err
			}
			out += Stringify(v)
		}
		return out, nil

	case map[string]interface{}:
		return evaluateExprObject(e, ctx)

	default:
		return "", nil
	}
}

func evaluateExprObject(m map[string]interface{}, ctx *Context) (interface{}, error) {
	switch Stringify(m["type"]) {
	case "expr", "expression":
		return evaluateExpr(fieldOf(m, "value", "expr"), ctx)
	case "ref":
		return ctx.GetPath(Stringify(fieldOf(m, "to", "path", "value"))), nil
	case "call":
		return evaluateCall(m, ctx)
	}

	if symbol, ok := m["op"].(string); ok {
		op := ExprOperatorFor(symbol)
		if op == nil {
			DEBUG("no expression operator registered for %q", symbol)
			return "", nil
		}
		return op.Run(ctx, m)
	}

	if compact := asList(m["expr"]); compact != nil {
		return evaluateCompactExpr(compact, ctx)
	}

	DEBUG("unrecognized expression shape, yielding empty string")
	return "", nil
}

// evaluateCompactExpr handles the list form: [sym, path] resolves a
// reference, [left, op, right] applies a binary operator.
func evaluateCompactExpr(parts []interface{}, ctx *Context) (interface{}, error) {
	switch len(parts) {
	case 2:
		if sym, ok := parts[0].(string); ok && (sym == "ref" || sym == "var") {
			return ctx.GetPath(Stringify(parts[1])), nil
		}

	case 3:
		symbol, ok := parts[1].(string)
		if !ok {
			break
		}
		op := ExprOperatorFor(symbol)
		if op == nil {
			DEBUG("no expression operator registered for %q", symbol)
			return "", nil
		}
		return op.Run(ctx, map[string]interface{}{
			"op":    symbol,
			"left":  parts[0],
			"right": parts[2],
		})
	}

	return "", nil
}

// GetOperator resolves a path in the current context: (( op: get )).
type GetOperator struct{}

// Run ...
func (GetOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	path := Stringify(fieldOf(m, "path", "to", "value"))
	TRACE("get %q", path)
	return ctx.GetPath(path), nil
}

func init() {
	RegisterExprOp("get", GetOperator{})
}
