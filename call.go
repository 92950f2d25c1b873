package genson

import (
	"github.com/Knetic/govaluate"

	. "github.com/AlseFum/genson/log"
)

// evaluateCall dispatches a call node on its path after evaluating the
// arguments as expressions. Unknown paths degrade to the empty string.
func evaluateCall(node map[string]interface{}, ctx *Context) (interface{}, error) {
	path := Stringify(node["path"])

	var args []interface{}
	for _, raw := range asList(node["args"]) {
		v, err := evaluateExpr(raw, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch path {
	case "rand_int", "randint":
		return callRandInt(ctx, args), nil
	case "calc":
		return callCalc(ctx, args), nil
	}

	DEBUG("unknown call path %q", path)
	return "", nil
}

// callRandInt draws a uniform integer between its two numeric arguments,
// inclusive, from the context's random source.
func callRandInt(ctx *Context, args []interface{}) interface{} {
	if len(args) < 2 {
		return ""
	}
	a, b := toNumber(args[0]), toNumber(args[1])
	if !isFiniteNumber(a) || !isFiniteNumber(b) {
		return ""
	}
	return randIntBetween(ctx.rng, a, b)
}

// callCalc evaluates its argument as a govaluate expression with the
// current scope's top-level bindings as parameters. Failures degrade to
// the empty string like any other malformed call.
func callCalc(ctx *Context, args []interface{}) interface{} {
	if len(args) == 0 {
		return ""
	}

	input := Stringify(args[0])
	expression, err := govaluate.NewEvaluableExpression(input)
	if err != nil {
		DEBUG("calc: cannot parse %q: %s", input, err)
		return ""
	}

	params := make(map[string]interface{}, len(ctx.Scope))
	for k, v := range ctx.Scope {
		params[k] = v
	}

	result, err := expression.Evaluate(params)
	if err != nil {
		DEBUG("calc: evaluation of %q failed: %s", input, err)
		return ""
	}
	return result
}
