package genson

import (
	"math"
	"strings"

	. "github.com/AlseFum/genson/log"
)

// RepetitionOperator emits its value a fixed number of times, joined by an
// optional separator. The count accepts a raw integer or an expression in
// times (or time).
type RepetitionOperator struct{}

// Run ...
func (RepetitionOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	raw, err := evaluateExpr(fieldOf(node, "times", "time"), ctx)
	if err != nil {
		return "", err
	}
	count := toNumber(raw)
	if math.IsNaN(count) || count < 0 {
		count = 0
	}

	n := int(count)
	if n > ctx.limits.MaxIterations {
		DEBUG("repetition count %d hit the iteration ceiling %d", n, ctx.limits.MaxIterations)
		n = ctx.limits.MaxIterations
	}

	sep, err := loopSeparator(ctx, node)
	if err != nil {
		return "", err
	}

	body := fieldOf(node, "value", "items")
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s, err := evaluateNode(body, ctx)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// DelegateOperator loops with a re-evaluated target. Each iteration binds
// the 1-based index into a child scope under the configured name and
// re-evaluates the weight expression there; the loop stops when the target
// is NaN, drops to zero or below, or falls behind the iteration count.
type DelegateOperator struct{}

// Run ...
func (DelegateOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	target := fieldOf(node, "weight", "times", "time")
	body := fieldOf(node, "value", "items")

	idxName := Stringify(node["index"])
	if idxName == "" {
		idxName = "i"
	}

	sep, err := loopSeparator(ctx, node)
	if err != nil {
		return "", err
	}

	var parts []string
	for iter := 1; iter <= ctx.limits.MaxIterations; iter++ {
		child := ctx.Child()
		child.Scope[idxName] = iter

		raw, err := evaluateExpr(target, child)
		if err != nil {
			return "", err
		}
		goal := loopTarget(raw)
		if math.IsNaN(goal) || goal <= 0 || float64(iter) > goal {
			break
		}

		s, err := evaluateNode(body, child)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, sep), nil
}

// loopTarget coerces a delegate target to a number. Booleans count as 1
// and 0 here, unlike general arithmetic.
func loopTarget(v interface{}) float64 {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return toNumber(v)
}

// loopSeparator evaluates the separator node, if any, in the loop's outer
// context.
func loopSeparator(ctx *Context, node map[string]interface{}) (string, error) {
	raw, ok := node["separator"]
	if !ok || raw == nil {
		return "", nil
	}
	return evaluateNode(raw, ctx)
}

func init() {
	RegisterNodeOp("repetition", RepetitionOperator{})
	RegisterNodeOp("delegate", DelegateOperator{})
}
