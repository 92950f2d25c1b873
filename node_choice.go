package genson

import (
	. "github.com/AlseFum/genson/log"
)

// OptionOperator picks one item uniformly and evaluates it. An empty item
// list emits nothing.
type OptionOperator struct{}

// Run ...
func (OptionOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	items := asList(node["items"])
	i := uniformIndex(ctx.rng, len(items))
	if i < 0 {
		DEBUG("option node has no items")
		return "", nil
	}
	return evaluateNode(items[i], ctx)
}

// RouletteOperator picks one item by weight and evaluates it. An item
// carrying a value field contributes that value; a bare node is its own
// value.
type RouletteOperator struct{}

// Run ...
func (RouletteOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	items := asList(node["items"])
	weights, err := itemWeights(ctx, items)
	if err != nil {
		return "", err
	}

	i := weightedIndex(ctx.rng, weights)
	if i < 0 {
		DEBUG("roulette node has no items")
		return "", nil
	}
	return evaluateNode(rouletteValue(items[i]), ctx)
}

// itemWeights evaluates each item's weight (or wt) field as an expression.
// Missing, negative, and non-finite weights count as 1.
func itemWeights(ctx *Context, items []interface{}) ([]float64, error) {
	weights := make([]float64, len(items))
	for i, item := range items {
		weights[i] = 1
		m := asObject(item)
		if m == nil {
			continue
		}
		raw := fieldOf(m, "weight", "wt")
		if raw == nil {
			continue
		}
		v, err := evaluateExpr(raw, ctx)
		if err != nil {
			return nil, err
		}
		weights[i] = normalizeWeight(toNumber(v))
	}
	return weights, nil
}

func rouletteValue(item interface{}) interface{} {
	if m := asObject(item); m != nil {
		if v, ok := m["value"]; ok {
			return v
		}
	}
	return item
}

func init() {
	RegisterNodeOp("option", OptionOperator{})
	RegisterNodeOp("roulette", RouletteOperator{})
}
