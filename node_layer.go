package genson

import (
	"regexp"
	"strconv"
	"strings"

	. "github.com/AlseFum/genson/log"
)

// LayerOperator opens a child frame: it seeds scope entries from prop(s),
// registers decl(s) by name, runs before hooks, and then evaluates items.
// A sequence of items behaves as a roulette with implicit weight 1; a
// single mapping evaluates as one node.
type LayerOperator struct{}

// Run ...
func (LayerOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	child := ctx.Child()

	for name, raw := range asObject(fieldOf(node, "prop", "props")) {
		if m := asObject(raw); m != nil {
			if v, ok := m["value"]; ok {
				child.Scope[name] = v
				continue
			}
		}
		child.Scope[name] = raw
	}

	registerDecls(child, fieldOf(node, "decl", "decls"))

	for _, hook := range asList(node["before"]) {
		m := asObject(hook)
		if m == nil {
			continue
		}
		switch canonicalTag(Stringify(m["type"])) {
		case "set", "effect":
			if _, err := evaluateNode(m, child); err != nil {
				return "", err
			}
		default:
			DEBUG("ignoring before hook of type %q", m["type"])
		}
	}

	switch items := node["items"].(type) {
	case []interface{}:
		weights := make([]float64, len(items))
		for i := range weights {
			weights[i] = 1
		}
		i := weightedIndex(child.rng, weights)
		if i < 0 {
			return "", nil
		}
		return evaluateNode(rouletteValue(items[i]), child)

	case map[string]interface{}:
		return evaluateNode(items, child)
	}

	return "", nil
}

// registerDecls installs declarations into a frame. The sequence form
// names each declaration by its name field; the mapping form is merged
// directly.
func registerDecls(ctx *Context, decls interface{}) {
	switch d := decls.(type) {
	case []interface{}:
		for _, raw := range d {
			m := asObject(raw)
			if m == nil {
				continue
			}
			name := Stringify(m["name"])
			if name == "" {
				DEBUG("skipping unnamed declaration")
				continue
			}
			ctx.Decls[name] = m
		}
	case map[string]interface{}:
		for name, raw := range d {
			ctx.Decls[name] = raw
		}
	}
}

var moduleDefaultIndex = regexp.MustCompile(`^\$\d+$`)

// ModuleOperator evaluates a bank of items. A "$N" default picks item N, a
// present default of any other shape evaluates as a node, and no default
// evaluates every item joined by newlines.
type ModuleOperator struct{}

// Run ...
func (ModuleOperator) Run(ctx *Context, node map[string]interface{}) (string, error) {
	items := asList(node["items"])
	def := node["default"]

	if s, ok := def.(string); ok && moduleDefaultIndex.MatchString(s) {
		i, err := strconv.Atoi(s[1:])
		if err != nil || i < 0 || i >= len(items) {
			DEBUG("module default %q is out of range", s)
			return "", nil
		}
		return evaluateNode(items[i], ctx)
	}

	if def != nil {
		return evaluateNode(def, ctx)
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		s, err := evaluateNode(item, ctx)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n"), nil
}

func init() {
	RegisterNodeOp("layer", LayerOperator{})
	RegisterNodeOp("module", ModuleOperator{})
}
