package genson

import (
	"math"

	. "github.com/AlseFum/genson/log"
)

// domainTest probes the named Domain with a value and returns the label of
// the first branch whose range contains it, or nil. Non-numeric probes
// never match.
func domainTest(ctx *Context, name string, v interface{}) interface{} {
	decl := ctx.LookupDecl(name)
	if decl == nil || Stringify(decl["type"]) != "domain" {
		DEBUG("no domain declaration named %q in scope", name)
		return nil
	}

	n := toNumber(v)
	if math.IsNaN(n) {
		return nil
	}

	for _, b := range asList(decl["branch"]) {
		branch := asObject(b)
		if branch == nil {
			continue
		}
		if rangeContains(branch["range"], n) {
			return branch["string"]
		}
	}
	return nil
}

// rangeContains tests a domain range form: a single number matches by
// equality; a sequence matches on any listed number or any [lo, hi] pair
// bracketing n.
func rangeContains(r interface{}, n float64) bool {
	if isNumeric(r) {
		return toNumber(r) == n
	}

	for _, entry := range asList(r) {
		if pair := asList(entry); len(pair) == 2 {
			lo, hi := toNumber(pair[0]), toNumber(pair[1])
			if lo <= n && n <= hi {
				return true
			}
			continue
		}
		if isNumeric(entry) && toNumber(entry) == n {
			return true
		}
	}
	return false
}

// invokeMatch finds the named Match declaration and returns the `to` node
// of the first branch whose requirements all hold against the positional
// arguments. nil when nothing matches.
func invokeMatch(ctx *Context, name string, args []interface{}) (interface{}, error) {
	decl := ctx.LookupDecl(name)
	if decl == nil || Stringify(decl["type"]) != "match" {
		DEBUG("no match declaration named %q in scope", name)
		return nil, nil
	}

	for _, b := range asList(decl["branch"]) {
		branch := asObject(b)
		if branch == nil {
			continue
		}

		ok, err := branchMatches(ctx, branch, args)
		if err != nil {
			return nil, err
		}
		if ok {
			return branch["to"], nil
		}
	}
	return nil, nil
}

func branchMatches(ctx *Context, branch map[string]interface{}, args []interface{}) (bool, error) {
	for i, r := range asList(branch["req"]) {
		req := asObject(r)
		if req == nil {
			continue
		}

		var arg interface{}
		if i < len(args) {
			arg = args[i]
		}

		ok, err := requirementHolds(ctx, req, arg)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// requirementHolds checks one positional requirement. A requirement with
// neither a domain nor an expression always holds; a domain requirement
// holds when the domain test labels the argument; an expression requirement
// evaluates with _arg bound in a child scope, where the compact form
// ["eq", x] compares the argument against x and anything else coerces to
// boolean.
func requirementHolds(ctx *Context, req map[string]interface{}, arg interface{}) (bool, error) {
	domain, hasDomain := req["domain"]
	expr, hasExpr := req["expr"]

	if !hasDomain && !hasExpr {
		return true, nil
	}

	if hasDomain {
		if domainTest(ctx, Stringify(domain), arg) == nil {
			return false, nil
		}
	}

	if hasExpr {
		child := ctx.Child()
		child.Scope["_arg"] = arg

		if compact := asList(expr); len(compact) >= 2 && Stringify(compact[0]) == "eq" {
			want, err := evaluateExpr(compact[1], child)
			if err != nil {
				return false, err
			}
			return structurallyEqual(arg, want), nil
		}

		v, err := evaluateExpr(expr, child)
		if err != nil {
			return false, err
		}
		return truthy(v), nil
	}

	return true, nil
}
