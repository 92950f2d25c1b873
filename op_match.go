package genson

import (
	. "github.com/AlseFum/genson/log"
)

// PipeOperator implements |, piping the left value into a named Match. The
// right side names the matcher: either a bare name or a sequence whose
// head is the name and whose tail are extra arguments. The matched branch
// is evaluated as a node.
type PipeOperator struct{}

// Run ...
func (PipeOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	instance, err := evaluateExpr(m["left"], ctx)
	if err != nil {
		return nil, err
	}

	var name string
	args := []interface{}{instance}

	if seq := asList(m["right"]); seq != nil {
		if len(seq) == 0 {
			return "", nil
		}
		name = Stringify(seq[0])
		for _, extra := range seq[1:] {
			v, err := evaluateExpr(extra, ctx)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
	} else {
		v, err := evaluateExpr(m["right"], ctx)
		if err != nil {
			return nil, err
		}
		name = Stringify(v)
	}

	return runMatch(ctx, name, args)
}

// MatchOperator implements the method-style match and match_mut operators.
// The matcher name comes from right, the instance from left, extra
// arguments from args. match_mut is documented as mutating the instance;
// its behavior is identical to match.
type MatchOperator struct{}

// Run ...
func (MatchOperator) Run(ctx *Context, m map[string]interface{}) (interface{}, error) {
	instance, err := evaluateExpr(m["left"], ctx)
	if err != nil {
		return nil, err
	}

	name := Stringify(m["right"])
	args := []interface{}{instance}
	for _, extra := range asList(m["args"]) {
		v, err := evaluateExpr(extra, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return runMatch(ctx, name, args)
}

// runMatch invokes the named Match and evaluates the winning branch as a
// node. No declaration or no matching branch yields the empty string.
func runMatch(ctx *Context, name string, args []interface{}) (interface{}, error) {
	branch, err := invokeMatch(ctx, name, args)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		DEBUG("match %q produced no branch", name)
		return "", nil
	}
	return evaluateNode(branch, ctx)
}

func init() {
	RegisterExprOp("|", PipeOperator{})
	RegisterExprOp("match", MatchOperator{})
	RegisterExprOp("match_mut", MatchOperator{})
}
