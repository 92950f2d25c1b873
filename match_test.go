package genson

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func declContext(draws ...float64) *Context {
	ctx := testContext(draws...)
	registerDecls(ctx, JSON(`[
		{
			"type": "domain",
			"name": "size",
			"branch": [
				{"range": 0, "string": "none"},
				{"range": [[1, 3]], "string": "small"},
				{"range": [4, 5, [6, 9]], "string": "large"}
			]
		},
		{
			"type": "match",
			"name": "describe",
			"branch": [
				{"req": [{"domain": "size"}], "to": {"type": "text", "text": "sized"}},
				{"req": [{"expr": {"op": "==", "left": {"op": "get", "path": "_arg"}, "right": "x"}}],
				 "to": {"type": "text", "text": "exactly x"}},
				{"req": [{}], "to": {"type": "text", "text": "anything"}}
			]
		}
	]`))
	return ctx
}

func TestDomainDeclarations(t *testing.T) {
	Convey("Domain tests", t, func() {
		ctx := declContext()

		Convey("a scalar range matches by equality", func() {
			So(domainTest(ctx, "size", 0.0), ShouldEqual, "none")
		})

		Convey("a [lo, hi] pair brackets its value", func() {
			So(domainTest(ctx, "size", 2.0), ShouldEqual, "small")
			So(domainTest(ctx, "size", 1.0), ShouldEqual, "small")
			So(domainTest(ctx, "size", 3.0), ShouldEqual, "small")
		})

		Convey("listed numbers match by equality", func() {
			So(domainTest(ctx, "size", 5.0), ShouldEqual, "large")
			So(domainTest(ctx, "size", 7.0), ShouldEqual, "large")
		})

		Convey("numeric strings coerce", func() {
			So(domainTest(ctx, "size", "2"), ShouldEqual, "small")
		})

		Convey("unmatched and non-numeric probes yield nil", func() {
			So(domainTest(ctx, "size", 99.0), ShouldBeNil)
			So(domainTest(ctx, "size", "wat"), ShouldBeNil)
		})

		Convey("an unknown domain yields nil", func() {
			So(domainTest(ctx, "nope", 1.0), ShouldBeNil)
		})
	})
}

func TestMatchDeclarations(t *testing.T) {
	Convey("Match invocation", t, func() {
		ctx := declContext()

		branchText := func(args ...interface{}) string {
			branch, err := invokeMatch(ctx, "describe", args)
			So(err, ShouldBeNil)
			if branch == nil {
				return ""
			}
			return Stringify(asObject(branch)["text"])
		}

		Convey("a domain requirement fires on membership", func() {
			So(branchText(2.0), ShouldEqual, "sized")
		})

		Convey("an expression requirement binds _arg", func() {
			So(branchText("x"), ShouldEqual, "exactly x")
		})

		Convey("an empty requirement always matches", func() {
			So(branchText("y"), ShouldEqual, "anything")
		})

		Convey("an unknown matcher yields nil", func() {
			branch, err := invokeMatch(ctx, "nope", []interface{}{1})
			So(err, ShouldBeNil)
			So(branch, ShouldBeNil)
		})
	})
}

func TestMatchEqRequirement(t *testing.T) {
	Convey("compact eq requirements", t, func() {
		ctx := testContext()
		registerDecls(ctx, JSON(`[{
			"type": "match",
			"name": "pick",
			"branch": [
				{"req": [{"expr": ["eq", 3]}], "to": {"type": "text", "text": "three"}},
				{"req": [{"expr": ["eq", "go"]}], "to": {"type": "text", "text": "go!"}}
			]
		}]`))

		Convey("compares the argument against the second element", func() {
			branch, err := invokeMatch(ctx, "pick", []interface{}{3.0})
			So(err, ShouldBeNil)
			So(Stringify(asObject(branch)["text"]), ShouldEqual, "three")

			branch, err = invokeMatch(ctx, "pick", []interface{}{"go"})
			So(err, ShouldBeNil)
			So(Stringify(asObject(branch)["text"]), ShouldEqual, "go!")
		})

		Convey("misses fall through all branches", func() {
			branch, err := invokeMatch(ctx, "pick", []interface{}{"other"})
			So(err, ShouldBeNil)
			So(branch, ShouldBeNil)
		})
	})
}

func TestMatchOperators(t *testing.T) {
	Convey("match expression operators", t, func() {
		ctx := declContext()

		eval := func(s string) interface{} {
			v, err := evaluateExpr(JSON(s), ctx)
			So(err, ShouldBeNil)
			return v
		}

		Convey("| pipes the left value in as the first argument", func() {
			So(eval(`{"op":"|","left":2,"right":"describe"}`), ShouldEqual, "sized")
			So(eval(`{"op":"|","left":"x","right":["describe"]}`), ShouldEqual, "exactly x")
		})

		Convey("match reads the matcher name from right", func() {
			So(eval(`{"op":"match","left":2,"right":"describe"}`), ShouldEqual, "sized")
		})

		Convey("match_mut behaves exactly like match", func() {
			So(eval(`{"op":"match_mut","left":2,"right":"describe"}`), ShouldEqual, "sized")
		})

		Convey("a miss yields the empty string", func() {
			So(eval(`{"op":"|","left":1,"right":"unknown"}`), ShouldEqual, "")
		})

		Convey("declarations are visible from descendant frames", func() {
			child := ctx.Child().Child()
			v, err := evaluateExpr(JSON(`{"op":"match","left":2,"right":"describe"}`), child)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "sized")
		})
	})
}
