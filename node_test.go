package genson

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTextNodes(t *testing.T) {
	Convey("text, sequence, vec", t, func() {
		ctx := testContext()

		run := func(s string) string {
			out, err := evaluateNode(JSON(s), ctx)
			So(err, ShouldBeNil)
			return out
		}

		Convey("text emits its literal", func() {
			So(run(`{"type":"text","text":"hello"}`), ShouldEqual, "hello")
		})

		Convey("sequence concatenates in order", func() {
			So(run(`{"type":"sequence","items":[{"type":"text","text":"a"},{"type":"text","text":"b"}]}`), ShouldEqual, "ab")
		})

		Convey("the seq alias dispatches as sequence", func() {
			So(run(`{"type":"seq","items":[{"type":"text","text":"x"}]}`), ShouldEqual, "x")
		})

		Convey("bare primitives and lists evaluate directly", func() {
			So(run(`"plain"`), ShouldEqual, "plain")
			So(run(`[1,2,3]`), ShouldEqual, "123")
		})

		Convey("vec stringifies its evaluated sequence", func() {
			So(run(`{"type":"vec","items":["a",{"op":"+","left":1,"right":1},"c"]}`), ShouldEqual, "a2c")
		})

		Convey("unknown tags emit nothing", func() {
			So(run(`{"type":"wibble"}`), ShouldEqual, "")
		})

		Convey("declaration tags reached as nodes emit nothing", func() {
			So(run(`{"type":"match","branch":[]}`), ShouldEqual, "")
			So(run(`{"type":"domain","branch":[]}`), ShouldEqual, "")
		})
	})
}

func TestChoiceNodes(t *testing.T) {
	Convey("option and roulette", t, func() {
		Convey("option picks uniformly", func() {
			schema := JSON(`{"type":"option","items":[{"type":"text","text":"a"},{"type":"text","text":"b"}]}`)

			out, err := evaluateNode(schema, testContext(0.0))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "a")

			out, err = evaluateNode(schema, testContext(0.9))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "b")
		})

		Convey("an empty option emits nothing", func() {
			out, err := evaluateNode(JSON(`{"type":"option","items":[]}`), testContext(0.5))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
		})

		Convey("roulette honors weights", func() {
			schema := JSON(`{"type":"roulette","items":[
				{"weight": 1, "value": {"type":"text","text":"rare"}},
				{"weight": 9, "value": {"type":"text","text":"common"}}
			]}`)

			out, err := evaluateNode(schema, testContext(0.05))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "rare")

			out, err = evaluateNode(schema, testContext(0.5))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "common")
		})

		Convey("roulette weights may be expressions, with wt as an alias", func() {
			schema := JSON(`{"type":"roulette","items":[
				{"wt": {"op":"+","left":0,"right":0}, "value": {"type":"text","text":"never"}},
				{"wt": 1, "value": {"type":"text","text":"always"}}
			]}`)
			out, err := evaluateNode(schema, testContext(0.99))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "always")
		})

		Convey("a bare roulette item is its own value", func() {
			schema := JSON(`{"type":"roulette","items":[{"type":"text","text":"bare"}]}`)
			out, err := evaluateNode(schema, testContext(0.1))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "bare")
		})

		Convey("the Roulette alias dispatches as roulette", func() {
			schema := JSON(`{"type":"Roulette","items":[{"type":"text","text":"spin"}]}`)
			out, err := evaluateNode(schema, testContext(0.1))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "spin")
		})
	})
}

func TestLoopNodes(t *testing.T) {
	Convey("repetition and delegate", t, func() {
		Convey("repetition repeats with a separator", func() {
			schema := JSON(`{"type":"repetition","times":3,"value":{"type":"text","text":"x"},"separator":{"type":"text","text":","}}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "x,x,x")
		})

		Convey("the repeat alias and time spelling work", func() {
			schema := JSON(`{"type":"repeat","time":2,"value":{"type":"text","text":"y"}}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "yy")
		})

		Convey("repetition count accepts an expression", func() {
			schema := JSON(`{"type":"repetition","times":{"op":"+","left":1,"right":1},"value":{"type":"text","text":"z"}}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "zz")
		})

		Convey("a malformed count repeats zero times", func() {
			schema := JSON(`{"type":"repetition","times":"wat","value":{"type":"text","text":"z"}}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
		})

		Convey("delegate re-evaluates its weight with the loop index bound", func() {
			schema := JSON(`{
				"type": "delegate",
				"weight": {"op":">","left":3,"right":{"op":"get","path":"i"}},
				"index": "i",
				"value": {"type":"expression","value":{"op":"get","path":"i"}},
				"separator": {"type":"text","text":"-"}
			}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			// true coerces to target 1, so the loop stops after iteration 1
			So(out, ShouldEqual, "1")
		})

		Convey("a numeric delegate weight runs the loop out", func() {
			schema := JSON(`{
				"type": "delegate",
				"weight": 3,
				"value": {"type":"expression","value":{"op":"get","path":"i"}},
				"separator": {"type":"text","text":"-"}
			}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "1-2-3")
		})

		Convey("the index name defaults to i and is configurable", func() {
			schema := JSON(`{
				"type": "delegate",
				"weight": 2,
				"index": "step",
				"value": {"type":"expression","value":{"op":"get","path":"step"}}
			}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "12")
		})
	})
}

func TestLayerNodes(t *testing.T) {
	Convey("layer", t, func() {
		Convey("seeds scope from prop, unwrapping value fields", func() {
			schema := JSON(`{
				"type": "layer",
				"prop": {"n": {"value": 2}},
				"items": {"type":"expression","value":{"op":"+","left":{"op":"get","path":"n"},"right":3}}
			}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "5")
		})

		Convey("props seeds plain values too", func() {
			schema := JSON(`{
				"type": "layer",
				"props": {"word": "bird"},
				"items": {"type":"expression","value":{"op":"get","path":"word"}}
			}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "bird")
		})

		Convey("sequence items behave as a uniform roulette", func() {
			schema := JSON(`{
				"type": "layer",
				"items": [{"type":"text","text":"a"},{"type":"text","text":"b"}]
			}`)
			out, err := evaluateNode(schema, testContext(0.9))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "b")
		})

		Convey("before hooks run in the child frame before items", func() {
			schema := JSON(`{
				"type": "layer",
				"before": [{"type":"set","path":"greeting","value":"hi"}],
				"items": {"type":"expression","value":{"op":"get","path":"greeting"}}
			}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "hi")
		})

		Convey("decl registrations are visible to descendants", func() {
			schema := JSON(`{
				"type": "layer",
				"decl": [{
					"type": "match",
					"name": "greet",
					"branch": [{"req": [{}], "to": {"type":"text","text":"hello"}}]
				}],
				"items": {"type":"expression","value":{"op":"|","left":1,"right":"greet"}}
			}`)
			out, err := evaluateNode(schema, testContext(0.0))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "hello")
		})

		Convey("the mapping decl form merges directly", func() {
			schema := JSON(`{
				"type": "layer",
				"decls": {"greet": {
					"type": "match",
					"branch": [{"req": [{}], "to": {"type":"text","text":"yo"}}]
				}},
				"items": {"type":"expression","value":{"op":"|","left":1,"right":"greet"}}
			}`)
			out, err := evaluateNode(schema, testContext(0.0))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "yo")
		})
	})
}

func TestModuleNodes(t *testing.T) {
	Convey("module", t, func() {
		items := `"items":[{"type":"text","text":"a"},{"type":"text","text":"b"}]`

		Convey("a $N default picks item N", func() {
			out, err := evaluateNode(JSON(`{"type":"module","default":"$1",`+items+`}`), testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "b")
		})

		Convey("an out-of-range $N emits nothing", func() {
			out, err := evaluateNode(JSON(`{"type":"module","default":"$9",`+items+`}`), testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
		})

		Convey("any other default evaluates as a node", func() {
			out, err := evaluateNode(JSON(`{"type":"module","default":{"type":"text","text":"d"},`+items+`}`), testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "d")
		})

		Convey("no default joins every item with newlines", func() {
			out, err := evaluateNode(JSON(`{"type":"module",`+items+`}`), testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "a\nb")
		})
	})
}

func TestRefNodes(t *testing.T) {
	Convey("ref", t, func() {
		ctx := testContext()

		Convey("stringifies a resolved plain value", func() {
			ctx.Scope["name"] = "ada"
			out, err := evaluateNode(JSON(`{"type":"ref","to":"name"}`), ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "ada")
		})

		Convey("evaluates a resolved node recursively", func() {
			ctx.Scope["snippet"] = JSON(`{"type":"text","text":"inlined"}`)
			out, err := evaluateNode(JSON(`{"type":"ref","path":"snippet"}`), ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "inlined")
		})

		Convey("falls back to else when the path misses", func() {
			out, err := evaluateNode(JSON(`{"type":"ref","to":"missing","else":{"type":"text","text":"fallback"}}`), ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "fallback")

			out, err = evaluateNode(JSON(`{"type":"ref","to":"missing"}`), ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
		})

		Convey("var nodes dispatch as refs", func() {
			ctx.Scope["v"] = 12.0
			out, err := evaluateNode(JSON(`{"type":"var","to":"v"}`), ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "12")
		})
	})
}

func TestEffectNodes(t *testing.T) {
	Convey("set and effect", t, func() {
		Convey("set writes and emits nothing", func() {
			ctx := testContext()
			out, err := evaluateNode(JSON(`{"type":"set","path":"a.b","value":{"op":"+","left":1,"right":1}}`), ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(ctx.GetPath("a.b"), ShouldEqual, 2.0)
		})

		Convey("effect performs nested sets and emits nothing", func() {
			ctx := testContext()
			schema := JSON(`{"type":"effect","items":[
				{"type":"set","path":"x","value":1},
				{"type":"effect","items":[{"type":"set","path":"y","value":2}]}
			]}`)
			out, err := evaluateNode(schema, ctx)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "")
			So(ctx.GetPath("x"), ShouldEqual, 1.0)
			So(ctx.GetPath("y"), ShouldEqual, 2.0)
		})

		Convey("a later ref reads an effect's write in the same scope", func() {
			schema := JSON(`{"type":"sequence","items":[
				{"type":"effect","items":[{"type":"set","path":"word","value":"written"}]},
				{"type":"ref","to":"word"}
			]}`)
			out, err := evaluateNode(schema, testContext())
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "written")
		})
	})
}
