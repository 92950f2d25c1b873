package genson

import (
	"encoding/json"

	. "github.com/smartystreets/goconvey/convey"
)

// JSON parses an inline schema literal for tests.
func JSON(s string) interface{} {
	var v interface{}
	err := json.Unmarshal([]byte(s), &v)
	So(err, ShouldBeNil)
	return v
}

// stubRNG returns a random source that replays the given draws in order,
// then repeats the last one.
func stubRNG(draws ...float64) func() float64 {
	i := 0
	return func() float64 {
		if len(draws) == 0 {
			return 0
		}
		d := draws[i]
		if i < len(draws)-1 {
			i++
		}
		return d
	}
}

// testContext builds a root context with a scripted random source.
func testContext(draws ...float64) *Context {
	return NewContext(WithRNG(stubRNG(draws...)))
}
