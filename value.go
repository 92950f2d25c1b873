package genson

import (
	"encoding/json"
	"math"
	"strconv"
)

// isObject reports whether v is a schema mapping.
func isObject(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}

// asObject returns v as a mapping, or nil.
func asObject(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// asList returns v as a sequence, or nil.
func asList(v interface{}) []interface{} {
	l, _ := v.([]interface{})
	return l
}

// toNumber converts v to a float64. Numbers pass through, strings are
// parsed as floats, everything else is NaN. NaN is the expression layer's
// "not a number" signal and propagates through arithmetic.
func toNumber(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// isFiniteNumber reports whether f is a usable numeric operand.
func isFiniteNumber(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Stringify renders a runtime value as generated output. nil is the empty
// string, integral floats drop their fraction, sequences concatenate their
// elements, and mappings fall back to their JSON form.
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []interface{}:
		s := ""
		for _, item := range t {
			s += Stringify(item)
		}
		return s
	case map[string]interface{}:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// truthy implements the expression layer's boolean coercion: nil, false,
// zero, and the empty string are falsy, everything else is truthy.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		f := toNumber(v)
		if math.IsNaN(f) {
			return true
		}
		return f != 0
	}
}

// structurallyEqual compares two values the way == does: numbers compare
// numerically regardless of concrete type, sequences and mappings compare
// element-wise, and mixed kinds never match.
func structurallyEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if isNumeric(a) && isNumeric(b) {
		return toNumber(a) == toNumber(b)
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !structurallyEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			ov, present := bv[k]
			if !present || !structurallyEqual(v, ov) {
				return false
			}
		}
		return true
	}

	return false
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
