package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToFloat converts numeric-like values to float64.
// The second return value is false when val is not numeric (see IsNumeric).
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case string:
		return parseNumeric(v)
	case []byte:
		return parseNumeric(string(v))
	default:
		return 0, false
	}
}

// IsNumeric reports whether val is a number or a decimal numeric string.
// Numeric strings may carry surrounding whitespace, a sign, a fraction and an
// exponent. Hex, "inf" and "nan" spellings are not numeric.
func IsNumeric(val any) bool {
	_, ok := ToFloat(val)
	return ok
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToString converts various types to string.
// Floats without a fractional part are rendered without a decimal point.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts a value to its truthiness.
// nil, false, zero numbers, "", "0" and empty collections are false.
func ToBool(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case []byte:
		return len(v) > 0 && string(v) != "0"
	}
	if s, ok := AsSlice(val); ok {
		return len(s) > 0
	}
	if m, ok := AsMap(val); ok {
		return len(m) > 0
	}
	if f, ok := ToFloat(val); ok {
		return f != 0
	}
	return true
}

// IsEmpty reports whether val is empty: falsy under ToBool.
func IsEmpty(val any) bool {
	return !ToBool(val)
}

// AsSlice returns val as a []any when it is a sequence: any slice or array
// except []byte, which is text.
func AsSlice(val any) ([]any, bool) {
	switch v := val.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsMap returns val as a map[string]any when it is a mapping. Keys of other
// types are formatted with fmt.
func AsMap(val any) (map[string]any, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}

// IsCollection reports whether val is a sequence or a mapping.
func IsCollection(val any) bool {
	if _, ok := AsSlice(val); ok {
		return true
	}
	_, ok := AsMap(val)
	return ok
}
