package compare

import (
	"reflect"
	"sort"
	"strconv"
	"unicode/utf8"

	"feed-importer/core/utils"
)

// Equal decides whether an existing value and a candidate value are the same
// for update purposes. present reports whether the key exists in the mapping
// the existing value was read from.
//
//   - Sequences made only of numeric-like items (related record IDs) are equal
//     when they hold the same values in any order.
//   - Two empty sequences are always equal.
//   - Otherwise the values must be LooseEqual and, when both are strings, have
//     the same length, so "0637" and "637" differ.
func Equal(present bool, existing, candidate any) bool {
	a, aSeq := utils.AsSlice(existing)
	b, bSeq := utils.AsSlice(candidate)

	if present && aSeq && bSeq && allNumeric(a) && allNumeric(b) && sameNumbers(a, b) {
		return true
	}

	if aSeq && bSeq && len(a) == 0 && len(b) == 0 {
		return true
	}

	if !present || !LooseEqual(existing, candidate) {
		return false
	}

	as, aStr := existing.(string)
	bs, bStr := candidate.(string)
	if aStr && bStr {
		return utf8.RuneCountInString(as) == utf8.RuneCountInString(bs)
	}
	return true
}

// LooseEqual compares two values after permissive type coercion:
//
//   - nil equals "" and any other falsy non-string value (0, false, empty collections).
//   - A bool compares with the truthiness of the other value.
//   - Numbers and numeric strings compare by numeric value.
//   - A number and a non-numeric string compare as strings.
//   - Sequences and mappings compare element by element with LooseEqual;
//     a sequence is treated as a mapping keyed by its indices.
//   - Anything else falls back to reflect.DeepEqual.
func LooseEqual(a, b any) bool {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return true
		}
		other := a
		if a == nil {
			other = b
		}
		if s, ok := other.(string); ok {
			return s == ""
		}
		return utils.IsEmpty(other)
	}

	if ab, ok := a.(bool); ok {
		return ab == utils.ToBool(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == utils.ToBool(a)
	}

	if utils.IsCollection(a) || utils.IsCollection(b) {
		am, aOK := asKeyed(a)
		bm, bOK := asKeyed(b)
		if !aOK || !bOK || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !LooseEqual(av, bv) {
				return false
			}
		}
		return true
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	switch {
	case aStr && bStr:
		if af, ok := utils.ToFloat(as); ok {
			if bf, ok := utils.ToFloat(bs); ok {
				return af == bf
			}
		}
		return as == bs
	case aStr || bStr:
		af, aNum := utils.ToFloat(a)
		bf, bNum := utils.ToFloat(b)
		if aNum && bNum {
			return af == bf
		}
		return utils.ToString(a) == utils.ToString(b)
	}

	if af, ok := utils.ToFloat(a); ok {
		if bf, ok := utils.ToFloat(b); ok {
			return af == bf
		}
	}

	return reflect.DeepEqual(a, b)
}

func allNumeric(values []any) bool {
	for _, v := range values {
		if !utils.IsNumeric(v) {
			return false
		}
	}
	return true
}

// sameNumbers compares two numeric sequences as multisets.
func sameNumbers(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	af := sortedFloats(a)
	bf := sortedFloats(b)
	for i := range af {
		if af[i] != bf[i] {
			return false
		}
	}
	return true
}

func sortedFloats(values []any) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i], _ = utils.ToFloat(v)
	}
	sort.Float64s(out)
	return out
}

// asKeyed returns a collection as a map; sequences are keyed by index.
func asKeyed(v any) (map[string]any, bool) {
	if m, ok := utils.AsMap(v); ok {
		return m, true
	}
	s, ok := utils.AsSlice(v)
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(s))
	for i, item := range s {
		out[strconv.Itoa(i)] = item
	}
	return out, true
}
