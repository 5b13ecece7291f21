package utils_test

import (
	"testing"

	"feed-importer/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want bool
	}{
		{"Int", 42, true},
		{"Zero", 0, true},
		{"Float", 1.5, true},
		{"NumericString", "637", true},
		{"ZeroString", "0", true},
		{"LeadingZero", "0637", true},
		{"Signed", "-12.5", true},
		{"Exponent", "1e3", true},
		{"Whitespace", " 12 ", true},
		{"Empty", "", false},
		{"Word", "abc", false},
		{"Hex", "0x1A", false},
		{"Inf", "inf", false},
		{"Nil", nil, false},
		{"Bool", true, false},
		{"Slice", []any{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.IsNumeric(tt.val))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.False(t, utils.ToBool(nil))
	assert.False(t, utils.ToBool(""))
	assert.False(t, utils.ToBool("0"))
	assert.False(t, utils.ToBool(0))
	assert.False(t, utils.ToBool(0.0))
	assert.False(t, utils.ToBool([]any{}))
	assert.False(t, utils.ToBool(map[string]any{}))
	assert.True(t, utils.ToBool("a"))
	assert.True(t, utils.ToBool("0.0"))
	assert.True(t, utils.ToBool(1))
	assert.True(t, utils.ToBool([]any{nil}))
	assert.False(t, utils.ToBool([]int64{}))
	assert.False(t, utils.ToBool(map[string]string{}))
	assert.False(t, utils.ToBool(map[int]string{}))
	assert.True(t, utils.ToBool([]int64{0}))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", utils.ToString(nil))
	assert.Equal(t, "12", utils.ToString(12))
	assert.Equal(t, "12", utils.ToString(12.0))
	assert.Equal(t, "1.25", utils.ToString(1.25))
	assert.Equal(t, "1", utils.ToString(true))
	assert.Equal(t, "", utils.ToString(false))
}

func TestAsSlice(t *testing.T) {
	s, ok := utils.AsSlice([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, s)

	s, ok = utils.AsSlice([]int64{3, 1})
	assert.True(t, ok)
	assert.Equal(t, []any{int64(3), int64(1)}, s)

	s, ok = utils.AsSlice([2]uint{4, 5})
	assert.True(t, ok)
	assert.Equal(t, []any{uint(4), uint(5)}, s)

	_, ok = utils.AsSlice("a")
	assert.False(t, ok)
	_, ok = utils.AsSlice([]byte("ab"))
	assert.False(t, ok)
	_, ok = utils.AsSlice(nil)
	assert.False(t, ok)
}

func TestAsMap(t *testing.T) {
	m, ok := utils.AsMap(map[string]int64{"a": 1})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"a": int64(1)}, m)

	m, ok = utils.AsMap(map[int]string{7: "x"})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"7": "x"}, m)

	_, ok = utils.AsMap([]any{"a"})
	assert.False(t, ok)
	assert.True(t, utils.IsCollection([]int64{}))
}
