package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayCompare(t *testing.T) {
	t.Run("NestedLeaf", func(t *testing.T) {
		a := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
		b := map[string]any{"a": 1, "b": map[string]any{"c": 3}}

		d := ArrayCompare(a, b)
		require.NotNil(t, d)
		assert.Equal(t, map[string]any{"b": map[string]any{"c": 2}}, d.Left)
		assert.Equal(t, map[string]any{"b": map[string]any{"c": 3}}, d.Right)
	})

	t.Run("Identical", func(t *testing.T) {
		a := map[string]any{"a": 1, "b": []any{"x"}}
		assert.Nil(t, ArrayCompare(a, map[string]any{"a": 1, "b": []any{"x"}}))
	})

	t.Run("OneSidedKeys", func(t *testing.T) {
		d := ArrayCompare(map[string]any{"a": 1}, map[string]any{"b": 2})
		require.NotNil(t, d)
		assert.Equal(t, map[string]any{"a": 1}, d.Left)
		assert.Equal(t, map[string]any{"b": 2}, d.Right)
	})

	t.Run("CollectionVsScalar", func(t *testing.T) {
		d := ArrayCompare(map[string]any{"a": []any{1}}, map[string]any{"a": 1})
		require.NotNil(t, d)
		assert.Equal(t, map[string]any{"a": []any{1}}, d.Left)
		assert.Equal(t, map[string]any{"a": 1}, d.Right)
	})

	t.Run("StrictTypes", func(t *testing.T) {
		d := ArrayCompare(map[string]any{"a": "1"}, map[string]any{"a": 1})
		require.NotNil(t, d)
		assert.Equal(t, "1", d.Left["a"])
		assert.Equal(t, 1, d.Right["a"])
	})

	t.Run("OnlyRightSideChanges", func(t *testing.T) {
		d := ArrayCompare(map[string]any{"a": []any{"x"}}, map[string]any{"a": []any{"x", "y"}})
		require.NotNil(t, d)
		assert.Nil(t, d.Left)
		assert.Equal(t, map[string]any{"a": map[string]any{"1": "y"}}, d.Right)
	})
}

func TestArrayCompareValues(t *testing.T) {
	assert.Nil(t, ArrayCompareValues("a", []any{"a"}))

	d := ArrayCompareValues([]any{"a", "b"}, []any{"a", "c"})
	require.NotNil(t, d)
	assert.Equal(t, map[string]any{"1": "b"}, d.Left)
	assert.Equal(t, map[string]any{"1": "c"}, d.Right)
}
