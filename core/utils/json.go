package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NormalizeNumbers replaces json.Number values, also inside collections,
// with int64 when integral and float64 otherwise.
func NormalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []any:
		for i := range t {
			t[i] = NormalizeNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = NormalizeNumbers(t[k])
		}
		return t
	default:
		return v
	}
}

// DecodeObject decodes a JSON object keeping integers as int64.
// Empty input decodes to an empty map.
func DecodeObject(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode JSON object: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return NormalizeNumbers(out).(map[string]any), nil
}
