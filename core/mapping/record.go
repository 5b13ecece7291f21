package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"

	"feed-importer/core/utils"

	"gopkg.in/yaml.v3"
)

// Entry is one flattened feed value.
type Entry struct {
	Path  string
	Value any
}

// FeedRecord is one flattened feed row in document order.
// Paths embed repeated-group indices, e.g. "Block/0/Images/0".
type FeedRecord []Entry

// Get returns the value stored under the exact path.
func (r FeedRecord) Get(path string) (any, bool) {
	for _, e := range r {
		if e.Path == path {
			return e.Value, true
		}
	}
	return nil, false
}

// Map returns the record as a plain map. Order is lost.
func (r FeedRecord) Map() map[string]any {
	out := make(map[string]any, len(r))
	for _, e := range r {
		out[e.Path] = e.Value
	}
	return out
}

// UnmarshalJSON decodes a JSON object keeping key order.
func (r *FeedRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read feed record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("feed record must be a JSON object")
	}

	var record FeedRecord
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read feed record key: %w", err)
		}
		key, _ := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to read feed record value %q: %w", key, err)
		}
		record = append(record, Entry{Path: key, Value: utils.NormalizeNumbers(raw)})
	}

	*r = record
	return nil
}

// MarshalJSON encodes the record as a JSON object in record order.
func (r FeedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Path)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping keeping key order.
func (r *FeedRecord) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("feed record must be a YAML mapping (line %d)", node.Line)
	}

	record := make(FeedRecord, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("failed to read feed record value %q: %w", node.Content[i].Value, err)
		}
		record = append(record, Entry{Path: node.Content[i].Value, Value: normalizeYAML(value)})
	}

	*r = record
	return nil
}

// normalizeYAML converts yaml.v3 generic values to the shapes used across the module.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case []any:
		for i := range t {
			t[i] = normalizeYAML(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeYAML(t[k])
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
