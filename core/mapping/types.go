package mapping

// NodeUseDefault is the node sentinel for fields that import no feed data and
// always take the mapping's default value.
const NodeUseDefault = "usedefault"

// FieldMapping binds a target field to a feed path.
type FieldMapping struct {
	// Node is the feed path, usually without array index segments
	// (e.g. "Block/Images"), or NodeUseDefault.
	Node string `json:"node" yaml:"node"`

	// Default is used as a fallback for absent or empty feed values, and as the
	// static value when Node is NodeUseDefault. It may be a scalar or a sequence.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
}

// UsesDefault reports whether the mapping imports no feed data.
// A mapping without a node behaves the same way.
func (m FieldMapping) UsesDefault() bool {
	return m.Node == NodeUseDefault || m.Node == ""
}

// RecordSettings carries the per-feed options that influence value resolution.
type RecordSettings struct {
	// SetEmptyValues allows empty feed values to overwrite existing data.
	SetEmptyValues bool `json:"set_empty_values" yaml:"set_empty_values"`
}
