package compare

// Group is a group relation of an existing record.
type Group struct {
	ID int64 `json:"id" yaml:"id"`
}

// RecordSnapshot exposes the persisted state of the record being updated.
type RecordSnapshot interface {
	// SerializedFieldValues returns custom field values keyed by field handle.
	SerializedFieldValues() map[string]any
	// Attributes returns native attributes keyed by name (title, slug, ...).
	Attributes() map[string]any
	// Groups returns the groups the record belongs to.
	Groups() []Group
}

// MapSnapshot is an in-memory RecordSnapshot.
type MapSnapshot struct {
	Fields      map[string]any `json:"fields" yaml:"fields"`
	Attrs       map[string]any `json:"attributes" yaml:"attributes"`
	GroupValues []Group        `json:"groups" yaml:"groups"`
}

// SerializedFieldValues implements RecordSnapshot.
func (s *MapSnapshot) SerializedFieldValues() map[string]any {
	return s.Fields
}

// Attributes implements RecordSnapshot.
func (s *MapSnapshot) Attributes() map[string]any {
	return s.Attrs
}

// Groups implements RecordSnapshot.
func (s *MapSnapshot) Groups() []Group {
	return s.GroupValues
}

// Context returns fields and attributes merged into one map, attributes
// taking precedence. It is the context object templates are rendered against.
func Context(s RecordSnapshot) map[string]any {
	out := make(map[string]any)
	if s == nil {
		return out
	}
	for k, v := range s.SerializedFieldValues() {
		out[k] = v
	}
	for k, v := range s.Attributes() {
		out[k] = v
	}
	return out
}

func groupIDs(groups []Group) []any {
	ids := make([]any, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}
