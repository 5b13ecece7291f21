package mapping

import (
	"errors"
	"strings"

	"feed-importer/core/utils"
)

// ErrNoDelimiter is returned when no data delimiter is configured.
var ErrNoDelimiter = errors.New("data delimiter is not configured")

// TemplateRenderer evaluates an object template against a record context.
type TemplateRenderer interface {
	RenderObjectTemplate(text string, element map[string]any) (string, error)
}

// Resolver computes target field values from flattened feed records.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	delimiter string
	renderer  TemplateRenderer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRenderer sets the renderer used by ParseFieldDataForElement.
func WithRenderer(r TemplateRenderer) Option {
	return func(res *Resolver) {
		res.renderer = r
	}
}

// NewResolver creates a resolver splitting multi-value feed text on delimiter.
func NewResolver(delimiter string, opts ...Option) (*Resolver, error) {
	if delimiter == "" {
		return nil, ErrNoDelimiter
	}

	r := &Resolver{delimiter: delimiter}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Delimiter returns the configured data delimiter.
func (r *Resolver) Delimiter() string {
	return r.delimiter
}

// ResolveSimple looks up the mapping node as an exact key.
// Absent or empty values fall back to the default; strings are trimmed.
func (r *Resolver) ResolveSimple(record FeedRecord, m FieldMapping) any {
	value, _ := record.Get(m.Node)

	if isBlank(value) {
		value = m.Default
	}

	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return value
}

// ResolveMulti collects every feed value belonging to the mapping node.
// Delimited text is split into trimmed pieces. A usedefault mapping that
// matched nothing yields DefaultSequence.
func (r *Resolver) ResolveMulti(record FeedRecord, m FieldMapping) []any {
	values := r.collect(record, m, false)

	if m.UsesDefault() && len(values) == 0 {
		return DefaultSequence(m)
	}
	return values
}

// ResolveForWrite computes the value that should be written to a field.
//
// Matching entries are aggregated like ResolveMulti, with absent or empty
// entries replaced by the default first. A single result is unwrapped to a
// scalar. Empty results become nil unless settings.SetEmptyValues asks for an
// explicit empty string; numeric values, zero included, are kept.
func (r *Resolver) ResolveForWrite(record FeedRecord, m FieldMapping, settings RecordSettings) any {
	values := r.collect(record, m, true)

	var value any = values
	if len(values) == 1 {
		value = values[0]
	}

	if m.UsesDefault() && !utils.ToBool(value) {
		value = m.Default
	}

	if s, ok := value.(string); ok && s == "" && settings.SetEmptyValues {
		return s
	}

	if !utils.IsNumeric(value) && utils.IsEmpty(value) {
		return nil
	}
	return value
}

// DefaultSequence returns the mapping default as a sequence.
// An empty default gives an empty sequence and a scalar gives one element.
func DefaultSequence(m FieldMapping) []any {
	if seq, ok := utils.AsSlice(m.Default); ok {
		return seq
	}
	if utils.IsEmpty(m.Default) {
		return []any{}
	}
	return []any{m.Default}
}

// ParseFieldDataForElement renders text values containing "{" as object
// templates against element. A literal brace in content is not a template,
// so render failures keep the original value.
func (r *Resolver) ParseFieldDataForElement(value any, element map[string]any) any {
	s, ok := value.(string)
	if !ok || !strings.Contains(s, "{") || r.renderer == nil {
		return value
	}

	rendered, err := r.renderer.RenderObjectTemplate(s, element)
	if err != nil {
		return value
	}
	return rendered
}

func (r *Resolver) collect(record FeedRecord, m FieldMapping, substituteDefault bool) []any {
	values := []any{}
	if m.Node == "" {
		return values
	}

	for _, e := range record {
		if !matchesNode(e.Path, m.Node) {
			continue
		}

		value := e.Value
		if substituteDefault && isBlank(value) {
			value = m.Default
		}

		if s, ok := value.(string); ok && strings.Contains(s, r.delimiter) {
			for _, piece := range strings.Split(s, r.delimiter) {
				values = append(values, strings.TrimSpace(piece))
			}
			continue
		}
		values = append(values, value)
	}
	return values
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
