package job

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"feed-importer/core/compare"
	"feed-importer/core/mapping"
	"feed-importer/core/storage"
	"feed-importer/core/utils"

	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for documents that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported job format")
	// ErrInvalidJob is returned when a document fails validation.
	ErrInvalidJob = errors.New("invalid job")
)

// Format identifies a job document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Binding maps one target field handle to a feed path.
type Binding struct {
	Handle  string `json:"handle" yaml:"handle"`
	Node    string `json:"node" yaml:"node"`
	Default any    `json:"default,omitempty" yaml:"default,omitempty"`
}

// Mapping returns the binding as a resolver field mapping.
func (b Binding) Mapping() mapping.FieldMapping {
	return mapping.FieldMapping{Node: b.Node, Default: b.Default}
}

// Job is one import job: a feed record, the field bindings to resolve, and
// optionally the existing element to compare against.
type Job struct {
	// ElementID selects the existing element in the content database.
	ElementID int64 `json:"element_id,omitempty" yaml:"element_id,omitempty"`
	// Record is the flattened feed record.
	Record mapping.FeedRecord `json:"record" yaml:"record"`
	// Fields lists the bindings in resolution order.
	Fields []Binding `json:"fields" yaml:"fields"`
	// Settings overrides the configured record settings when present.
	Settings *mapping.RecordSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
	// Existing is an inline snapshot used instead of the database.
	Existing *compare.MapSnapshot `json:"existing,omitempty" yaml:"existing,omitempty"`
}

// RecordSettings returns the job settings, falling back to the given ones.
func (j *Job) RecordSettings(fallback mapping.RecordSettings) mapping.RecordSettings {
	if j.Settings != nil {
		return *j.Settings
	}
	return fallback
}

// Validate checks that every binding has a unique handle.
func (j *Job) Validate() error {
	if len(j.Fields) == 0 {
		return fmt.Errorf("%w: no field bindings", ErrInvalidJob)
	}
	seen := make(map[string]struct{}, len(j.Fields))
	for i, b := range j.Fields {
		if strings.TrimSpace(b.Handle) == "" {
			return fmt.Errorf("%w: field %d has no handle", ErrInvalidJob, i)
		}
		if _, dup := seen[b.Handle]; dup {
			return fmt.Errorf("%w: duplicate handle %q", ErrInvalidJob, b.Handle)
		}
		seen[b.Handle] = struct{}{}
	}
	return nil
}

// FormatFromName derives the document format from a file or object name.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// Parse decodes and validates a job document.
func Parse(data []byte, format Format) (*Job, error) {
	var j Job
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &j); err != nil {
			return nil, fmt.Errorf("failed to parse job YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to parse job JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	normalize(&j)
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Load reads a job document from disk.
func Load(path string) (*Job, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return Parse(data, format)
}

// LoadObject reads a job document from object storage.
func LoadObject(ctx context.Context, client storage.Client, bucket, name string) (*Job, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get job object %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read job object %s: %w", name, err)
	}
	return Parse(data, format)
}

// normalize converts decoder-specific number and map types in the inline
// snapshot and defaults to the shapes the resolver and differ expect.
func normalize(j *Job) {
	for i := range j.Fields {
		j.Fields[i].Default = normalizeValue(j.Fields[i].Default)
	}
	if j.Existing == nil {
		return
	}
	if j.Existing.Fields == nil {
		j.Existing.Fields = map[string]any{}
	}
	if j.Existing.Attrs == nil {
		j.Existing.Attrs = map[string]any{}
	}
	for k, v := range j.Existing.Fields {
		j.Existing.Fields[k] = normalizeValue(v)
	}
	for k, v := range j.Existing.Attrs {
		j.Existing.Attrs[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return int64(t)
	case []any:
		for i := range t {
			t[i] = normalizeValue(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeValue(t[k])
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	default:
		return utils.NormalizeNumbers(v)
	}
}
