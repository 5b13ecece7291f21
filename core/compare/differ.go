package compare

import (
	"encoding/json"

	"feed-importer/core/utils"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContentMapping is the candidate write-set for one record, keyed by field
// handle or attribute name.
type ContentMapping map[string]any

// ChangeSet is the subset of a ContentMapping that differs from the record.
type ChangeSet map[string]any

// Keys returns the changed keys.
func (c ChangeSet) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// GroupsKey is the attribute compared against the record's group relations.
const GroupsKey = "groups"

// Differ detects which candidate values would change an existing record.
// It is stateless apart from its logger and safe for concurrent use.
type Differ struct {
	logger *zap.Logger
}

// NewDiffer creates a differ. A nil logger disables diagnostics.
func NewDiffer(logger *zap.Logger) *Differ {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Differ{logger: logger}
}

// ComputeChangeSet returns the candidate keys whose values differ from the
// snapshot. Each key is compared against the record's field values first and
// its attributes second; a match on either means no change. With a nil
// snapshot every candidate key is a change.
func (d *Differ) ComputeChangeSet(candidate ContentMapping, snapshot RecordSnapshot) ChangeSet {
	changes := make(ChangeSet)
	if snapshot == nil {
		for k, v := range candidate {
			changes[k] = v
		}
		return changes
	}

	l := d.logger.With(zap.String("comparison_id", uuid.NewString()))

	fields := snapshot.SerializedFieldValues()
	attributes := snapshot.Attributes()

	for key, value := range candidate {
		newValue := NormalizeDate(value)

		// An empty date picker value is the same as no date.
		if m, ok := utils.AsMap(newValue); ok {
			if date, ok := m["date"]; ok && date == "" {
				newValue = nil
			}
		}

		existing, present := fields[key]
		if Equal(present, NormalizeDate(existing), newValue) {
			continue
		}

		attribute, present := attributes[key]
		attribute = NormalizeDate(attribute)
		if key == GroupsKey {
			attribute, present = groupIDs(snapshot.Groups()), true
		}
		if Equal(present, attribute, newValue) {
			continue
		}

		changes[key] = value
		d.logChange(l, key, existing, newValue)
	}

	return changes
}

// Unchanged reports whether candidate would leave the record as it is.
// A missing record always needs writing.
func (d *Differ) Unchanged(candidate ContentMapping, snapshot RecordSnapshot) bool {
	if snapshot == nil {
		return false
	}
	return len(d.ComputeChangeSet(candidate, snapshot)) == 0
}

func (d *Differ) logChange(l *zap.Logger, key string, existing, newValue any) {
	if utils.IsCollection(existing) && utils.IsCollection(newValue) {
		if ce := l.Check(zapcore.DebugLevel, "Field diff"); ce != nil {
			ce.Write(zap.String("key", key), zap.Any("diff", ArrayCompareValues(existing, newValue)))
		}
	}

	if ce := l.Check(zapcore.DebugLevel, "Field values"); ce != nil {
		ce.Write(
			zap.String("key", key),
			zap.String("existing", spew.Sdump(existing)),
			zap.String("new", spew.Sdump(newValue)),
		)
	}

	encoded, err := json.Marshal(newValue)
	if err != nil {
		encoded = []byte(spew.Sprint(newValue))
	}
	l.Info("Data to update", zap.String("key", key), zap.String("value", string(encoded)))
}
