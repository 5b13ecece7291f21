package compare

import (
	"regexp"
	"time"
)

// DBDateLayout is the canonical date representation used for comparisons.
const DBDateLayout = "2006-01-02 15:04:05"

var iso8601Pattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})$`)

var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
}

// IsISO8601 reports whether s is a full ISO-8601 timestamp with a zone.
func IsISO8601(s string) bool {
	return iso8601Pattern.MatchString(s)
}

// NormalizeDate converts time values and ISO-8601 strings to DBDateLayout in
// UTC. Other values are returned unchanged.
func NormalizeDate(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(DBDateLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(DBDateLayout)
	case string:
		if !IsISO8601(t) {
			return v
		}
		for _, layout := range iso8601Layouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC().Format(DBDateLayout)
			}
		}
		return v
	default:
		return v
	}
}
