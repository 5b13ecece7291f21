package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"Time", time.Date(2024, 3, 1, 10, 30, 0, 0, berlin), "2024-03-01 09:30:00"},
		{"ISOZulu", "2024-03-01T09:30:00Z", "2024-03-01 09:30:00"},
		{"ISOOffset", "2024-03-01T10:30:00+01:00", "2024-03-01 09:30:00"},
		{"ISOCompactOffset", "2024-03-01T10:30:00+0100", "2024-03-01 09:30:00"},
		{"ISOFraction", "2024-03-01T09:30:00.250Z", "2024-03-01 09:30:00"},
		{"DBLayoutUntouched", "2024-03-01 09:30:00", "2024-03-01 09:30:00"},
		{"DateOnly", "2024-03-01", "2024-03-01"},
		{"Text", "hello", "hello"},
		{"Number", 5, 5},
		{"Nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}
