package sqlite

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "UTC time",
			input:    time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
			expected: "2024-01-15T10:30:45.000000000Z",
		},
		{
			name:     "Offset converted to UTC",
			input:    time.Date(2024, 6, 15, 14, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: "2024-06-15T19:30:00.000000000Z",
		},
		{
			name:     "Nanoseconds kept",
			input:    time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC),
			expected: "2024-03-10T09:15:30.123456789Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeForDB(tt.input))
		})
	}
}

func TestFormatTimeForDB_LexicalOrderMatchesTime(t *testing.T) {
	base := time.Date(2026, 10, 16, 12, 0, 5, 0, time.UTC)
	times := []time.Time{
		base.Add(120 * time.Millisecond),
		base,
		base.Add(100 * time.Millisecond),
		base.Add(time.Nanosecond),
		base.Add(time.Second),
	}

	formatted := make([]string, len(times))
	for i, tm := range times {
		formatted[i] = FormatTimeForDB(tm)
	}
	sort.Strings(formatted)

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i, tm := range times {
		assert.Equal(t, FormatTimeForDB(tm), formatted[i])
	}
}

func TestParseTimeFromDB(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "Stored layout",
			input:    "2024-03-10T09:15:30.123456789Z",
			expected: time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC),
		},
		{
			name:     "Plain RFC3339",
			input:    "2024-01-15T10:30:45+01:00",
			expected: time.Date(2024, 1, 15, 9, 30, 45, 0, time.UTC),
		},
		{
			name:        "Garbage",
			input:       "yesterday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeFromDB(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "got %v want %v", result, tt.expected)
			assert.Equal(t, time.UTC, result.Location())
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	original := time.Date(2026, 10, 16, 8, 1, 2, 3, time.FixedZone("CEST", 2*3600))

	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
