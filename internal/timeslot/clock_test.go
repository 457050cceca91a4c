package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Clock
		expectError bool
	}{
		{
			name:     "midnight parses to hour 0",
			input:    "12:00 AM",
			expected: Clock{Hour: 0, Minute: 0},
		},
		{
			name:     "noon parses to hour 12",
			input:    "12:00 PM",
			expected: Clock{Hour: 12, Minute: 0},
		},
		{
			name:     "morning hour stays unchanged",
			input:    "9:00 AM",
			expected: Clock{Hour: 9, Minute: 0},
		},
		{
			name:     "evening hour shifts by twelve",
			input:    "9:00 PM",
			expected: Clock{Hour: 21, Minute: 0},
		},
		{
			name:     "minutes are preserved",
			input:    "1:30 PM",
			expected: Clock{Hour: 13, Minute: 30},
		},
		{
			name:     "surrounding whitespace is ignored",
			input:    "  8:00 AM ",
			expected: Clock{Hour: 8, Minute: 0},
		},
		{
			name:        "missing meridiem is rejected",
			input:       "9:00",
			expectError: true,
		},
		{
			name:        "unknown meridiem is rejected",
			input:       "9:00 XM",
			expectError: true,
		},
		{
			name:        "hour out of range is rejected",
			input:       "13:00 PM",
			expectError: true,
		},
		{
			name:        "garbage is rejected",
			input:       "lunchtime",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := ParseClock(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, clock)
			}
		})
	}
}

func TestClock_String(t *testing.T) {
	assert.Equal(t, "00:00:00", Clock{Hour: 0, Minute: 0}.String())
	assert.Equal(t, "09:05:00", Clock{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "21:30:00", Clock{Hour: 21, Minute: 30}.String())
}

func TestParseLabel(t *testing.T) {
	start, end, err := ParseLabel("11:00 AM - 12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 11, Minute: 0}, start)
	assert.Equal(t, Clock{Hour: 12, Minute: 0}, end)

	_, _, err = ParseLabel("11:00 AM")
	assert.Error(t, err)

	_, _, err = ParseLabel("11:00 AM - later")
	assert.Error(t, err)
}
