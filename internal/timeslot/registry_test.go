package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	reg := Default()

	expected := []string{
		"8:00 AM - 9:00 AM",
		"9:00 AM - 10:00 AM",
		"10:00 AM - 11:00 AM",
		"11:00 AM - 12:00 PM",
		"12:00 PM - 1:00 PM",
		"1:00 PM - 2:00 PM",
		"2:00 PM - 3:00 PM",
	}
	assert.Equal(t, expected, reg.Slots())
	assert.Equal(t, len(expected), reg.Len())
}

func TestNew_RejectsBadLabels(t *testing.T) {
	_, err := New("9:00 AM - 10:00 AM", "brunch")
	assert.Error(t, err)
}

func TestRegistry_Contains(t *testing.T) {
	reg := Default()

	assert.True(t, reg.Contains("8:00 AM - 9:00 AM"))
	assert.False(t, reg.Contains("3:00 PM - 4:00 PM"))
	assert.False(t, reg.Contains(""))
}

func TestRegistry_Slots_ReturnsCopy(t *testing.T) {
	reg := Default()

	slots := reg.Slots()
	slots[0] = "mutated"

	assert.Equal(t, "8:00 AM - 9:00 AM", reg.Slots()[0])
}

func TestRegistry_SlotForHour(t *testing.T) {
	reg := Default()

	tests := []struct {
		name     string
		hour     int
		expected string
		found    bool
	}{
		{"first slot start boundary", 8, "8:00 AM - 9:00 AM", true},
		{"boundary hour belongs to the starting slot", 9, "9:00 AM - 10:00 AM", true},
		{"noon slot", 12, "12:00 PM - 1:00 PM", true},
		{"last slot", 14, "2:00 PM - 3:00 PM", true},
		{"before the day starts", 7, "", false},
		{"after the day ends", 15, "", false},
		{"midnight", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := reg.SlotForHour(tt.hour)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, slot)
		})
	}
}

func TestRegistry_Bounds(t *testing.T) {
	reg := Default()

	start, end, ok := reg.Bounds("11:00 AM - 12:00 PM")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 11}, start)
	assert.Equal(t, Clock{Hour: 12}, end)

	_, _, ok = reg.Bounds("4:00 PM - 5:00 PM")
	assert.False(t, ok)
}
