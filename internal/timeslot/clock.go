package timeslot

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 12-hour clock string such as "9:00 AM" or "12:30 PM"
// into a 24-hour Clock. "12:00 AM" is midnight (hour 0) and "12:00 PM" is
// noon (hour 12).
func ParseClock(s string) (Clock, error) {
	trimmed := strings.TrimSpace(s)

	parts := strings.Fields(trimmed)
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("invalid clock string %q: expected \"H:MM AM/PM\"", s)
	}

	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return Clock{}, fmt.Errorf("invalid clock string %q: unknown meridiem %q", s, parts[1])
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return Clock{}, fmt.Errorf("invalid clock string %q: expected \"H:MM\"", s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock string %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock string %q: bad minute: %w", s, err)
	}

	if hour < 1 || hour > 12 {
		return Clock{}, fmt.Errorf("invalid clock string %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid clock string %q: minute out of range", s)
	}

	// Standard 12-hour clock semantics: 12 AM is hour 0, 12 PM is hour 12.
	if meridiem == "PM" && hour < 12 {
		hour += 12
	} else if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// String formats the clock as 24-hour "HH:MM:SS" for calendar timestamps.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour, c.Minute)
}

// splitLabel breaks a slot label "H:MM AM/PM - H:MM AM/PM" into its start
// and end clock strings.
func splitLabel(label string) (string, string, error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid slot label %q: expected \"start - end\"", label)
	}
	return parts[0], parts[1], nil
}

// ParseLabel parses a slot label into its start and end clocks.
func ParseLabel(label string) (Clock, Clock, error) {
	startStr, endStr, err := splitLabel(label)
	if err != nil {
		return Clock{}, Clock{}, err
	}

	start, err := ParseClock(startStr)
	if err != nil {
		return Clock{}, Clock{}, err
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return Clock{}, Clock{}, err
	}

	return start, end, nil
}
