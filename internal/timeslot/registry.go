package timeslot

// Registry holds the fixed, ordered list of slot labels that partition a
// working day. A registry is built once and never mutated at runtime.
type Registry struct {
	labels []string
	bounds map[string][2]Clock
}

// defaultLabels is the standard working-day partition.
var defaultLabels = []string{
	"8:00 AM - 9:00 AM",
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
}

// Default returns the registry with the standard working-day slots.
func Default() *Registry {
	reg, err := New(defaultLabels...)
	if err != nil {
		// The default labels are constants; a parse failure here is a bug.
		panic(err)
	}
	return reg
}

// New builds a registry from slot labels. Every label must parse as
// "H:MM AM/PM - H:MM AM/PM".
func New(labels ...string) (*Registry, error) {
	reg := &Registry{
		labels: make([]string, 0, len(labels)),
		bounds: make(map[string][2]Clock, len(labels)),
	}

	for _, label := range labels {
		start, end, err := ParseLabel(label)
		if err != nil {
			return nil, err
		}
		reg.labels = append(reg.labels, label)
		reg.bounds[label] = [2]Clock{start, end}
	}

	return reg, nil
}

// Slots returns the ordered slot labels.
func (r *Registry) Slots() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Len returns the number of slots in the registry.
func (r *Registry) Len() int {
	return len(r.labels)
}

// Contains reports whether label is a member of the registry.
func (r *Registry) Contains(label string) bool {
	_, ok := r.bounds[label]
	return ok
}

// Bounds returns the start and end clocks for a slot label.
func (r *Registry) Bounds(label string) (Clock, Clock, bool) {
	b, ok := r.bounds[label]
	if !ok {
		return Clock{}, Clock{}, false
	}
	return b[0], b[1], true
}

// SlotForHour maps a clock hour (0..23) to the containing slot by scanning
// slots in order and returning the first whose half-open interval
// [start, end) contains the hour. A boundary hour belongs to the slot whose
// start equals the hour.
func (r *Registry) SlotForHour(hour int) (string, bool) {
	for _, label := range r.labels {
		b := r.bounds[label]
		if hour >= b[0].Hour && hour < b[1].Hour {
			return label, true
		}
	}
	return "", false
}
