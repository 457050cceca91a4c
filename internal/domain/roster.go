package domain

// Unassigned is the sentinel assignee for tasks without an owner.
const Unassigned = "Unassigned"

// Roster is the fixed set of people a task may be assigned to.
type Roster []string

// DefaultRoster is the team roster, sentinel first.
var DefaultRoster = Roster{
	Unassigned,
	"Ananya",
	"Divya",
	"Kavya",
	"Meera",
	"Sowmya",
	"Sanjana",
}

// Contains reports whether name is a member of the roster.
func (r Roster) Contains(name string) bool {
	return r.IndexOf(name) >= 0
}

// IndexOf returns the position of name in the roster, or -1.
func (r Roster) IndexOf(name string) int {
	for i, member := range r {
		if member == name {
			return i
		}
	}
	return -1
}

// Members returns a copy of the roster.
func (r Roster) Members() []string {
	out := make([]string, len(r))
	copy(out, r)
	return out
}

// UnassignedColor is the neutral color used for the sentinel assignee.
const UnassignedColor = "#6b7280"

// AssigneePalette is the fixed palette cycled through for roster members.
var AssigneePalette = []string{
	"#3b82f6",
	"#a855f7",
	"#ec4899",
	"#6366f1",
	"#14b8a6",
}

// ColorFor returns a deterministic color for an assignee, keyed by roster
// position modulo palette size. Names outside the roster wrap to the first
// palette entry; this fallback is intentional, not an error.
func (r Roster) ColorFor(name string, palette []string) string {
	if name == Unassigned {
		return UnassignedColor
	}
	if len(palette) == 0 {
		return UnassignedColor
	}

	idx := r.IndexOf(name)
	if idx < 0 {
		idx = 0
	}
	return palette[idx%len(palette)]
}

// Initial returns the single-letter badge for an assignee name.
func Initial(name string) string {
	if name == Unassigned || name == "" {
		return "U"
	}
	return string([]rune(name)[0])
}
