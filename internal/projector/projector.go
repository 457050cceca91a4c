// Package projector derives presentation values from a day snapshot:
// completion progress, per-slot counts, and calendar events with
// deterministic colors. All functions are pure; they never touch storage.
package projector

import (
	"fmt"
	"math"
	"time"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/planner"
	"day-planner/internal/timeslot"
)

// Event colors. Completed tasks always render in the done color;
// otherwise the color follows priority.
const (
	ColorDone            = "#4ade80"
	ColorPriorityHigh    = "#ef4444"
	ColorPriorityMedium  = "#f59e0b"
	ColorPriorityLow     = "#22c55e"
	ColorPriorityDefault = "#3b82f6"
)

// CalendarEvent is a renderable event for one task, positioned inside its
// time slot on the snapshot's date.
type CalendarEvent struct {
	Title           string
	Start           time.Time
	End             time.Time
	BackgroundColor string
	BorderColor     string

	// Back-references so event handlers can reach the underlying task.
	TaskID    string
	TimeSlot  string
	Completed bool
	Assignee  string
}

// SlotSummary holds per-slot task counts for a day view.
type SlotSummary struct {
	Slot      string
	Total     int
	Completed int
}

// ProgressPercentage returns the completed share of the snapshot's tasks,
// rounded to the nearest whole percent. An empty day is 0, not NaN.
func ProgressPercentage(snap planner.Snapshot) int {
	total := snap.TotalCount()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(snap.CompletedCount()) / float64(total) * 100))
}

// SlotCounts returns one summary per slot in the snapshot's slot order.
func SlotCounts(snap planner.Snapshot) []SlotSummary {
	summaries := make([]SlotSummary, 0, len(snap.Slots))
	for _, slot := range snap.Slots {
		summary := SlotSummary{Slot: slot}
		for _, task := range snap.Tasks[slot] {
			summary.Total++
			if task.Completed {
				summary.Completed++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// CalendarEvents projects every task in the snapshot onto the snapshot's
// date, taking slot bounds from the registry. Events appear in slot order,
// then task order within the slot.
func CalendarEvents(snap planner.Snapshot, registry *timeslot.Registry, loc *time.Location) ([]CalendarEvent, error) {
	if loc == nil {
		loc = time.Local
	}

	day, err := time.ParseInLocation(domain.DateLayout, snap.Date, loc)
	if err != nil {
		return nil, errors.NewInvalidInputError("date", snap.Date, "must be in YYYY-MM-DD format")
	}

	var events []CalendarEvent
	for _, slot := range snap.Slots {
		tasks := snap.Tasks[slot]
		if len(tasks) == 0 {
			continue
		}

		start, end, ok := registry.Bounds(slot)
		if !ok {
			return nil, errors.NewInvalidInputError("time_slot", slot, "not a registered time slot")
		}

		for _, task := range tasks {
			color := eventColor(task)
			events = append(events, CalendarEvent{
				Title:           eventTitle(task),
				Start:           at(day, start),
				End:             at(day, end),
				BackgroundColor: color,
				BorderColor:     color,
				TaskID:          task.ID,
				TimeSlot:        slot,
				Completed:       task.Completed,
				Assignee:        task.Assignee,
			})
		}
	}
	return events, nil
}

func eventTitle(task domain.Task) string {
	if task.Assignee == domain.Unassigned || task.Assignee == "" {
		return task.Title
	}
	return fmt.Sprintf("%s (%s)", task.Title, task.Assignee)
}

func eventColor(task domain.Task) string {
	if task.Completed {
		return ColorDone
	}
	switch task.Priority {
	case domain.PriorityHigh:
		return ColorPriorityHigh
	case domain.PriorityMedium:
		return ColorPriorityMedium
	case domain.PriorityLow:
		return ColorPriorityLow
	default:
		return ColorPriorityDefault
	}
}

func at(day time.Time, clock timeslot.Clock) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, day.Location())
}
