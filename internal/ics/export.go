// Package ics serializes projected calendar events into iCalendar form so
// a day can be imported into external calendar applications.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"day-planner/internal/projector"
)

const productID = "-//day-planner//planner//EN"

// Export serializes the given events into a VCALENDAR. Event UIDs are the
// underlying task IDs, so re-importing an updated export replaces rather
// than duplicates events.
func Export(events []projector.CalendarEvent, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, event := range events {
		ve := cal.AddEvent(event.TaskID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(event.Start)
		ve.SetEndAt(event.End)
		ve.SetSummary(event.Title)
		ve.SetProperty(ical.ComponentPropertyDescription, describe(event))
		if event.Completed {
			ve.SetStatus(ical.ObjectStatusCompleted)
		}
	}

	return cal.Serialize()
}

func describe(event projector.CalendarEvent) string {
	state := "open"
	if event.Completed {
		state = "completed"
	}
	return fmt.Sprintf("Slot: %s\\nAssignee: %s\\nState: %s", event.TimeSlot, event.Assignee, state)
}
