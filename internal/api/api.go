package api

import (
	"context"
	stderrors "errors"
	"time"

	"day-planner/internal/domain"
	"day-planner/internal/ics"
	"day-planner/internal/planner"
	"day-planner/internal/projector"
	"day-planner/internal/repository/sqlite"
)

// API defines the planner surface consumed by both the CLI and the web
// server.
type API interface {
	// Day selects a date and returns its full view.
	Day(ctx context.Context, date string) (*DayView, error)
	SelectedDate() string

	// Task mutations. All persist first and update memory only on success.
	AddTask(ctx context.Context, slot, title string, priority domain.Priority, assignee, date string) (*domain.Task, error)
	ToggleCompletion(ctx context.Context, slot, taskID string) (*domain.Task, error)
	EditTitle(ctx context.Context, slot, taskID, title string) (*domain.Task, error)
	Reassign(ctx context.Context, slot, taskID, assignee string) (*domain.Task, error)
	DeleteTask(ctx context.Context, slot, taskID string) error

	// ExportICS renders the selected date's events as an iCalendar payload.
	ExportICS(ctx context.Context, date string) (string, error)

	// Preferences are small persisted UI settings, e.g. dark mode.
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error

	Slots() []string
	Roster() []string
}

// TaskItem is one task row in a day view, carrying the assignee's sidebar
// badge (deterministic roster color and initial) alongside the task.
type TaskItem struct {
	domain.Task
	AssigneeColor   string
	AssigneeInitial string
}

// SlotSection is one time slot's portion of a day view, in registry order.
type SlotSection struct {
	Slot      string
	Tasks     []TaskItem
	Total     int
	Completed int
}

// DayView is everything needed to render a planner day.
type DayView struct {
	Date     string
	Sections []SlotSection
	Progress int
	Events   []projector.CalendarEvent
}

type apiImpl struct {
	store    *planner.Store
	gateway  sqlite.Gateway
	roster   domain.Roster
	location *time.Location
}

// New creates a new API instance.
func New(store *planner.Store, gateway sqlite.Gateway, roster domain.Roster, location *time.Location) API {
	if location == nil {
		location = time.Local
	}
	return &apiImpl{
		store:    store,
		gateway:  gateway,
		roster:   roster,
		location: location,
	}
}

func (a *apiImpl) Day(ctx context.Context, date string) (*DayView, error) {
	snap, err := a.store.LoadForDate(ctx, date)
	if stderrors.Is(err, planner.ErrStaleLoad) {
		// A newer date selection won the race; serve whatever it loaded.
		return a.buildView(a.store.Snapshot())
	}
	if err != nil {
		return nil, err
	}
	return a.buildView(snap)
}

func (a *apiImpl) SelectedDate() string {
	return a.store.SelectedDate()
}

func (a *apiImpl) AddTask(ctx context.Context, slot, title string, priority domain.Priority, assignee, date string) (*domain.Task, error) {
	return a.store.AddTask(ctx, slot, title, priority, assignee, date)
}

func (a *apiImpl) ToggleCompletion(ctx context.Context, slot, taskID string) (*domain.Task, error) {
	return a.store.ToggleCompletion(ctx, slot, taskID)
}

func (a *apiImpl) EditTitle(ctx context.Context, slot, taskID, title string) (*domain.Task, error) {
	return a.store.EditTitle(ctx, slot, taskID, title)
}

func (a *apiImpl) Reassign(ctx context.Context, slot, taskID, assignee string) (*domain.Task, error) {
	return a.store.Reassign(ctx, slot, taskID, assignee)
}

func (a *apiImpl) DeleteTask(ctx context.Context, slot, taskID string) error {
	return a.store.DeleteTask(ctx, slot, taskID)
}

func (a *apiImpl) ExportICS(ctx context.Context, date string) (string, error) {
	view, err := a.Day(ctx, date)
	if err != nil {
		return "", err
	}
	return ics.Export(view.Events, time.Now().In(a.location)), nil
}

func (a *apiImpl) GetPreference(ctx context.Context, key string) (string, error) {
	return a.gateway.GetPreference(ctx, key)
}

func (a *apiImpl) SetPreference(ctx context.Context, key, value string) error {
	return a.gateway.SetPreference(ctx, key, value)
}

func (a *apiImpl) Slots() []string {
	return a.store.Registry().Slots()
}

func (a *apiImpl) Roster() []string {
	return a.roster.Members()
}

func (a *apiImpl) buildView(snap planner.Snapshot) (*DayView, error) {
	events, err := projector.CalendarEvents(snap, a.store.Registry(), a.location)
	if err != nil {
		return nil, err
	}

	counts := projector.SlotCounts(snap)
	sections := make([]SlotSection, 0, len(counts))
	for _, count := range counts {
		tasks := snap.Tasks[count.Slot]
		items := make([]TaskItem, 0, len(tasks))
		for _, task := range tasks {
			items = append(items, TaskItem{
				Task:            task,
				AssigneeColor:   a.roster.ColorFor(task.Assignee, domain.AssigneePalette),
				AssigneeInitial: domain.Initial(task.Assignee),
			})
		}
		sections = append(sections, SlotSection{
			Slot:      count.Slot,
			Tasks:     items,
			Total:     count.Total,
			Completed: count.Completed,
		})
	}

	return &DayView{
		Date:     snap.Date,
		Sections: sections,
		Progress: projector.ProgressPercentage(snap),
		Events:   events,
	}, nil
}
