package cli

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"day-planner/internal/api"
	"day-planner/internal/auth"
	"day-planner/internal/config"
	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/timeslot"
)

// mockPlannerAPI implements the API interface for testing
type mockPlannerAPI struct {
	registry *timeslot.Registry
	roster   domain.Roster
	tasks    map[string]map[string][]domain.Task // date -> slot -> tasks
	prefs    map[string]string
	selected string
	nextID   int
	failWith error // when set, every operation fails with this error
}

// newMockPlannerAPI creates a new mock API instance
func newMockPlannerAPI() *mockPlannerAPI {
	return &mockPlannerAPI{
		registry: timeslot.Default(),
		roster:   domain.DefaultRoster,
		tasks:    make(map[string]map[string][]domain.Task),
		prefs:    make(map[string]string),
		nextID:   1,
	}
}

func (m *mockPlannerAPI) Day(ctx context.Context, date string) (*api.DayView, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
	}
	m.selected = date

	view := &api.DayView{Date: date}
	total := 0
	completed := 0
	for _, slot := range m.registry.Slots() {
		section := api.SlotSection{Slot: slot}
		for _, task := range m.tasks[date][slot] {
			section.Tasks = append(section.Tasks, api.TaskItem{
				Task:            task,
				AssigneeColor:   m.roster.ColorFor(task.Assignee, domain.AssigneePalette),
				AssigneeInitial: domain.Initial(task.Assignee),
			})
			section.Total++
			if task.Completed {
				section.Completed++
			}
		}
		total += section.Total
		completed += section.Completed
		view.Sections = append(view.Sections, section)
	}
	if total > 0 {
		view.Progress = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return view, nil
}

func (m *mockPlannerAPI) SelectedDate() string {
	return m.selected
}

func (m *mockPlannerAPI) AddTask(ctx context.Context, slot, title string, priority domain.Priority, assignee, date string) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if strings.TrimSpace(title) == "" {
		return nil, errors.NewValidationError("title must not be empty", nil)
	}
	if !m.registry.Contains(slot) {
		return nil, errors.NewInvalidInputError("time_slot", slot, "not a registered time slot")
	}

	task := domain.NewTask(strings.TrimSpace(title), slot, date)
	task.ID = fmt.Sprintf("task-%d", m.nextID)
	task.Priority = priority
	task.Assignee = assignee
	m.nextID++

	if m.tasks[date] == nil {
		m.tasks[date] = make(map[string][]domain.Task)
	}
	m.tasks[date][slot] = append(m.tasks[date][slot], task)
	return &task, nil
}

func (m *mockPlannerAPI) ToggleCompletion(ctx context.Context, slot, taskID string) (*domain.Task, error) {
	return m.mutate(slot, taskID, func(task *domain.Task) {
		task.Completed = !task.Completed
	})
}

func (m *mockPlannerAPI) EditTitle(ctx context.Context, slot, taskID, title string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.NewValidationError("title must not be empty", nil)
	}
	return m.mutate(slot, taskID, func(task *domain.Task) {
		task.Title = strings.TrimSpace(title)
	})
}

func (m *mockPlannerAPI) Reassign(ctx context.Context, slot, taskID, assignee string) (*domain.Task, error) {
	return m.mutate(slot, taskID, func(task *domain.Task) {
		task.Assignee = assignee
	})
}

func (m *mockPlannerAPI) DeleteTask(ctx context.Context, slot, taskID string) error {
	if m.failWith != nil {
		return m.failWith
	}
	bucket := m.tasks[m.selected][slot]
	for i, task := range bucket {
		if task.ID == taskID {
			m.tasks[m.selected][slot] = append(bucket[:i], bucket[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("task", taskID)
}

func (m *mockPlannerAPI) ExportICS(ctx context.Context, date string) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
	}
	m.selected = date
	return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
}

func (m *mockPlannerAPI) GetPreference(ctx context.Context, key string) (string, error) {
	value, ok := m.prefs[key]
	if !ok {
		return "", errors.NewNotFoundError("preference", key)
	}
	return value, nil
}

func (m *mockPlannerAPI) SetPreference(ctx context.Context, key, value string) error {
	m.prefs[key] = value
	return nil
}

func (m *mockPlannerAPI) Slots() []string {
	return m.registry.Slots()
}

func (m *mockPlannerAPI) Roster() []string {
	return m.roster.Members()
}

func (m *mockPlannerAPI) mutate(slot, taskID string, apply func(*domain.Task)) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	bucket := m.tasks[m.selected][slot]
	for i := range bucket {
		if bucket[i].ID == taskID {
			apply(&bucket[i])
			copied := bucket[i]
			return &copied, nil
		}
	}
	return nil, errors.NewNotFoundError("task", taskID)
}

var _ api.API = (*mockPlannerAPI)(nil)

// mockAuthProvider implements the auth Provider interface for testing
type mockAuthProvider struct {
	identities map[string]auth.Identity // email -> identity
	signUpErr  error
}

func newMockAuthProvider() *mockAuthProvider {
	return &mockAuthProvider{identities: make(map[string]auth.Identity)}
}

func (m *mockAuthProvider) SignUp(ctx context.Context, email, password, displayName string) (*auth.Identity, error) {
	if m.signUpErr != nil {
		return nil, m.signUpErr
	}
	identity := auth.Identity{
		UserID:      fmt.Sprintf("user-%d", len(m.identities)+1),
		Email:       strings.ToLower(email),
		DisplayName: displayName,
	}
	m.identities[identity.Email] = identity
	return &identity, nil
}

func (m *mockAuthProvider) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	identity, ok := m.identities[strings.ToLower(email)]
	if !ok {
		return nil, errors.NewAuthError("invalid email or password", nil)
	}
	return &auth.Session{Token: "mock-token", Identity: identity, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockAuthProvider) SignOut(ctx context.Context, token string) error {
	return nil
}

func (m *mockAuthProvider) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	return nil, errors.NewAuthError("invalid session", nil)
}

func (m *mockAuthProvider) OnAuthStateChange(fn func(*auth.Identity)) func() {
	return func() {}
}

var _ auth.Provider = (*mockAuthProvider)(nil)

func setupTestAppWithMockAPI(t *testing.T) (*App, *mockPlannerAPI, *bytes.Buffer) {
	t.Helper()

	mockAPI := newMockPlannerAPI()
	cfg := config.NewConfig()
	cfg.Planner.DefaultDate = "2024-06-01"

	app := NewApp(mockAPI, newMockAuthProvider(), cfg)
	out := &bytes.Buffer{}
	app.out = out

	return app, mockAPI, out
}
