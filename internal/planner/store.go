package planner

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/logging"
	"day-planner/internal/repository/sqlite"
	"day-planner/internal/timeslot"
	"day-planner/internal/validation"
)

// ErrStaleLoad marks a load that was superseded by a newer date selection
// before its response arrived. It is not user-visible; callers drop it and
// let the newer load own the store state.
var ErrStaleLoad = stderrors.New("stale load discarded")

// Snapshot is the slot -> ordered task mapping for the selected date. Every
// registry slot is present, slots without tasks map to an empty sequence.
type Snapshot struct {
	Date  string
	Slots []string
	Tasks map[string][]domain.Task
}

// TotalCount returns the number of tasks across all slots.
func (s Snapshot) TotalCount() int {
	total := 0
	for _, tasks := range s.Tasks {
		total += len(tasks)
	}
	return total
}

// CompletedCount returns the number of completed tasks across all slots.
func (s Snapshot) CompletedCount() int {
	completed := 0
	for _, tasks := range s.Tasks {
		for _, task := range tasks {
			if task.Completed {
				completed++
			}
		}
	}
	return completed
}

// Store owns the authoritative in-memory view of tasks for the selected
// date, keyed by time slot. Every mutation is two-phase: the gateway call
// happens first and the in-memory copy is only updated after it succeeds,
// so displayed state never diverges from last-confirmed-persisted state.
type Store struct {
	gateway       sqlite.Gateway
	registry      *timeslot.Registry
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator

	mu      sync.Mutex
	date    string
	tasks   map[string][]domain.Task
	loadSeq uint64
}

// NewStore creates a Store bound to a gateway, slot registry and roster.
func NewStore(gateway sqlite.Gateway, registry *timeslot.Registry, roster domain.Roster) *Store {
	s := &Store{
		gateway:       gateway,
		registry:      registry,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(registry, roster),
	}
	s.tasks = s.emptyBuckets()
	return s
}

// NewStoreWithLimits creates a Store whose title validation uses the given
// length bounds instead of the defaults.
func NewStoreWithLimits(gateway sqlite.Gateway, registry *timeslot.Registry, roster domain.Roster, titleMin, titleMax int) *Store {
	s := NewStore(gateway, registry, roster)
	s.taskValidator = validation.NewTaskValidatorWithLimits(registry, roster, titleMin, titleMax)
	return s
}

// Registry returns the slot registry the store was built with.
func (s *Store) Registry() *timeslot.Registry {
	return s.registry
}

// SelectedDate returns the date the store currently holds tasks for.
func (s *Store) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// LoadForDate fetches all tasks for date from the gateway, groups them by
// time slot and replaces the in-memory view. The latest requested date wins:
// a load whose response arrives after a newer load has started is discarded
// and reported as ErrStaleLoad.
func (s *Store) LoadForDate(ctx context.Context, date string) (Snapshot, error) {
	if err := s.taskValidator.ValidateDate(date); err != nil {
		return Snapshot{}, errors.NewValidationError("invalid date", err)
	}

	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.date = date
	s.mu.Unlock()

	records, err := s.gateway.FetchByDate(ctx, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.loadSeq {
		logging.Debugf("discarding stale load for %s\n", date)
		return Snapshot{}, ErrStaleLoad
	}
	if err != nil {
		return Snapshot{}, err
	}

	buckets := s.emptyBuckets()
	for _, task := range s.mapper.Task.FromRecordSlice(records) {
		if _, ok := buckets[task.TimeSlot]; !ok {
			// Task persisted against a slot the registry no longer knows.
			logging.Debugf("dropping task %s with unregistered slot %q\n", task.ID, task.TimeSlot)
			continue
		}
		buckets[task.TimeSlot] = append(buckets[task.TimeSlot], task)
	}
	s.tasks = buckets

	return s.snapshotLocked(), nil
}

// AddTask validates and persists a new task, then appends it to the slot's
// sequence. The returned task carries the gateway-assigned ID.
func (s *Store) AddTask(ctx context.Context, slot, title string, priority domain.Priority, assignee, date string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if err := s.taskValidator.ValidateNewTask(slot, title, priority, assignee, date); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	task := domain.NewTask(title, slot, date)
	task.Priority = priority
	task.Assignee = assignee

	record := s.mapper.Task.ToRecord(task)
	if err := s.gateway.Create(ctx, &record); err != nil {
		return nil, err
	}
	task.ID = record.ID

	s.mu.Lock()
	defer s.mu.Unlock()

	// A task added for another date is persisted but does not belong to the
	// current snapshot; it will appear when that date is loaded.
	if date == s.date {
		s.tasks[slot] = append(s.tasks[slot], task)
	}

	return &task, nil
}

// ToggleCompletion flips the completed flag of the identified task.
func (s *Store) ToggleCompletion(ctx context.Context, slot, taskID string) (*domain.Task, error) {
	task, err := s.findTask(slot, taskID)
	if err != nil {
		return nil, err
	}

	next := !task.Completed
	if err := s.gateway.Update(ctx, taskID, sqlite.Fields{"completed": next}); err != nil {
		return nil, err
	}

	return s.apply(slot, taskID, func(t *domain.Task) {
		t.Completed = next
	})
}

// EditTitle updates the task's title in place.
func (s *Store) EditTitle(ctx context.Context, slot, taskID, newTitle string) (*domain.Task, error) {
	newTitle = strings.TrimSpace(newTitle)
	if err := s.taskValidator.ValidateTitle(newTitle); err != nil {
		return nil, errors.NewValidationError("invalid title", err)
	}

	if _, err := s.findTask(slot, taskID); err != nil {
		return nil, err
	}

	if err := s.gateway.Update(ctx, taskID, sqlite.Fields{"title": newTitle}); err != nil {
		return nil, err
	}

	return s.apply(slot, taskID, func(t *domain.Task) {
		t.Title = newTitle
	})
}

// Reassign updates the task's assignee in place. Roster membership is
// validated at the call edge, not re-validated here.
func (s *Store) Reassign(ctx context.Context, slot, taskID, assignee string) (*domain.Task, error) {
	if _, err := s.findTask(slot, taskID); err != nil {
		return nil, err
	}

	if err := s.gateway.Update(ctx, taskID, sqlite.Fields{"assignee": assignee}); err != nil {
		return nil, err
	}

	return s.apply(slot, taskID, func(t *domain.Task) {
		t.Assignee = assignee
	})
}

// DeleteTask persists the deletion, then removes the task from the slot's
// sequence. Repeating a delete after success reports NotFound and leaves
// the store unchanged.
func (s *Store) DeleteTask(ctx context.Context, slot, taskID string) error {
	if _, err := s.findTask(slot, taskID); err != nil {
		return err
	}

	if err := s.gateway.Delete(ctx, taskID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.tasks[slot]
	for i, task := range tasks {
		if task.ID == taskID {
			s.tasks[slot] = append(tasks[:i:i], tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Snapshot returns a copy of the current slot -> task mapping, safe to hand
// to projections.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Date:  s.date,
		Slots: s.registry.Slots(),
		Tasks: make(map[string][]domain.Task, len(s.tasks)),
	}
	for slot, tasks := range s.tasks {
		copied := make([]domain.Task, len(tasks))
		copy(copied, tasks)
		snap.Tasks[slot] = copied
	}
	return snap
}

func (s *Store) emptyBuckets() map[string][]domain.Task {
	buckets := make(map[string][]domain.Task, s.registry.Len())
	for _, slot := range s.registry.Slots() {
		buckets[slot] = []domain.Task{}
	}
	return buckets
}

// findTask locates a task by slot and id without mutating anything.
func (s *Store) findTask(slot, taskID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks[slot] {
		if task.ID == taskID {
			return task, nil
		}
	}
	return domain.Task{}, errors.NewNotFoundError("task", taskID).WithContext("time_slot", slot)
}

// apply mutates the in-memory copy of a task after a successful gateway
// call and returns the updated task.
func (s *Store) apply(slot, taskID string, mutate func(*domain.Task)) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.tasks[slot]
	for i := range tasks {
		if tasks[i].ID == taskID {
			mutate(&tasks[i])
			updated := tasks[i]
			return &updated, nil
		}
	}
	// The task vanished between the gateway call and the apply step; the
	// persisted state is authoritative, so surface it as not found.
	return nil, errors.NewNotFoundError("task", taskID).WithContext("time_slot", slot)
}
