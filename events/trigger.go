package events

import (
	"sync"
	"time"

	"tasksaathi/backend/config"
	"tasksaathi/backend/storage"
	"tasksaathi/backend/types"
)

// seenLimit bounds the dedup set so long-lived processes don't grow it
// forever.
const seenLimit = 10000

// Trigger reacts to "task marked completed" notifications by spawning the
// next occurrence of a recurring task. Safe for concurrent deliveries:
// the read-decide-spawn sequence is serialized per task.
type Trigger struct {
	store storage.Store
	now   func() time.Time

	mu    sync.Mutex
	seen  map[string]bool
	order []string
	locks map[string]*sync.Mutex
}

func NewTrigger(store storage.Store) *Trigger {
	return &Trigger{
		store: store,
		now:   time.Now,
		seen:  make(map[string]bool),
		locks: make(map[string]*sync.Mutex),
	}
}

// HandleTaskLifecycle processes one delivered lifecycle event. It always
// acks; failures are logged, never retried.
func (t *Trigger) HandleTaskLifecycle(event types.PubsubEvent) {
	data := event.Data
	config.Logger.Infof("Received lifecycle event: %s for task %s", data.Type, data.TaskID)

	if data.Type != config.EventTaskUpdated || !data.Completed {
		return
	}
	if data.TaskID == "" {
		config.Logger.Warn("Lifecycle event missing task id")
		return
	}

	// The transport is at-least-once: a redelivered event id must not
	// spawn a second successor. Events without an id are processed as-is.
	if event.ID != "" && !t.markSeen(event.ID) {
		config.Logger.Infof("Skipping duplicate lifecycle event %s", event.ID)
		return
	}

	lock := t.taskLock(data.TaskID)
	lock.Lock()
	defer lock.Unlock()

	task, err := t.store.GetTask(data.UserID, data.TaskID)
	if err != nil {
		config.Logger.Warnf("Lifecycle event for unknown task %s: %v", data.TaskID, err)
		return
	}

	if task.Recurrence == "" || task.Recurrence == types.RecurrenceNone {
		return
	}

	due := NextDueDate(task.Recurrence, task.DueDate, t.now().UTC())

	// The successor never inherits the completion flag or the reminder.
	successor := types.Task{
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     &due,
		Recurrence:  task.Recurrence,
		Tags:        task.Tags,
	}

	created, err := t.store.CreateTask(successor)
	if err != nil {
		config.Logger.Warn("Failed to create recurring task:", err)
		return
	}
	config.Logger.Infof("Created recurring task: %s for %s", created.Title, due.Format(time.RFC3339))
}

// HandleReminder logs a fired reminder. A real deployment would fan this
// out to push/email; the backend only acknowledges it.
func (t *Trigger) HandleReminder(event types.ReminderPubsubEvent) {
	config.Logger.Infof("🔔 Reminder triggered: %s (task %s)", event.Data.Title, event.Data.TaskID)
}

// NextDueDate adds the recurrence offset to the previous due date, or to
// now when the task had none. Monthly is a fixed 30 days - a known
// simplification, not calendar-month arithmetic.
func NextDueDate(recurrence string, due *time.Time, now time.Time) time.Time {
	base := now
	if due != nil {
		base = *due
	}

	switch recurrence {
	case types.RecurrenceDaily:
		return base.AddDate(0, 0, 1)
	case types.RecurrenceWeekly:
		return base.AddDate(0, 0, 7)
	case types.RecurrenceMonthly:
		return base.AddDate(0, 0, 30)
	}
	return base
}

func (t *Trigger) markSeen(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seen[id] {
		return false
	}
	t.seen[id] = true
	t.order = append(t.order, id)
	if len(t.order) > seenLimit {
		delete(t.seen, t.order[0])
		t.order = t.order[1:]
	}
	return true
}

func (t *Trigger) taskLock(taskID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[taskID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[taskID] = l
	}
	return l
}

// Subscriptions declares the topic bindings the sidecar should deliver to
// this service.
func Subscriptions() []types.Subscription {
	return []types.Subscription{
		{PubsubName: config.PubsubName, Topic: config.TaskEventsTopic, Route: config.TaskLifecycleRoute},
		{PubsubName: config.PubsubName, Topic: config.RemindersTopic, Route: config.RemindersRoute},
	}
}
