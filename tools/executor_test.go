package tools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksaathi/backend/storage"
	"tasksaathi/backend/storage/memory"
	"tasksaathi/backend/tools"
	"tasksaathi/backend/types"
)

func newExecutor(t *testing.T) (*tools.Executor, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.AddUser("u1")
	return tools.NewExecutor(store), store
}

func TestAddTaskDefaults(t *testing.T) {
	executor, store := newExecutor(t)

	result := executor.AddTask("u1", tools.AddTaskInput{Title: "buy milk"})
	require.Equal(t, types.OutcomeSuccess, result.Outcome)
	require.NotEmpty(t, result.TaskID)

	task, err := store.GetTask("u1", result.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, types.PriorityMedium, task.Priority)
	assert.False(t, task.Completed)
	assert.Nil(t, task.DueDate)
}

func TestAddTaskNormalizesPriority(t *testing.T) {
	executor, store := newExecutor(t)

	result := executor.AddTask("u1", tools.AddTaskInput{Title: "pay rent", Priority: "HIGH"})
	require.Equal(t, types.OutcomeSuccess, result.Outcome)

	task, err := store.GetTask("u1", result.TaskID)
	require.NoError(t, err)
	assert.Equal(t, types.PriorityHigh, task.Priority)
}

func TestAddTaskIgnoresMalformedDueDate(t *testing.T) {
	executor, store := newExecutor(t)

	result := executor.AddTask("u1", tools.AddTaskInput{Title: "x", DueDate: "not-a-date"})
	require.Equal(t, types.OutcomeSuccess, result.Outcome)

	task, err := store.GetTask("u1", result.TaskID)
	require.NoError(t, err)
	assert.Nil(t, task.DueDate, "malformed date must be dropped, not rejected")
}

func TestAddTaskParsesDueDate(t *testing.T) {
	executor, store := newExecutor(t)

	result := executor.AddTask("u1", tools.AddTaskInput{Title: "x", DueDate: "2026-04-01"})
	require.Equal(t, types.OutcomeSuccess, result.Outcome)

	task, err := store.GetTask("u1", result.TaskID)
	require.NoError(t, err)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-04-01", task.DueDate.Format("2006-01-02"))
}

func TestAddTaskUnknownUser(t *testing.T) {
	executor, _ := newExecutor(t)

	result := executor.AddTask("ghost", tools.AddTaskInput{Title: "x"})
	assert.Equal(t, types.OutcomeNotFound, result.Outcome)
	assert.Contains(t, result.Message, "ghost")
}

func TestListTasksStatusFilter(t *testing.T) {
	executor, _ := newExecutor(t)

	first := executor.AddTask("u1", tools.AddTaskInput{Title: "one"})
	executor.AddTask("u1", tools.AddTaskInput{Title: "two"})
	require.Equal(t, types.OutcomeSuccess, executor.CompleteTask("u1", first.TaskID).Outcome)

	all := executor.ListTasks("u1", storage.StatusAll)
	require.Equal(t, types.OutcomeSuccess, all.Outcome)
	assert.Len(t, all.Tasks, 2)

	pending := executor.ListTasks("u1", storage.StatusPending)
	require.Len(t, pending.Tasks, 1)
	assert.Equal(t, "two", pending.Tasks[0].Title)

	completed := executor.ListTasks("u1", storage.StatusCompleted)
	require.Len(t, completed.Tasks, 1)
	assert.Equal(t, "one", completed.Tasks[0].Title)
}

func TestCompleteTaskScopedToUser(t *testing.T) {
	executor, store := newExecutor(t)
	store.AddUser("u2")

	created := executor.AddTask("u1", tools.AddTaskInput{Title: "mine"})

	foreign := executor.CompleteTask("u2", created.TaskID)
	assert.Equal(t, types.OutcomeNotFound, foreign.Outcome)

	owned := executor.CompleteTask("u1", created.TaskID)
	require.Equal(t, types.OutcomeSuccess, owned.Outcome)

	task, err := store.GetTask("u1", created.TaskID)
	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestDeleteTask(t *testing.T) {
	executor, store := newExecutor(t)

	created := executor.AddTask("u1", tools.AddTaskInput{Title: "gone soon"})

	result := executor.DeleteTask("u1", created.TaskID)
	require.Equal(t, types.OutcomeSuccess, result.Outcome)
	assert.Equal(t, "gone soon", result.Title)

	_, err := store.GetTask("u1", created.TaskID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	again := executor.DeleteTask("u1", created.TaskID)
	assert.Equal(t, types.OutcomeNotFound, again.Outcome)
}

func TestUpdateTask(t *testing.T) {
	executor, store := newExecutor(t)

	created := executor.AddTask("u1", tools.AddTaskInput{Title: "old"})

	result := executor.UpdateTask("u1", created.TaskID, map[string]interface{}{
		"title":    "new",
		"priority": "LOW",
		"due_date": "2026-05-01",
	})
	require.Equal(t, types.OutcomeSuccess, result.Outcome)

	task, err := store.GetTask("u1", created.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "new", task.Title)
	assert.Equal(t, types.PriorityLow, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-05-01", task.DueDate.Format("2006-01-02"))
}
