// Package chat wires the pipeline behind the chat endpoint: detect
// language, extract intent, run the matching task operation, render a
// localized reply and persist both sides of the exchange.
package chat

import (
	"time"

	"tasksaathi/backend/config"
	"tasksaathi/backend/events"
	"tasksaathi/backend/nlp"
	"tasksaathi/backend/storage"
	"tasksaathi/backend/tools"
	"tasksaathi/backend/types"
)

type Service struct {
	store     storage.Store
	executor  *tools.Executor
	publisher events.Publisher
	now       func() time.Time
}

func NewService(store storage.Store, publisher events.Publisher) *Service {
	return &Service{
		store:     store,
		executor:  tools.NewExecutor(store),
		publisher: publisher,
		now:       time.Now,
	}
}

type TurnResult struct {
	ConversationID string
	MessageID      string
	Reply          string
	ToolCalls      []string // nil when no tool ran
}

// ProcessTurn handles one utterance end to end. An empty conversationID
// creates a fresh conversation; a non-empty one must belong to userID or
// the turn fails with storage.ErrNotFound before any pipeline work.
func (s *Service) ProcessTurn(userID, conversationID, text string) (TurnResult, error) {
	if conversationID == "" {
		conv, err := s.store.CreateConversation(userID, config.NewConversationTitle)
		if err != nil {
			return TurnResult{}, err
		}
		conversationID = conv.ID
	} else {
		if _, err := s.store.GetConversation(userID, conversationID); err != nil {
			return TurnResult{}, err
		}
		if err := s.store.TouchConversation(userID, conversationID); err != nil {
			return TurnResult{}, err
		}
	}

	if _, err := s.store.SaveMessage(types.Message{
		UserID:         userID,
		ConversationID: conversationID,
		Role:           types.RoleUser,
		Content:        text,
	}); err != nil {
		return TurnResult{}, err
	}

	lang := nlp.DetectLanguage(text)
	intent := nlp.ExtractIntent(text, lang, s.now())

	result, toolCalls := s.dispatch(userID, intent)

	reply := nlp.RenderResponse(intent, result, lang)

	assistant, err := s.store.SaveMessage(types.Message{
		UserID:         userID,
		ConversationID: conversationID,
		Role:           types.RoleAssistant,
		Content:        reply,
		ToolCalls:      toolCalls,
	})
	if err != nil {
		return TurnResult{}, err
	}

	return TurnResult{
		ConversationID: conversationID,
		MessageID:      assistant.ID,
		Reply:          reply,
		ToolCalls:      toolCalls,
	}, nil
}

func (s *Service) dispatch(userID string, intent nlp.Intent) (types.ToolResult, []string) {
	switch intent.Kind {
	case nlp.IntentAddTask:
		result := s.executor.AddTask(userID, tools.AddTaskInput{
			Title:    intent.Title,
			Priority: intent.Priority,
			DueDate:  intent.DueDate,
		})
		return result, []string{nlp.IntentAddTask}

	case nlp.IntentListTasks:
		return s.executor.ListTasks(userID, intent.Status), []string{nlp.IntentListTasks}

	case nlp.IntentCompleteTask:
		// Resolve against a fresh pending snapshot, not conversation state.
		tasks, err := s.store.ListTasks(userID, storage.StatusPending)
		if err != nil || len(tasks) == 0 {
			return types.ToolResult{
				Outcome: types.OutcomeNotFound,
				Message: "No pending tasks found",
			}, nil
		}

		taskID, _ := tools.ResolveTaskRef(intent.TaskRef, tasks)
		result := s.executor.CompleteTask(userID, taskID)
		if result.OK() {
			s.publisher.Publish(types.TaskLifecycleEvent{
				Type:      config.EventTaskUpdated,
				UserID:    userID,
				TaskID:    taskID,
				Completed: true,
			})
		}
		return result, []string{nlp.IntentListTasks, nlp.IntentCompleteTask}

	case nlp.IntentDeleteTask:
		tasks, err := s.store.ListTasks(userID, storage.StatusAll)
		if err != nil || len(tasks) == 0 {
			return types.ToolResult{
				Outcome: types.OutcomeNotFound,
				Message: "No tasks found",
			}, nil
		}

		taskID, _ := tools.ResolveTaskRef(intent.TaskRef, tasks)
		result := s.executor.DeleteTask(userID, taskID)
		return result, []string{nlp.IntentListTasks, nlp.IntentDeleteTask}
	}

	// Unknown intent: no tool runs, renderer falls back to the help text.
	return types.ToolResult{}, nil
}
