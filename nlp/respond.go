package nlp

import (
	"fmt"
	"strings"

	"tasksaathi/backend/types"
)

const (
	helpEnglish = "🤔 I'm not sure what you want to do. Try:\n• 'Add task: buy milk'\n• 'Show my tasks'\n• 'Complete first task'\n• 'Delete last task'"
	helpUrdu    = "🤔 میں سمجھ نہیں سکا۔ کوشش کریں:\n• 'نیا کام: دودھ خریدنا'\n• 'میری فہرست دکھاؤ'\n• 'پہلا کام مکمل کرو'\n• 'آخری کام حذف کرو'"

	fallbackEnglish = "❌ Something went wrong"
	fallbackUrdu    = "❌ کچھ غلط ہو گیا"
)

// RenderResponse turns (intent, result, language) into the reply shown to
// the user. It is total over the declared intent/outcome space; anything
// outside it gets the generic failure string.
func RenderResponse(intent Intent, result types.ToolResult, lang Language) string {
	if lang == LanguageUrdu {
		return renderUrdu(intent, result)
	}
	return renderEnglish(intent, result)
}

func renderEnglish(intent Intent, result types.ToolResult) string {
	switch intent.Kind {
	case IntentAddTask:
		if result.OK() {
			return fmt.Sprintf("✅ Task added: %s", result.Title)
		}
		return "❌ " + failureMessage(result, "Failed to add task")

	case IntentListTasks:
		if result.OK() {
			if len(result.Tasks) == 0 {
				return "📋 Your task list is empty."
			}
			var b strings.Builder
			fmt.Fprintf(&b, "📋 You have %d task(s):\n\n", len(result.Tasks))
			for i, task := range result.Tasks {
				fmt.Fprintf(&b, "%d. %s %s\n", i+1, statusGlyph(task.Completed), task.Title)
			}
			return strings.TrimSpace(b.String())
		}
		return "❌ " + failureMessage(result, "Failed to list tasks")

	case IntentCompleteTask:
		if result.OK() {
			return fmt.Sprintf("✅ Marked '%s' as completed", result.Title)
		}
		return "❌ " + failureMessage(result, "Failed to complete task")

	case IntentDeleteTask:
		if result.OK() {
			return fmt.Sprintf("🗑️ Deleted task: %s", result.Title)
		}
		return "❌ " + failureMessage(result, "Failed to delete task")

	case IntentUnknown:
		return helpEnglish
	}

	return fallbackEnglish
}

func renderUrdu(intent Intent, result types.ToolResult) string {
	switch intent.Kind {
	case IntentAddTask:
		if result.OK() {
			return fmt.Sprintf("✅ کام شامل کیا گیا: %s", result.Title)
		}
		return "❌ کام شامل نہیں ہو سکا"

	case IntentListTasks:
		if result.OK() {
			if len(result.Tasks) == 0 {
				return "📋 آپ کی فہرست خالی ہے۔"
			}
			var b strings.Builder
			fmt.Fprintf(&b, "📋 آپ کے %d کام:\n\n", len(result.Tasks))
			for i, task := range result.Tasks {
				fmt.Fprintf(&b, "%d. %s %s\n", i+1, statusGlyph(task.Completed), task.Title)
			}
			return strings.TrimSpace(b.String())
		}
		return "❌ فہرست نہیں دکھائی جا سکی"

	case IntentCompleteTask:
		if result.OK() {
			return "✅ کام مکمل ہو گیا"
		}
		return "❌ کام مکمل نہیں ہو سکا"

	case IntentDeleteTask:
		if result.OK() {
			return "🗑️ کام حذف ہو گیا"
		}
		return "❌ کام حذف نہیں ہو سکا"

	case IntentUnknown:
		return helpUrdu
	}

	return fallbackUrdu
}

func statusGlyph(completed bool) string {
	if completed {
		return "✅"
	}
	return "⏳"
}

// failureMessage prefers the message the executor produced, so storage
// errors surface to the user as readable text rather than raw errors.
func failureMessage(result types.ToolResult, fallback string) string {
	if result.Message != "" {
		return result.Message
	}
	return fallback
}
