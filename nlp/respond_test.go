package nlp

import (
	"strings"
	"testing"

	"tasksaathi/backend/types"
)

func TestRenderAddTask(t *testing.T) {
	intent := Intent{Kind: IntentAddTask, Title: "buy milk"}

	ok := RenderResponse(intent, types.ToolResult{Outcome: types.OutcomeSuccess, Title: "buy milk"}, LanguageEnglish)
	if ok != "✅ Task added: buy milk" {
		t.Fatalf("success reply = %q", ok)
	}

	failed := RenderResponse(intent, types.ToolResult{Outcome: types.OutcomeInternal, Message: "Failed to add task: boom"}, LanguageEnglish)
	if !strings.HasPrefix(failed, "❌ ") || !strings.Contains(failed, "Failed to add task") {
		t.Fatalf("failure reply = %q", failed)
	}
}

func TestRenderEmptyListIsDistinct(t *testing.T) {
	intent := Intent{Kind: IntentListTasks, Status: "all"}

	empty := RenderResponse(intent, types.ToolResult{Outcome: types.OutcomeSuccess}, LanguageEnglish)
	if empty != "📋 Your task list is empty." {
		t.Fatalf("empty reply = %q", empty)
	}

	listed := RenderResponse(intent, types.ToolResult{
		Outcome: types.OutcomeSuccess,
		Tasks: []types.TaskSummary{
			{Title: "buy milk"},
			{Title: "pay rent", Completed: true},
		},
	}, LanguageEnglish)

	if !strings.Contains(listed, "You have 2 task(s)") {
		t.Fatalf("itemized reply missing count: %q", listed)
	}
	if !strings.Contains(listed, "1. ⏳ buy milk") || !strings.Contains(listed, "2. ✅ pay rent") {
		t.Fatalf("itemized reply missing entries: %q", listed)
	}
}

func TestRenderCompleteAndDelete(t *testing.T) {
	complete := RenderResponse(Intent{Kind: IntentCompleteTask}, types.ToolResult{Outcome: types.OutcomeSuccess, Title: "pay rent"}, LanguageEnglish)
	if complete != "✅ Marked 'pay rent' as completed" {
		t.Fatalf("complete reply = %q", complete)
	}

	deleted := RenderResponse(Intent{Kind: IntentDeleteTask}, types.ToolResult{Outcome: types.OutcomeSuccess, Title: "pay rent"}, LanguageEnglish)
	if deleted != "🗑️ Deleted task: pay rent" {
		t.Fatalf("delete reply = %q", deleted)
	}

	notFound := RenderResponse(Intent{Kind: IntentCompleteTask}, types.ToolResult{Outcome: types.OutcomeNotFound, Message: "No pending tasks found"}, LanguageEnglish)
	if notFound != "❌ No pending tasks found" {
		t.Fatalf("not-found reply = %q", notFound)
	}
}

func TestRenderUnknownIsHelp(t *testing.T) {
	en := RenderResponse(Intent{Kind: IntentUnknown}, types.ToolResult{}, LanguageEnglish)
	if !strings.Contains(en, "Add task: buy milk") {
		t.Fatalf("english help = %q", en)
	}

	ur := RenderResponse(Intent{Kind: IntentUnknown}, types.ToolResult{}, LanguageUrdu)
	if !strings.Contains(ur, "نیا کام") {
		t.Fatalf("urdu help = %q", ur)
	}
}

func TestRenderUrdu(t *testing.T) {
	add := RenderResponse(Intent{Kind: IntentAddTask}, types.ToolResult{Outcome: types.OutcomeSuccess, Title: "دودھ خریدنا"}, LanguageUrdu)
	if add != "✅ کام شامل کیا گیا: دودھ خریدنا" {
		t.Fatalf("urdu add reply = %q", add)
	}

	empty := RenderResponse(Intent{Kind: IntentListTasks}, types.ToolResult{Outcome: types.OutcomeSuccess}, LanguageUrdu)
	if empty != "📋 آپ کی فہرست خالی ہے۔" {
		t.Fatalf("urdu empty reply = %q", empty)
	}
}

func TestRenderUndefinedCombinationFallsBack(t *testing.T) {
	got := RenderResponse(Intent{Kind: "bogus"}, types.ToolResult{}, LanguageEnglish)
	if got != "❌ Something went wrong" {
		t.Fatalf("fallback reply = %q", got)
	}
}
