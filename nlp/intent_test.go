package nlp

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestExtractIntentAddTask(t *testing.T) {
	cases := []struct {
		name         string
		text         string
		wantTitle    string
		wantPriority string
		wantDueDate  string
	}{
		{
			name:      "add task with colon",
			text:      "Add task: buy milk",
			wantTitle: "buy milk",
		},
		{
			name:      "add task without colon",
			text:      "Add task to buy groceries",
			wantTitle: "to buy groceries",
		},
		{
			name:      "create task",
			text:      "create task: finish the report",
			wantTitle: "finish the report",
		},
		{
			name:      "add to my list",
			text:      "add call the plumber to my list",
			wantTitle: "call the plumber",
		},
		{
			// The capture keeps the trailing date word; that is the
			// documented behavior, not a bug.
			name:         "remind me with priority and date",
			text:         "high priority remind me to call mom tomorrow",
			wantTitle:    "call mom tomorrow",
			wantPriority: "high",
			wantDueDate:  "2026-03-15",
		},
		{
			name:         "urgent keyword",
			text:         "add task: pay rent urgent",
			wantTitle:    "pay rent urgent",
			wantPriority: "high",
		},
		{
			name:         "low priority today",
			text:         "new task: water plants today, low priority",
			wantTitle:    "water plants today, low priority",
			wantPriority: "low",
			wantDueDate:  "2026-03-14",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractIntent(tc.text, LanguageEnglish, now)
			if got.Kind != IntentAddTask {
				t.Fatalf("kind = %s, want add_task", got.Kind)
			}
			if got.Title != tc.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tc.wantTitle)
			}
			if got.Priority != tc.wantPriority {
				t.Errorf("priority = %q, want %q", got.Priority, tc.wantPriority)
			}
			if got.DueDate != tc.wantDueDate {
				t.Errorf("due date = %q, want %q", got.DueDate, tc.wantDueDate)
			}
		})
	}
}

func TestExtractIntentAddWinsOverList(t *testing.T) {
	// Contains both an add trigger and the "list" keyword; the add
	// category is checked first and must win.
	got := ExtractIntent("add task: reorganize my list", LanguageEnglish, now)
	if got.Kind != IntentAddTask {
		t.Fatalf("kind = %s, want add_task", got.Kind)
	}
	if got.Title != "reorganize my list" {
		t.Fatalf("title = %q", got.Title)
	}
}

func TestExtractIntentListTasks(t *testing.T) {
	cases := []struct {
		text       string
		wantStatus string
	}{
		{"show my tasks", "all"},
		{"what tasks do I have", "all"},
		{"list pending tasks", "pending"},
		{"show incomplete tasks", "pending"},
		{"display completed tasks", "completed"},
	}

	for _, tc := range cases {
		got := ExtractIntent(tc.text, LanguageEnglish, now)
		if got.Kind != IntentListTasks {
			t.Fatalf("ExtractIntent(%q).Kind = %s, want list_tasks", tc.text, got.Kind)
		}
		if got.Status != tc.wantStatus {
			t.Errorf("ExtractIntent(%q).Status = %q, want %q", tc.text, got.Status, tc.wantStatus)
		}
	}
}

func TestExtractIntentCompleteAndDelete(t *testing.T) {
	cases := []struct {
		text     string
		wantKind string
		wantRef  string
	}{
		{"complete first task", IntentCompleteTask, RefFirst},
		{"finish the last one", IntentCompleteTask, RefLast},
		{"mark it off", IntentCompleteTask, RefFirst}, // defaults to first
		{"delete first task", IntentDeleteTask, RefFirst},
		{"remove the last task", IntentDeleteTask, RefLast},
		{"cancel that", IntentDeleteTask, RefFirst},
	}

	for _, tc := range cases {
		got := ExtractIntent(tc.text, LanguageEnglish, now)
		if got.Kind != tc.wantKind {
			t.Fatalf("ExtractIntent(%q).Kind = %s, want %s", tc.text, got.Kind, tc.wantKind)
		}
		if got.TaskRef != tc.wantRef {
			t.Errorf("ExtractIntent(%q).TaskRef = %q, want %q", tc.text, got.TaskRef, tc.wantRef)
		}
	}
}

func TestExtractIntentUrdu(t *testing.T) {
	add := ExtractIntent("نیا کام: دودھ خریدنا", LanguageUrdu, now)
	if add.Kind != IntentAddTask || add.Title != "دودھ خریدنا" {
		t.Fatalf("urdu add = %+v", add)
	}

	list := ExtractIntent("میری فہرست دکھاؤ", LanguageUrdu, now)
	if list.Kind != IntentListTasks || list.Status != "all" {
		t.Fatalf("urdu list = %+v", list)
	}

	complete := ExtractIntent("پہلا کام مکمل کرو", LanguageUrdu, now)
	if complete.Kind != IntentListTasks {
		// "کام" is also a list keyword and the list category is checked
		// before completion, mirroring the source ordering.
		t.Fatalf("urdu complete-phrase kind = %s", complete.Kind)
	}

	del := ExtractIntent("آخری حذف کرو", LanguageUrdu, now)
	if del.Kind != IntentDeleteTask || del.TaskRef != RefLast {
		t.Fatalf("urdu delete = %+v", del)
	}
}

func TestExtractIntentUnknown(t *testing.T) {
	got := ExtractIntent("how are you?", LanguageEnglish, now)
	if got.Kind != IntentUnknown {
		t.Fatalf("kind = %s, want unknown", got.Kind)
	}
}
