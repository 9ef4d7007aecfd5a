package nlp

import (
	"regexp"
	"strings"
	"time"

	"tasksaathi/backend/types"
)

// Intent kinds. The values double as tool names in assistant messages.
const (
	IntentAddTask      = "add_task"
	IntentListTasks    = "list_tasks"
	IntentCompleteTask = "complete_task"
	IntentDeleteTask   = "delete_task"
	IntentUnknown      = "unknown"
)

// Task references
const (
	RefFirst = "first"
	RefLast  = "last"
)

// Intent is the classified action an utterance requests plus the
// parameters extracted for it. Only the fields relevant to Kind are set.
type Intent struct {
	Kind     string
	Title    string // add_task
	Priority string // add_task, empty when no keyword matched
	DueDate  string // add_task, ISO date, empty when no keyword matched
	Status   string // list_tasks: all | pending | completed
	TaskRef  string // complete_task / delete_task: first | last
}

// Add-task trigger phrases, tried in order; the first match wins and its
// captured remainder becomes the task title.
var addPatternsEnglish = []*regexp.Regexp{
	regexp.MustCompile(`(?i)add task:?\s*(.+)`),
	regexp.MustCompile(`(?i)create task:?\s*(.+)`),
	regexp.MustCompile(`(?i)new task:?\s*(.+)`),
	regexp.MustCompile(`(?i)add\s+(.+)\s+to\s+(?:my\s+)?list`),
	regexp.MustCompile(`(?i)remind me to\s+(.+)`),
}

var addPatternsUrdu = []*regexp.Regexp{
	regexp.MustCompile(`نیا کام:?\s*(.+)`),
	regexp.MustCompile(`کام شامل کرو:?\s*(.+)`),
	regexp.MustCompile(`یاد دہانی:?\s*(.+)`),
}

// Keyword tables. Priority and date keywords mix both languages on
// purpose: they are scanned over the whole utterance regardless of the
// detected language.
var (
	highPriorityWords = []string{"high priority", "urgent", "important", "ضروری", "انتہائی"}
	lowPriorityWords  = []string{"low priority", "not urgent", "معمولی"}
	medPriorityWords  = []string{"medium", "درمیانہ"}

	todayWords    = []string{"today", "آج"}
	tomorrowWords = []string{"tomorrow", "کل"}

	listWordsEnglish = []string{"show", "list", "display", "view", "my tasks", "what tasks"}
	listWordsUrdu    = []string{"دکھاؤ", "فہرست", "کام"}

	pendingWords   = []string{"pending", "incomplete", "زیر التواء"}
	completedWords = []string{"completed", "done", "مکمل"}

	completeWordsEnglish = []string{"complete", "finish", "done", "mark"}
	completeWordsUrdu    = []string{"مکمل", "ختم"}

	deleteWordsEnglish = []string{"delete", "remove", "cancel"}
	deleteWordsUrdu    = []string{"حذف", "ہٹاؤ"}

	firstWords = []string{"first", "پہلا"}
	lastWords  = []string{"last", "آخری"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// extractTaskTitle tries the language's add patterns in order and returns
// the trimmed capture of the first one that matches.
func extractTaskTitle(text string, lang Language) string {
	patterns := addPatternsEnglish
	if lang == LanguageUrdu {
		patterns = addPatternsUrdu
	}
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractIntent classifies an utterance. Categories are evaluated in a
// fixed priority order and the first hit wins, so an utterance matching
// both an add trigger and a list keyword is an add. now anchors the
// today/tomorrow keywords and is taken in UTC.
func ExtractIntent(text string, lang Language, now time.Time) Intent {
	lower := strings.ToLower(text)

	// Add task: a matching trigger phrase short-circuits everything else.
	if title := extractTaskTitle(text, lang); title != "" {
		intent := Intent{Kind: IntentAddTask, Title: title}

		switch {
		case containsAny(lower, highPriorityWords):
			intent.Priority = types.PriorityHigh
		case containsAny(lower, lowPriorityWords):
			intent.Priority = types.PriorityLow
		case containsAny(lower, medPriorityWords):
			intent.Priority = types.PriorityMedium
		}

		switch {
		case containsAny(lower, todayWords):
			intent.DueDate = now.UTC().Format("2006-01-02")
		case containsAny(lower, tomorrowWords):
			intent.DueDate = now.UTC().AddDate(0, 0, 1).Format("2006-01-02")
		}

		return intent
	}

	listWords := listWordsEnglish
	if lang == LanguageUrdu {
		listWords = listWordsUrdu
	}
	if containsAny(lower, listWords) {
		return Intent{Kind: IntentListTasks, Status: listStatus(lower)}
	}

	completeWords := completeWordsEnglish
	if lang == LanguageUrdu {
		completeWords = completeWordsUrdu
	}
	if containsAny(lower, completeWords) {
		return Intent{Kind: IntentCompleteTask, TaskRef: taskRef(lower)}
	}

	deleteWords := deleteWordsEnglish
	if lang == LanguageUrdu {
		deleteWords = deleteWordsUrdu
	}
	if containsAny(lower, deleteWords) {
		return Intent{Kind: IntentDeleteTask, TaskRef: taskRef(lower)}
	}

	return Intent{Kind: IntentUnknown}
}

func listStatus(lower string) string {
	switch {
	case containsAny(lower, pendingWords):
		return "pending"
	case containsAny(lower, completedWords):
		return "completed"
	default:
		return "all"
	}
}

func taskRef(lower string) string {
	switch {
	case containsAny(lower, firstWords):
		return RefFirst
	case containsAny(lower, lastWords):
		return RefLast
	default:
		return RefFirst
	}
}
