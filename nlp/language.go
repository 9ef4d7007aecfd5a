// Package nlp implements the pattern-matching "mock AI" behind the chat
// endpoint: language detection, intent extraction and reply templating.
// It is deliberately not a language model - every rule is an ordered
// keyword or regex match.
package nlp

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageUrdu    Language = "urdu"
)

// DetectLanguage classifies an utterance as Urdu when it contains any code
// point in the Arabic script block (U+0600..U+06FF), English otherwise.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return LanguageUrdu
		}
	}
	return LanguageEnglish
}
