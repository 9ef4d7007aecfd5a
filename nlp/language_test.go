package nlp

import "testing"

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Language
	}{
		{"english", "Add task: buy milk", LanguageEnglish},
		{"urdu", "نیا کام: دودھ خریدنا", LanguageUrdu},
		{"mixed script counts as urdu", "please فہرست", LanguageUrdu},
		{"single urdu rune", "آج", LanguageUrdu},
		{"empty", "", LanguageEnglish},
		{"digits and punctuation", "12345 !?", LanguageEnglish},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.text); got != tc.want {
				t.Fatalf("DetectLanguage(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}
