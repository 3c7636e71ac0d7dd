package intent

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hazwanhalim/suaraform/internal/locale"
	"github.com/hazwanhalim/suaraform/internal/model"
)

// Intent labels what a transcript means to the conversation.
type Intent string

const (
	Value Intent = "value"
	Yes   Intent = "yes"
	No    Intent = "no"
	Skip  Intent = "skip"
)

// Classify labels a transcript as yes, no, skip or a plain value.
// Keyword matching is scoped to the active locale plus the English word
// lists, so a Malay keyword can no longer false-positive inside an
// English answer. Skip wins over yes/no since "skip" is an explicit
// command while yes/no words may appear inside longer value answers.
func Classify(text string, loc model.Locale) Intent {
	if matchAny(text, keywordScope(loc, func(k locale.Keywords) []string { return k.Skip })) {
		return Skip
	}

	yes, ok := YesNo(text, loc)
	if !ok {
		return Value
	}

	if yes {
		return Yes
	}

	return No
}

// YesNo classifies a transcript as an affirmative or negative answer.
// ok is false when neither (or both) is detected, which callers treat as
// "no signal" and re-prompt.
func YesNo(text string, loc model.Locale) (yes bool, ok bool) {
	isYes := matchAny(text, keywordScope(loc, func(k locale.Keywords) []string { return k.Yes }))
	isNo := matchAny(text, keywordScope(loc, func(k locale.Keywords) []string { return k.No }))

	if isYes == isNo {
		return false, false
	}

	return isYes, true
}

var digitsRegex = regexp.MustCompile(`[0-9]+`)

// ChildCount parses a children count from a transcript: digits first,
// then the locale's (and English) number words, then an explicit "no"
// meaning zero. The value is not clamped here; the caller clamps into
// the allowed range. ok is false when the transcript carries no count
// signal at all.
func ChildCount(text string, loc model.Locale) (n int, ok bool) {
	if m := digitsRegex.FindString(text); m != "" {
		v, err := strconv.Atoi(m)
		if err == nil {
			return v, true
		}
	}

	lower := strings.ToLower(text)

	for _, keys := range numberScopes(loc) {
		for word, v := range keys {
			if containsWord(lower, word) {
				return v, true
			}
		}
	}

	if yes, ok := YesNo(text, loc); ok && !yes {
		return 0, true
	}

	return 0, false
}

// MaritalStatus normalizes a free-text select answer against the
// cross-language keyword map, defaulting to single when nothing matches.
func MaritalStatus(text string) model.MaritalStatus {
	lower := strings.ToLower(text)

	for _, k := range locale.MaritalKeywords() {
		if containsWord(lower, strings.ToLower(k.Word)) {
			return k.Status
		}
	}

	return model.MaritalSingle
}

func keywordScope(loc model.Locale, pick func(locale.Keywords) []string) []string {
	words := pick(locale.KeywordsFor(loc))

	if loc != model.LocaleEnglish {
		words = append(append([]string{}, words...), pick(locale.KeywordsFor(model.LocaleEnglish))...)
	}

	return words
}

func numberScopes(loc model.Locale) []map[string]int {
	scopes := []map[string]int{locale.KeywordsFor(loc).Numbers}

	if loc != model.LocaleEnglish {
		scopes = append(scopes, locale.KeywordsFor(model.LocaleEnglish).Numbers)
	}

	return scopes
}

func matchAny(text string, words []string) bool {
	lower := strings.ToLower(text)

	for _, w := range words {
		if containsWord(lower, strings.ToLower(w)) {
			return true
		}
	}

	return false
}

// containsWord matches kw against text at word granularity for scripts
// that use separators, falling back to substring matching for CJK where
// there are no word boundaries.
func containsWord(text, kw string) bool {
	if kw == "" {
		return false
	}

	if isCJK(kw) {
		return strings.Contains(text, kw)
	}

	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		if token == kw {
			return true
		}
	}

	return false
}

func isCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}

	return false
}
