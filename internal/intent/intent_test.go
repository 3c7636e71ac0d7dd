package intent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/model"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		name     string
		text     string
		loc      model.Locale
		expected Intent
	}{
		{name: "english yes", text: "yes that is right", loc: model.LocaleEnglish, expected: Yes},
		{name: "english no", text: "no", loc: model.LocaleEnglish, expected: No},
		{name: "english skip", text: "skip this one", loc: model.LocaleEnglish, expected: Skip},
		{name: "skip wins over yes", text: "yes skip it", loc: model.LocaleEnglish, expected: Skip},
		{name: "plain value", text: "Ahmad bin Ali", loc: model.LocaleEnglish, expected: Value},
		{name: "malay yes", text: "ya betul", loc: model.LocaleMalay, expected: Yes},
		{name: "malay no", text: "tidak", loc: model.LocaleMalay, expected: No},
		{name: "malay skip", text: "langkau soalan ini", loc: model.LocaleMalay, expected: Skip},
		{name: "english fallback in malay locale", text: "yes", loc: model.LocaleMalay, expected: Yes},
		{name: "chinese yes", text: "对", loc: model.LocaleChinese, expected: Yes},
		{name: "chinese no", text: "不对", loc: model.LocaleChinese, expected: No},
		{name: "tamil yes", text: "ஆம்", loc: model.LocaleTamil, expected: Yes},
		{name: "malay keyword not matched in english locale", text: "Kenya", loc: model.LocaleEnglish, expected: Value},
		{name: "yes inside a name is not a match", text: "Yesudas", loc: model.LocaleEnglish, expected: Value},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Classify(tc.text, tc.loc))
		})
	}
}

func TestYesNoAmbiguous(t *testing.T) {
	// Both a yes and a no keyword present means no usable signal.
	yes, ok := YesNo("yes no maybe", model.LocaleEnglish)
	require.False(t, ok, "ok")
	require.False(t, yes, "yes")

	_, ok = YesNo("hmm", model.LocaleEnglish)
	require.False(t, ok, "ok for no signal")
}

func TestChildCount(t *testing.T) {
	for _, tc := range []struct {
		name     string
		text     string
		loc      model.Locale
		expected int
		ok       bool
	}{
		{name: "digits", text: "I have 3 children", loc: model.LocaleEnglish, expected: 3, ok: true},
		{name: "digits above max are not clamped here", text: "8", loc: model.LocaleEnglish, expected: 8, ok: true},
		{name: "number word", text: "three kids", loc: model.LocaleEnglish, expected: 3, ok: true},
		{name: "number word above max is not clamped here", text: "eight", loc: model.LocaleEnglish, expected: 8, ok: true},
		{name: "malay number word above max", text: "lapan", loc: model.LocaleMalay, expected: 8, ok: true},
		{name: "malay number word", text: "dua orang", loc: model.LocaleMalay, expected: 2, ok: true},
		{name: "chinese number word", text: "两个", loc: model.LocaleChinese, expected: 2, ok: true},
		{name: "explicit no means zero", text: "no", loc: model.LocaleEnglish, expected: 0, ok: true},
		{name: "malay tiada means zero", text: "tiada", loc: model.LocaleMalay, expected: 0, ok: true},
		{name: "no signal", text: "well it depends", loc: model.LocaleEnglish, expected: 0, ok: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := ChildCount(tc.text, tc.loc)
			require.Equal(t, tc.ok, ok, "ok")
			require.Equal(t, tc.expected, n, "count")
		})
	}
}

func TestMaritalStatus(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected model.MaritalStatus
	}{
		{text: "berkahwin", expected: model.MaritalMarried},
		{text: "saya sudah kahwin", expected: model.MaritalMarried},
		{text: "married", expected: model.MaritalMarried},
		{text: "已婚", expected: model.MaritalMarried},
		{text: "divorced", expected: model.MaritalDivorced},
		{text: "bercerai", expected: model.MaritalDivorced},
		{text: "widowed", expected: model.MaritalWidowed},
		{text: "balu", expected: model.MaritalWidowed},
		{text: "single", expected: model.MaritalSingle},
		{text: "bujang", expected: model.MaritalSingle},
		{text: "something unintelligible", expected: model.MaritalSingle},
	} {
		t.Run(tc.text, func(t *testing.T) {
			require.Equal(t, tc.expected, MaritalStatus(tc.text))
		})
	}
}
