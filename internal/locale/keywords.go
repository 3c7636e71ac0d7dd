package locale

import "github.com/hazwanhalim/suaraform/internal/model"

// Keywords holds the recognition word lists for one language. Matching
// against a transcript is scoped to the active locale (plus the English
// fallback) to avoid cross-language false positives.
type Keywords struct {
	Yes  []string
	No   []string
	Skip []string

	// Numbers maps spoken number words to their value (children count).
	Numbers map[string]int
}

func KeywordsFor(loc model.Locale) Keywords {
	k, ok := keywords[loc]
	if !ok {
		return keywords[model.LocaleEnglish]
	}

	return k
}

var keywords = map[model.Locale]Keywords{
	model.LocaleEnglish: {
		Yes:  []string{"yes", "yeah", "yup", "correct", "right", "ok", "okay", "sure"},
		No:   []string{"no", "nope", "wrong", "incorrect"},
		Skip: []string{"skip", "pass", "next"},
		Numbers: map[string]int{
			"zero": 0, "none": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
			"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		},
	},
	model.LocaleMalay: {
		Yes:  []string{"ya", "ye", "betul", "benar", "setuju", "boleh"},
		No:   []string{"tidak", "tak", "bukan", "salah"},
		Skip: []string{"langkau", "lepas", "seterusnya"},
		Numbers: map[string]int{
			"sifar": 0, "kosong": 0, "tiada": 0, "satu": 1, "dua": 2, "tiga": 3, "empat": 4, "lima": 5,
			"enam": 6, "tujuh": 7, "lapan": 8, "sembilan": 9, "sepuluh": 10,
		},
	},
	model.LocaleChinese: {
		Yes:  []string{"是", "对", "好", "正确", "没错", "可以"},
		No:   []string{"不是", "不对", "不", "错"},
		Skip: []string{"跳过", "下一个", "略过"},
		Numbers: map[string]int{
			"零": 0, "没有": 0, "一": 1, "两": 2, "二": 2, "三": 3, "四": 4, "五": 5,
			"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
		},
	},
	model.LocaleTamil: {
		Yes:  []string{"ஆம்", "ஆமாம்", "சரி", "சரியே"},
		No:   []string{"இல்லை", "தவறு", "வேண்டாம்"},
		Skip: []string{"தவிர்", "அடுத்து"},
		Numbers: map[string]int{
			"பூஜ்யம்": 0, "ஒன்று": 1, "இரண்டு": 2, "மூன்று": 3, "நான்கு": 4, "ஐந்து": 5,
			"ஆறு": 6, "ஏழு": 7, "எட்டு": 8, "ஒன்பது": 9, "பத்து": 10,
		},
	},
}

// MaritalKeyword maps a spoken keyword to a marital status. The list
// spans all supported languages since a select answer can only ever be
// one of these words. More specific entries come first so e.g.
// "berkahwin" is tested before the bare "kahwin".
type MaritalKeyword struct {
	Word   string
	Status model.MaritalStatus
}

var maritalKeywords = []MaritalKeyword{
	{"berkahwin", model.MaritalMarried},
	{"kahwin", model.MaritalMarried},
	{"married", model.MaritalMarried},
	{"已婚", model.MaritalMarried},
	{"结婚", model.MaritalMarried},
	{"திருமணமானவர்", model.MaritalMarried},
	{"திருமணமான", model.MaritalMarried},

	{"bercerai", model.MaritalDivorced},
	{"cerai", model.MaritalDivorced},
	{"divorced", model.MaritalDivorced},
	{"离婚", model.MaritalDivorced},
	{"விவாகரத்து", model.MaritalDivorced},

	{"widowed", model.MaritalWidowed},
	{"widow", model.MaritalWidowed},
	{"balu", model.MaritalWidowed},
	{"janda", model.MaritalWidowed},
	{"duda", model.MaritalWidowed},
	{"丧偶", model.MaritalWidowed},
	{"寡妇", model.MaritalWidowed},
	{"விதவை", model.MaritalWidowed},

	{"single", model.MaritalSingle},
	{"bujang", model.MaritalSingle},
	{"单身", model.MaritalSingle},
	{"未婚", model.MaritalSingle},
	{"திருமணமாகாதவர்", model.MaritalSingle},
}

// MaritalKeywords returns the ordered keyword-to-status list.
func MaritalKeywords() []MaritalKeyword {
	out := make([]MaritalKeyword, len(maritalKeywords))
	copy(out, maritalKeywords)

	return out
}
