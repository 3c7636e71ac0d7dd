package model

import "fmt"

// Locale identifies one of the languages the aid portal backend accepts.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleMalay   Locale = "ms"
	LocaleChinese Locale = "zh"
	LocaleTamil   Locale = "ta"
)

func Locales() []Locale {
	return []Locale{LocaleEnglish, LocaleMalay, LocaleChinese, LocaleTamil}
}

func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case LocaleEnglish, LocaleMalay, LocaleChinese, LocaleTamil:
		return Locale(s), nil
	}

	return "", fmt.Errorf("unsupported locale %q, supported locales are en, ms, zh, ta", s)
}
