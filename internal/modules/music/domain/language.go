package domain

// Language is a display-language code chosen by a user.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageUzbek   Language = "uz"
	LanguageEnglish Language = "en"
	LanguageAzeri   Language = "az"
)

// DefaultLanguage is used when a user has no stored preference.
const DefaultLanguage = LanguageRussian

// Languages returns all supported languages in presentation order.
func Languages() []Language {
	return []Language{LanguageRussian, LanguageUzbek, LanguageEnglish, LanguageAzeri}
}

// ParseLanguage returns the Language for code, or false if unsupported.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LanguageRussian, LanguageUzbek, LanguageEnglish, LanguageAzeri:
		return Language(code), true
	}
	return "", false
}
