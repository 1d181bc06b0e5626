package ports

import "github.com/aglarus/tunegram/internal/modules/music/domain"

// PreferenceStore persists each user's display-language choice across
// restarts. Reads fall back to the default language when no preference
// is stored; write failures are logged by callers, never fatal.
type PreferenceStore interface {
	Language(userID int64) domain.Language
	SetLanguage(userID int64, lang domain.Language) error
}
