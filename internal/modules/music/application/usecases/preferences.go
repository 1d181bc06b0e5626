package usecases

import (
	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// PreferenceService reads and updates a user's display language.
type PreferenceService struct {
	store ports.PreferenceStore
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(store ports.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Language returns the user's stored language, or the default.
func (p *PreferenceService) Language(userID int64) domain.Language {
	return p.store.Language(userID)
}

// SetLanguage persists the user's language choice. A persistence failure is
// returned for logging but leaves the choice effective for the current
// interaction; callers must not treat it as fatal.
func (p *PreferenceService) SetLanguage(userID int64, lang domain.Language) error {
	return p.store.SetLanguage(userID, lang)
}
