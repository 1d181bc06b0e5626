package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// FilePreferenceStore persists language preferences as a single JSON object
// mapping user IDs (serialized as strings) to language codes. The file is
// read fully at startup and rewritten fully on each change; the mutex
// serializes concurrent rewrites so no update is lost.
type FilePreferenceStore struct {
	path string

	mu    sync.Mutex
	prefs map[int64]domain.Language
}

// NewFilePreferenceStore loads existing preferences from path. A missing
// file is not an error; a corrupt file starts the store empty.
func NewFilePreferenceStore(path string) (*FilePreferenceStore, error) {
	store := &FilePreferenceStore{
		path:  path,
		prefs: make(map[int64]domain.Language),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("preferences file is corrupt, starting empty", "path", path, "error", err)
		return store, nil
	}
	for key, code := range raw {
		userID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		if lang, ok := domain.ParseLanguage(code); ok {
			store.prefs[userID] = lang
		}
	}

	return store, nil
}

// Language returns the user's stored language, or the default.
func (s *FilePreferenceStore) Language(userID int64) domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lang, ok := s.prefs[userID]; ok {
		return lang
	}
	return domain.DefaultLanguage
}

// SetLanguage stores the user's choice and rewrites the file.
func (s *FilePreferenceStore) SetLanguage(userID int64, lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[userID] = lang

	raw := make(map[string]string, len(s.prefs))
	for id, code := range s.prefs {
		raw[strconv.FormatInt(id, 10)] = string(code)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// Ensure FilePreferenceStore implements PreferenceStore.
var _ ports.PreferenceStore = (*FilePreferenceStore)(nil)
