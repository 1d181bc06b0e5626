package infrastructure

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

func TestFilePreferenceStore_DefaultWhenAbsent(t *testing.T) {
	store, err := NewFilePreferenceStore(filepath.Join(t.TempDir(), "prefs.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.Language(42); got != domain.DefaultLanguage {
		t.Errorf("expected default language, got %q", got)
	}
}

func TestFilePreferenceStore_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SetLanguage(42, domain.LanguageEnglish); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SetLanguage(43, domain.LanguageAzeri); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reloaded.Language(42); got != domain.LanguageEnglish {
		t.Errorf("expected en for user 42, got %q", got)
	}
	if got := reloaded.Language(43); got != domain.LanguageAzeri {
		t.Errorf("expected az for user 43, got %q", got)
	}
	if got := reloaded.Language(99); got != domain.DefaultLanguage {
		t.Errorf("expected default for unknown user, got %q", got)
	}
}

func TestFilePreferenceStore_IgnoresMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	payload := `{"42": "en", "not-a-number": "uz", "43": "klingon"}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Language(42); got != domain.LanguageEnglish {
		t.Errorf("expected en, got %q", got)
	}
	if got := store.Language(43); got != domain.DefaultLanguage {
		t.Errorf("expected default for unsupported code, got %q", got)
	}
}

func TestFilePreferenceStore_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	languages := domain.Languages()
	for userID := int64(1); userID <= 20; userID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lang := languages[int(userID)%len(languages)]
			if err := store.SetLanguage(userID, lang); err != nil {
				t.Errorf("user %d: %v", userID, err)
			}
		}()
	}
	wg.Wait()

	// Every write survives the whole-file rewrites
	reloaded, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for userID := int64(1); userID <= 20; userID++ {
		want := languages[int(userID)%len(languages)]
		if got := reloaded.Language(userID); got != want {
			t.Errorf("user %d: expected %q, got %q", userID, want, got)
		}
	}
}

func TestFilePreferenceStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.Language(42); got != domain.DefaultLanguage {
		t.Errorf("expected default language, got %q", got)
	}

	// Writes must recover the file.
	if err := store.SetLanguage(42, domain.LanguageUzbek); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reloaded, err := NewFilePreferenceStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reloaded.Language(42); got != domain.LanguageUzbek {
		t.Errorf("expected uz after rewrite, got %q", got)
	}
}
