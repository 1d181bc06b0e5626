package telegram

import (
	"context"
	"fmt"
	"sync"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/aglarus/tunegram/internal/bot"
	"github.com/aglarus/tunegram/internal/modules/music/application/usecases"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
	"github.com/aglarus/tunegram/internal/modules/music/infrastructure"
)

// fakeProvider returns canned search results.
type fakeProvider struct {
	results []domain.Candidate
	err     error
}

func (p *fakeProvider) Search(context.Context, string, int) ([]domain.Candidate, error) {
	return p.results, p.err
}

// fakePrefStore is an in-memory PreferenceStore.
type fakePrefStore struct {
	mu    sync.Mutex
	langs map[int64]domain.Language
}

func newFakePrefStore() *fakePrefStore {
	return &fakePrefStore{langs: make(map[int64]domain.Language)}
}

func (s *fakePrefStore) Language(userID int64) domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lang, ok := s.langs[userID]; ok {
		return lang
	}
	return domain.DefaultLanguage
}

func (s *fakePrefStore) SetLanguage(userID int64, lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.langs[userID] = lang
	return nil
}

// fakeDownloader hands back a fixed local path.
type fakeDownloader struct {
	path string
	err  error
}

func (d *fakeDownloader) Download(context.Context, domain.Candidate) (string, error) {
	return d.path, d.err
}

// fakeRecognizer returns a canned match.
type fakeRecognizer struct {
	match *domain.RecognitionMatch
	err   error
}

func (r *fakeRecognizer) Recognize(context.Context, string) (*domain.RecognitionMatch, error) {
	return r.match, r.err
}

// fakeTranscoder copies nothing and reports a fixed output path.
type fakeTranscoder struct {
	out string
	err error
}

func (t *fakeTranscoder) TranscodeToMP3(context.Context, string) (string, error) {
	return t.out, t.err
}

// fakeFileClient resolves every file to the same download link.
type fakeFileClient struct {
	link string
	err  error
}

func (f *fakeFileClient) GetFile(context.Context, *tgbot.GetFileParams) (*models.File, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.File{FileID: "f1", FilePath: "voice/sample.oga"}, nil
}

func (f *fakeFileClient) FileDownloadLink(*models.File) string {
	return f.link
}

// testEnv bundles handlers with their observable collaborators.
type testEnv struct {
	handlers  *Handlers
	messenger *bot.MockMessenger
	sessions  *infrastructure.MemorySessionRepository
	prefs     *fakePrefStore
}

func newTestEnv(provider *fakeProvider, downloader *fakeDownloader, cacheDir string) *testEnv {
	messenger := &bot.MockMessenger{}
	sessions := infrastructure.NewMemorySessionRepository()
	prefStore := newFakePrefStore()

	search := usecases.NewSearchService(provider, sessions, 0, 0)
	browse := usecases.NewBrowseService(sessions)
	delivery := usecases.NewDeliveryService(downloader)
	prefs := usecases.NewPreferenceService(prefStore)

	return &testEnv{
		handlers:  NewHandlers(search, nil, browse, delivery, prefs, messenger, nil, cacheDir),
		messenger: messenger,
		sessions:  sessions,
		prefs:     prefStore,
	}
}

func candidates(n int) []domain.Candidate {
	out := make([]domain.Candidate, 0, n)
	for i := range n {
		out = append(out, domain.Candidate{
			Title:  fmt.Sprintf("Track %d", i),
			Artist: fmt.Sprintf("Artist %d", i),
			URL:    fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return out
}

func callbackUpdate(userID int64, data string) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb1",
			From: models.User{ID: userID},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{
					ID:   5,
					Chat: models.Chat{ID: 42},
				},
			},
		},
	}
}
