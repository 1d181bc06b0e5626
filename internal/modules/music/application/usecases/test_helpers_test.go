package usecases

import (
	"context"
	"fmt"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

func mockCandidates(n int) []domain.Candidate {
	candidates := make([]domain.Candidate, n)
	for i := range n {
		candidates[i] = domain.Candidate{
			Title:      fmt.Sprintf("Track %d", i),
			URL:        fmt.Sprintf("https://www.youtube.com/watch?v=video-%d", i),
			SourceName: "youtube",
		}
	}
	return candidates
}

type mockSessionRepository struct {
	sessions map[int64]*domain.SearchSession
	putCalls int
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{
		sessions: make(map[int64]*domain.SearchSession),
	}
}

func (m *mockSessionRepository) Get(userID int64) (domain.SearchSession, bool) {
	session, ok := m.sessions[userID]
	if !ok {
		return domain.SearchSession{}, false
	}
	return *session, true
}

func (m *mockSessionRepository) Put(userID int64, session *domain.SearchSession) {
	m.putCalls++
	m.sessions[userID] = session
}

func (m *mockSessionRepository) AdvancePage(userID int64, delta int) (domain.SearchSession, bool) {
	session, ok := m.sessions[userID]
	if !ok {
		return domain.SearchSession{}, false
	}
	session.AdvancePage(delta)
	return *session, true
}

type mockSearchProvider struct {
	candidates []domain.Candidate
	err        error
	queries    []string
	limits     []int
}

func (m *mockSearchProvider) Search(
	_ context.Context,
	query string,
	limit int,
) ([]domain.Candidate, error) {
	m.queries = append(m.queries, query)
	m.limits = append(m.limits, limit)
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

type mockRecognizer struct {
	match *domain.RecognitionMatch
	err   error
	paths []string
}

func (m *mockRecognizer) Recognize(
	_ context.Context,
	samplePath string,
) (*domain.RecognitionMatch, error) {
	m.paths = append(m.paths, samplePath)
	if m.err != nil {
		return nil, m.err
	}
	return m.match, nil
}

type mockTranscoder struct {
	outPath string
	err     error
}

func (m *mockTranscoder) TranscodeToMP3(_ context.Context, srcPath string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.outPath != "" {
		return m.outPath, nil
	}
	return srcPath + ".mp3", nil
}

type mockDownloader struct {
	path       string
	err        error
	candidates []domain.Candidate
}

func (m *mockDownloader) Download(
	_ context.Context,
	candidate domain.Candidate,
) (string, error) {
	m.candidates = append(m.candidates, candidate)
	if m.err != nil {
		return "", m.err
	}
	return m.path, nil
}

type mockPreferenceStore struct {
	langs  map[int64]domain.Language
	setErr error
}

func newMockPreferenceStore() *mockPreferenceStore {
	return &mockPreferenceStore{langs: make(map[int64]domain.Language)}
}

func (m *mockPreferenceStore) Language(userID int64) domain.Language {
	if lang, ok := m.langs[userID]; ok {
		return lang
	}
	return domain.DefaultLanguage
}

func (m *mockPreferenceStore) SetLanguage(userID int64, lang domain.Language) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.langs[userID] = lang
	return nil
}
