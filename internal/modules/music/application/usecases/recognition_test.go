package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

func newTestRecognitionService(
	recognizer *mockRecognizer,
	transcoder *mockTranscoder,
	provider *mockSearchProvider,
	repo *mockSessionRepository,
) *RecognitionService {
	search := NewSearchService(provider, repo, 50, time.Second)
	return NewRecognitionService(recognizer, transcoder, search, time.Second)
}

func TestRecognitionService_Recognize_Match(t *testing.T) {
	repo := newMockSessionRepository()
	provider := &mockSearchProvider{candidates: mockCandidates(5)}
	recognizer := &mockRecognizer{
		match: &domain.RecognitionMatch{Title: "Bohemian Rhapsody", Artist: "Queen"},
	}
	service := newTestRecognitionService(recognizer, &mockTranscoder{}, provider, repo)

	var announced *domain.RecognitionMatch
	out, err := service.Recognize(context.Background(), RecognizeInput{
		UserID:     42,
		SamplePath: "/tmp/sample.ogg",
		OnMatch:    func(m domain.RecognitionMatch) { announced = &m },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Derived query is passed verbatim to search
	if len(provider.queries) != 1 || provider.queries[0] != "Queen Bohemian Rhapsody" {
		t.Errorf("expected derived query %q, got %v", "Queen Bohemian Rhapsody", provider.queries)
	}
	if out.Match.Title != "Bohemian Rhapsody" || out.Match.Artist != "Queen" {
		t.Errorf("unexpected match: %+v", out.Match)
	}
	if out.Search == nil || out.Search.Session.Len() != 5 {
		t.Error("expected search handoff result")
	}
	if announced == nil || announced.Title != "Bohemian Rhapsody" {
		t.Error("expected OnMatch to be invoked with the match")
	}
	if _, ok := repo.Get(42); !ok {
		t.Error("expected session installed by the derived search")
	}
}

func TestRecognitionService_Recognize_NoMatch(t *testing.T) {
	repo := newMockSessionRepository()
	provider := &mockSearchProvider{candidates: mockCandidates(5)}
	recognizer := &mockRecognizer{} // nil match, nil error
	service := newTestRecognitionService(recognizer, &mockTranscoder{}, provider, repo)

	_, err := service.Recognize(context.Background(), RecognizeInput{
		UserID:     42,
		SamplePath: "/tmp/sample.ogg",
	})
	if !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}

	// No search or session mutation occurs
	if len(provider.queries) != 0 {
		t.Error("expected no search on no-match")
	}
	if repo.putCalls != 0 {
		t.Error("expected no session mutation on no-match")
	}
}

func TestRecognitionService_Recognize_BackendFailure(t *testing.T) {
	repo := newMockSessionRepository()
	provider := &mockSearchProvider{candidates: mockCandidates(5)}
	recognizer := &mockRecognizer{err: errors.New("backend down")}
	service := newTestRecognitionService(recognizer, &mockTranscoder{}, provider, repo)

	_, err := service.Recognize(context.Background(), RecognizeInput{
		UserID:     42,
		SamplePath: "/tmp/sample.ogg",
	})
	// Failure collapses to the same user-facing outcome as a genuine no-match
	if !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}
	if repo.putCalls != 0 {
		t.Error("expected no session mutation on backend failure")
	}
}

func TestRecognitionService_Recognize_TranscodeFailure(t *testing.T) {
	repo := newMockSessionRepository()
	provider := &mockSearchProvider{candidates: mockCandidates(5)}
	recognizer := &mockRecognizer{
		match: &domain.RecognitionMatch{Title: "Song", Artist: "Artist"},
	}
	transcoder := &mockTranscoder{err: errors.New("ffmpeg exited 1")}
	service := newTestRecognitionService(recognizer, transcoder, provider, repo)

	_, err := service.Recognize(context.Background(), RecognizeInput{
		UserID:     42,
		SamplePath: "/tmp/sample.ogg",
	})
	if !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}
	if len(recognizer.paths) != 0 {
		t.Error("expected recognizer not to run after transcode failure")
	}
}

func TestRecognitionService_Recognize_RemovesTranscodedFile(t *testing.T) {
	dir := t.TempDir()
	mp3Path := filepath.Join(dir, "sample.mp3")
	if err := os.WriteFile(mp3Path, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := newMockSessionRepository()
	provider := &mockSearchProvider{candidates: mockCandidates(1)}
	recognizer := &mockRecognizer{
		match: &domain.RecognitionMatch{Title: "Song", Artist: "Artist"},
	}
	transcoder := &mockTranscoder{outPath: mp3Path}
	service := newTestRecognitionService(recognizer, transcoder, provider, repo)

	if _, err := service.Recognize(context.Background(), RecognizeInput{
		UserID:     42,
		SamplePath: filepath.Join(dir, "sample.ogg"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(mp3Path); !os.IsNotExist(err) {
		t.Error("expected transcoded file to be removed")
	}
}

func TestRecognitionService_Recognize_RemovesTranscodedFileOnNoMatch(t *testing.T) {
	dir := t.TempDir()
	mp3Path := filepath.Join(dir, "sample.mp3")
	if err := os.WriteFile(mp3Path, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := newMockSessionRepository()
	provider := &mockSearchProvider{}
	service := newTestRecognitionService(
		&mockRecognizer{}, &mockTranscoder{outPath: mp3Path}, provider, repo,
	)

	_, err := service.Recognize(context.Background(), RecognizeInput{
		UserID:     42,
		SamplePath: filepath.Join(dir, "sample.ogg"),
	})
	if !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}

	if _, err := os.Stat(mp3Path); !os.IsNotExist(err) {
		t.Error("expected transcoded file to be removed on no-match")
	}
}
