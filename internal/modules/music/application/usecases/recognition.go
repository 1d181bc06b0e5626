package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// RecognizeInput contains the input for the Recognize use case.
type RecognizeInput struct {
	UserID     int64
	SamplePath string

	// OnMatch, if non-nil, is invoked with the match before the derived
	// search runs, so the transport can announce the recognized track while
	// the search is still in flight.
	OnMatch func(match domain.RecognitionMatch)
}

// RecognizeOutput contains the result of the Recognize use case.
type RecognizeOutput struct {
	Match  domain.RecognitionMatch
	Search *SearchOutput
}

// RecognitionService converts an inbound audio artifact into a search: it
// transcodes the sample, fingerprints it against the recognition backend,
// and on a match hands the derived query to the SearchService.
type RecognitionService struct {
	recognizer ports.Recognizer
	transcoder ports.Transcoder
	search     *SearchService
	timeout    time.Duration
}

// NewRecognitionService creates a new RecognitionService.
func NewRecognitionService(
	recognizer ports.Recognizer,
	transcoder ports.Transcoder,
	search *SearchService,
	timeout time.Duration,
) *RecognitionService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RecognitionService{
		recognizer: recognizer,
		transcoder: transcoder,
		search:     search,
		timeout:    timeout,
	}
}

// Recognize fingerprints the sample at input.SamplePath and, on a match,
// immediately runs a search for the derived query "{artist} {title}".
// Both genuine no-matches and backend failures surface as ErrNotRecognized;
// the distinction is kept in logs. The transcoded copy of the sample is
// removed on every exit path. The caller owns input.SamplePath itself.
func (s *RecognitionService) Recognize(
	ctx context.Context,
	input RecognizeInput,
) (*RecognizeOutput, error) {
	mp3Path, err := s.transcoder.TranscodeToMP3(ctx, input.SamplePath)
	if err != nil {
		slog.Error("failed to transcode sample", "user_id", input.UserID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNotRecognized, err)
	}
	defer func() {
		if err := os.Remove(mp3Path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove transcoded sample", "path", mp3Path, "error", err)
		}
	}()

	recCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	match, err := s.recognizer.Recognize(recCtx, mp3Path)
	if err != nil {
		slog.Error("recognition backend failed", "user_id", input.UserID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNotRecognized, err)
	}
	if match == nil {
		slog.Info("recognition found no match", "user_id", input.UserID)
		return nil, ErrNotRecognized
	}

	if input.OnMatch != nil {
		input.OnMatch(*match)
	}

	searchOut, err := s.search.Search(ctx, SearchInput{
		UserID: input.UserID,
		Query:  match.DerivedQuery(),
	})
	if err != nil {
		return nil, err
	}

	return &RecognizeOutput{
		Match:  *match,
		Search: searchOut,
	}, nil
}
