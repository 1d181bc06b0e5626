package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// HTTPRecognizer fingerprints audio samples against a Shazam-compatible
// recognition endpoint: POST the mp3 body, receive
// {"track": {"title": ..., "subtitle": ...}} or an empty object on no match.
type HTTPRecognizer struct {
	endpoint string
	client   *http.Client
}

// NewHTTPRecognizer creates a new HTTPRecognizer for the given endpoint.
func NewHTTPRecognizer(endpoint string) *HTTPRecognizer {
	return &HTTPRecognizer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type recognitionResponse struct {
	Track *struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	} `json:"track"`
}

// Recognize submits the sample and returns the best match, or nil if the
// backend found no confident match.
func (r *HTTPRecognizer) Recognize(
	ctx context.Context,
	samplePath string,
) (*domain.RecognitionMatch, error) {
	sample, err := os.Open(samplePath)
	if err != nil {
		return nil, fmt.Errorf("open sample: %w", err)
	}
	defer sample.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, sample)
	if err != nil {
		return nil, fmt.Errorf("build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/mpeg")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognition request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("recognition backend returned status %d", resp.StatusCode)
	}

	var decoded recognitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode recognition response: %w", err)
	}

	if decoded.Track == nil || decoded.Track.Title == "" {
		return nil, nil
	}

	return &domain.RecognitionMatch{
		Title:  decoded.Track.Title,
		Artist: decoded.Track.Subtitle,
	}, nil
}

// Ensure HTTPRecognizer implements Recognizer.
var _ ports.Recognizer = (*HTTPRecognizer)(nil)
