package ports

import (
	"context"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// Recognizer defines the interface for fingerprint-matching a short audio
// sample to a known track. A nil match with a nil error means the backend
// found no confident match; errors indicate backend failures. Callers
// collapse both into the same user-facing outcome but log them apart.
type Recognizer interface {
	Recognize(ctx context.Context, samplePath string) (*domain.RecognitionMatch, error)
}
