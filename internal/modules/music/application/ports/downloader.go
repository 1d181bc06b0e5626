package ports

import (
	"context"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// Downloader materializes a selected candidate as a local audio file for
// delivery. The returned path is owned by the caller and must be removed
// after the file has been sent.
type Downloader interface {
	Download(ctx context.Context, candidate domain.Candidate) (string, error)
}
