package ports

import (
	"context"

	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// SearchProvider defines the interface for resolving a text query to an
// ordered list of playable candidates. A query with no results returns an
// empty list, not an error; errors indicate transport or parse failures.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error)
}
