package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// DefaultSearchLimit is the number of candidates requested from the provider.
const DefaultSearchLimit = 50

// SearchInput contains the input for the Search use case.
type SearchInput struct {
	UserID int64
	Query  string
}

// SearchOutput contains the result of the Search use case.
type SearchOutput struct {
	Session domain.SearchSession // snapshot of the installed session, at page 0
}

// SearchService drives a single search-and-paginate lifecycle: it resolves
// the query through the provider, installs the result set as the user's
// current session, and hands back a snapshot for rendering. A failed or
// empty search never creates or replaces a session.
type SearchService struct {
	provider ports.SearchProvider
	sessions domain.SessionRepository
	limit    int
	timeout  time.Duration
}

// NewSearchService creates a new SearchService. limit and timeout fall back
// to sensible defaults when non-positive.
func NewSearchService(
	provider ports.SearchProvider,
	sessions domain.SessionRepository,
	limit int,
	timeout time.Duration,
) *SearchService {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SearchService{
		provider: provider,
		sessions: sessions,
		limit:    limit,
		timeout:  timeout,
	}
}

// Search resolves the query and installs the result set as the user's
// current session, replacing any prior one. Returns ErrNoResults for a valid
// empty search and passes provider errors through; in both cases the user's
// existing session is left untouched.
func (s *SearchService) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates, err := s.provider.Search(ctx, query, s.limit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoResults
	}

	session := domain.NewSearchSession(query, candidates)

	// Snapshot before publishing: once Put installs the session, a concurrent
	// AdvancePage for the same user may mutate its page cursor.
	out := SearchOutput{Session: *session}
	s.sessions.Put(input.UserID, session)

	return &out, nil
}
