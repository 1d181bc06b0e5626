package usecases

import (
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// NavigateInput contains the input for the Navigate use case.
type NavigateInput struct {
	UserID int64
	Delta  int // +1 for next, -1 for previous
}

// NavigateOutput contains the result of the Navigate use case.
type NavigateOutput struct {
	Session domain.SearchSession
}

// SelectInput contains the input for the Select use case.
type SelectInput struct {
	UserID int64
	Index  int // global index into the session's result list
}

// SelectOutput contains the result of the Select use case.
type SelectOutput struct {
	Candidate domain.Candidate
}

// BrowseService handles page navigation and candidate selection on the
// user's current session. Both operations are valid only while a session
// exists; otherwise they report ErrNoActiveSession without side effects.
type BrowseService struct {
	sessions domain.SessionRepository
}

// NewBrowseService creates a new BrowseService.
func NewBrowseService(sessions domain.SessionRepository) *BrowseService {
	return &BrowseService{sessions: sessions}
}

// Navigate moves the user's page cursor by input.Delta, clamped to the
// session bounds, and returns the updated session for re-rendering.
func (b *BrowseService) Navigate(input NavigateInput) (*NavigateOutput, error) {
	session, ok := b.sessions.AdvancePage(input.UserID, input.Delta)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return &NavigateOutput{Session: session}, nil
}

// Select resolves a global result index to its candidate. Selection does not
// mutate the session; the same index resolves to the same candidate
// regardless of the current page.
func (b *BrowseService) Select(input SelectInput) (*SelectOutput, error) {
	session, ok := b.sessions.Get(input.UserID)
	if !ok {
		return nil, ErrNoActiveSession
	}

	candidate := session.CandidateAt(input.Index)
	if candidate == nil {
		return nil, ErrInvalidSelection
	}

	return &SelectOutput{Candidate: *candidate}, nil
}
