package domain

// PageSize is the fixed number of candidates shown per result page.
const PageSize = 10

// SearchSession is one user's current browsing context: the query that
// produced the result set, the ordered results, and a page cursor.
// Result order is fixed at creation; the global index into Results is the
// stable identity used in selection callbacks and must never be renumbered.
type SearchSession struct {
	Query   string
	Results []Candidate

	page int
}

// NewSearchSession creates a session positioned at page 0. The results
// slice is copied so later mutation by the caller cannot reorder it.
// Returns nil for an empty result set; an empty session is never valid.
func NewSearchSession(query string, results []Candidate) *SearchSession {
	if len(results) == 0 {
		return nil
	}
	copied := make([]Candidate, len(results))
	copy(copied, results)
	return &SearchSession{
		Query:   query,
		Results: copied,
	}
}

// Page returns the zero-based page cursor.
func (s *SearchSession) Page() int {
	return s.page
}

// Len returns the total number of candidates.
func (s *SearchSession) Len() int {
	return len(s.Results)
}

// MaxPage returns the highest valid page index.
func (s *SearchSession) MaxPage() int {
	if len(s.Results) == 0 {
		return 0
	}
	return (len(s.Results) - 1) / PageSize
}

// HasPrev returns true if a previous page exists.
func (s *SearchSession) HasPrev() bool {
	return s.page > 0
}

// HasNext returns true if a next page exists.
func (s *SearchSession) HasNext() bool {
	return s.PageEnd() < len(s.Results)
}

// PageStart returns the global index of the first candidate on the current page.
func (s *SearchSession) PageStart() int {
	return s.page * PageSize
}

// PageEnd returns the global index one past the last candidate on the current page.
func (s *SearchSession) PageEnd() int {
	return min(s.PageStart()+PageSize, len(s.Results))
}

// PageSlice returns the candidates visible on the current page.
func (s *SearchSession) PageSlice() []Candidate {
	return s.Results[s.PageStart():s.PageEnd()]
}

// CandidateAt returns the candidate at the given global index, or nil if
// the index is out of bounds.
func (s *SearchSession) CandidateAt(index int) *Candidate {
	if index < 0 || index >= len(s.Results) {
		return nil
	}
	return &s.Results[index]
}

// AdvancePage moves the page cursor by delta, clamped to [0, MaxPage].
// Moving past either end is a no-op at the boundary.
func (s *SearchSession) AdvancePage(delta int) {
	page := s.page + delta
	if page < 0 {
		page = 0
	}
	if page > s.MaxPage() {
		page = s.MaxPage()
	}
	s.page = page
}
