package domain

import "time"

// Candidate is a single playable search result. Candidates are immutable
// once produced by a search provider.
type Candidate struct {
	Title      string
	Artist     string
	URL        string
	Duration   time.Duration
	SourceName string // e.g., "youtube", "youtube_music"
}

// DisplayTitle returns the title suitable for listing, falling back to
// "Unknown" when the provider omitted one.
func (c Candidate) DisplayTitle() string {
	if c.Title == "" {
		return "Unknown"
	}
	return c.Title
}

// IsValid returns true if the candidate has the minimum required fields.
func (c Candidate) IsValid() bool {
	return c.URL != ""
}
