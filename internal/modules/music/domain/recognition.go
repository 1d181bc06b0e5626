package domain

import "strings"

// RecognitionMatch is a fingerprint match returned by a recognition backend.
type RecognitionMatch struct {
	Title  string
	Artist string
}

// DerivedQuery synthesizes the text query fed back into search from a match.
func (m RecognitionMatch) DerivedQuery() string {
	return strings.TrimSpace(m.Artist + " " + m.Title)
}
