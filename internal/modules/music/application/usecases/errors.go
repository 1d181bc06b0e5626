package usecases

import "errors"

// Domain errors for the music module. Any provider error not mapped to one
// of these sentinels is treated as the generic provider-failure bucket.
var (
	// ErrNoResults is returned when a search yields no candidates.
	ErrNoResults = errors.New("no results found")

	// ErrNotRecognized is returned when the recognition backend found no
	// confident match or itself failed. The two cases are collapsed for the
	// end user and distinguished only in logs.
	ErrNotRecognized = errors.New("track not recognized")

	// ErrNoActiveSession is returned for navigation or selection when the
	// user has no current session (never searched, or the process restarted).
	ErrNoActiveSession = errors.New("no active search session")

	// ErrInvalidSelection is returned when a selection index does not resolve
	// to a candidate in the current session.
	ErrInvalidSelection = errors.New("invalid selection index")

	// ErrDownloadFailed is returned when a selected candidate could not be
	// materialized for delivery.
	ErrDownloadFailed = errors.New("failed to download track")

	// ErrEmptyQuery is returned for blank search input.
	ErrEmptyQuery = errors.New("empty search query")
)
