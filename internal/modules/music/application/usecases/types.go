package usecases

import (
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// Re-export domain types for presentation layer use.
// This allows presentation to depend only on usecases without importing domain directly.

// Candidate is an alias for domain.Candidate.
type Candidate = domain.Candidate

// SearchSession is an alias for domain.SearchSession.
type SearchSession = domain.SearchSession

// RecognitionMatch is an alias for domain.RecognitionMatch.
type RecognitionMatch = domain.RecognitionMatch

// SessionRepository is an alias for domain.SessionRepository.
type SessionRepository = domain.SessionRepository
