package domain

// SessionRepository defines the interface for storing and retrieving per-user
// search sessions. Implementations must serialize concurrent access for the
// same user: Put and AdvancePage apply as sequential atomic updates, and Put
// totally replaces any prior session for the user.
//
// Lookups return a snapshot copy; mutating a returned session does not affect
// the stored one. Sessions are held in memory only and are lost on restart,
// which surfaces to the user as the "no active session" condition.
type SessionRepository interface {
	// Get returns a snapshot of the user's current session, or false if none exists.
	Get(userID int64) (SearchSession, bool)

	// Put installs session as the current (and only) session for the user,
	// discarding any prior one.
	Put(userID int64, session *SearchSession)

	// AdvancePage atomically adjusts the user's page cursor by delta, clamped
	// to the session bounds, and returns a snapshot of the updated session.
	// Returns false without side effects if the user has no session.
	AdvancePage(userID int64, delta int) (SearchSession, bool)
}
