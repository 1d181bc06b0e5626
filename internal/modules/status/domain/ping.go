package domain

import "time"

// PingResult is a liveness reply: the canned response text and the moment
// it was produced.
type PingResult struct {
	Message   string
	Timestamp time.Time
}

// NewPingResult builds a fresh PingResult stamped with the current time.
func NewPingResult() *PingResult {
	return &PingResult{
		Message:   "Pong!",
		Timestamp: time.Now(),
	}
}
