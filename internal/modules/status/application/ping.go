package application

import "github.com/aglarus/tunegram/internal/modules/status/domain"

// PingInteractor produces liveness replies for the /ping command.
type PingInteractor struct{}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor() *PingInteractor {
	return &PingInteractor{}
}

// Execute returns a freshly stamped PingResult.
func (p *PingInteractor) Execute() *domain.PingResult {
	return domain.NewPingResult()
}
