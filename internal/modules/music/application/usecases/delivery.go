package usecases

import (
	"context"
	"fmt"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// DeliverInput contains the input for the Deliver use case.
type DeliverInput struct {
	Candidate domain.Candidate
}

// DeliverOutput contains the result of the Deliver use case.
type DeliverOutput struct {
	FilePath string // local audio file; the caller removes it after sending
}

// DeliveryService materializes a selected candidate as a local audio file.
type DeliveryService struct {
	downloader ports.Downloader
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(downloader ports.Downloader) *DeliveryService {
	return &DeliveryService{downloader: downloader}
}

// Deliver downloads the candidate's audio. All downloader failures map to
// ErrDownloadFailed so a single user-facing message covers them.
func (d *DeliveryService) Deliver(ctx context.Context, input DeliverInput) (*DeliverOutput, error) {
	if !input.Candidate.IsValid() {
		return nil, fmt.Errorf("%w: candidate has no playable reference", ErrDownloadFailed)
	}

	path, err := d.downloader.Download(ctx, input.Candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	return &DeliverOutput{FilePath: path}, nil
}
