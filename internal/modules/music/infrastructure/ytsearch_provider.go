package infrastructure

import (
	"context"
	"fmt"

	"github.com/ppalone/ytsearch"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// YouTubeSearchProvider resolves queries against YouTube search.
type YouTubeSearchProvider struct {
	client *ytsearch.Client
}

// NewYouTubeSearchProvider creates a new YouTubeSearchProvider.
func NewYouTubeSearchProvider() *YouTubeSearchProvider {
	return &YouTubeSearchProvider{
		client: ytsearch.NewClient(nil),
	}
}

// Search returns up to limit candidates in YouTube's result order.
func (p *YouTubeSearchProvider) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.Candidate, error) {
	res, err := p.client.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(res.Results))
	for _, v := range res.Results {
		if v.VideoID == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Title:      v.Title,
			URL:        "https://www.youtube.com/watch?v=" + v.VideoID,
			SourceName: "youtube",
		})
		if len(candidates) == limit {
			break
		}
	}
	return candidates, nil
}

// Ensure YouTubeSearchProvider implements SearchProvider.
var _ ports.SearchProvider = (*YouTubeSearchProvider)(nil)
