package infrastructure

import (
	"context"
	"fmt"

	"github.com/raitonoberu/ytmusic"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// YouTubeMusicSearchProvider resolves queries against YouTube Music, which
// tends to rank studio recordings above videos for song-style queries.
type YouTubeMusicSearchProvider struct{}

// NewYouTubeMusicSearchProvider creates a new YouTubeMusicSearchProvider.
func NewYouTubeMusicSearchProvider() *YouTubeMusicSearchProvider {
	return &YouTubeMusicSearchProvider{}
}

// Search returns up to limit candidates in YouTube Music's result order.
// The underlying client is not context-aware, so the lookup runs in a
// goroutine and the call abandons it when ctx expires.
func (p *YouTubeMusicSearchProvider) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.Candidate, error) {
	type searchResult struct {
		candidates []domain.Candidate
		err        error
	}

	done := make(chan searchResult, 1)
	go func() {
		search := ytmusic.TrackSearch(query)
		result, err := search.Next()
		if err != nil {
			done <- searchResult{err: fmt.Errorf("youtube music search: %w", err)}
			return
		}

		candidates := make([]domain.Candidate, 0, len(result.Tracks))
		for _, track := range result.Tracks {
			if track.VideoID == "" {
				continue
			}
			artist := ""
			if len(track.Artists) > 0 {
				artist = track.Artists[0].Name
			}
			candidates = append(candidates, domain.Candidate{
				Title:      track.Title,
				Artist:     artist,
				URL:        "https://music.youtube.com/watch?v=" + track.VideoID,
				SourceName: "youtube_music",
			})
			if len(candidates) == limit {
				break
			}
		}
		done <- searchResult{candidates: candidates}
	}()

	select {
	case res := <-done:
		return res.candidates, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ensure YouTubeMusicSearchProvider implements SearchProvider.
var _ ports.SearchProvider = (*YouTubeMusicSearchProvider)(nil)
