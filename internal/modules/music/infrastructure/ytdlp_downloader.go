package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// YTDLPDownloader materializes candidates as local audio files via yt-dlp.
type YTDLPDownloader struct {
	dir string
}

// NewYTDLPDownloader creates a downloader writing into dir.
func NewYTDLPDownloader(dir string) (*YTDLPDownloader, error) {
	if dir == "" {
		dir = "downloads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	return &YTDLPDownloader{dir: dir}, nil
}

// Download fetches the candidate's best audio stream and returns the local
// file path. The caller removes the file after delivery.
func (d *YTDLPDownloader) Download(
	ctx context.Context,
	candidate domain.Candidate,
) (string, error) {
	stem := filepath.Join(d.dir, fmt.Sprintf("track-%d", time.Now().UnixNano()))

	cmd := ytdlp.New().
		Quiet().
		NoWarnings().
		NoPlaylist().
		NoCheckCertificates().
		Format("bestaudio[ext=m4a]/bestaudio/best").
		Output(stem + ".%(ext)s")

	if _, err := cmd.Run(ctx, candidate.URL); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	matches, err := filepath.Glob(stem + ".*")
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("downloaded file not found for %q", candidate.URL)
	}

	return matches[0], nil
}

// Ensure YTDLPDownloader implements Downloader.
var _ ports.Downloader = (*YTDLPDownloader)(nil)
