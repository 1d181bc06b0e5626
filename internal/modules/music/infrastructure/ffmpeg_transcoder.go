package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
)

// FFmpegTranscoder converts audio artifacts to mp3 by shelling out to ffmpeg.
type FFmpegTranscoder struct {
	timeout time.Duration
}

// NewFFmpegTranscoder creates a new FFmpegTranscoder.
func NewFFmpegTranscoder(timeout time.Duration) *FFmpegTranscoder {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FFmpegTranscoder{timeout: timeout}
}

// TranscodeToMP3 writes an mp3 copy next to srcPath and returns its path.
// The caller owns both files.
func (t *FFmpegTranscoder) TranscodeToMP3(ctx context.Context, srcPath string) (string, error) {
	outPath := srcPath + ".mp3"

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", srcPath,
		"-f", "mp3",
		"-acodec", "libmp3lame",
		"-ar", "44100",
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg conversion failed: %w, stderr: %s", err, stderr.String())
	}

	return outPath, nil
}

// Ensure FFmpegTranscoder implements Transcoder.
var _ ports.Transcoder = (*FFmpegTranscoder)(nil)
