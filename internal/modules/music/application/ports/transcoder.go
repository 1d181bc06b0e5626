package ports

import "context"

// Transcoder converts an audio artifact into the format the recognition
// backend accepts. The returned path is a new temporary file the caller
// owns and must remove.
type Transcoder interface {
	TranscodeToMP3(ctx context.Context, srcPath string) (string, error)
}
