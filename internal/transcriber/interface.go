package transcriber

import "context"

// Transcriber runs one full transcription: device resolution, inference,
// and format encoding into a fresh output batch.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
