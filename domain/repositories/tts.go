package repositories

import "context"

// TextToSpeech abstracts voice synthesis services.
type TextToSpeech interface {
	// Synthesize renders text as encoded audio bytes. Callers must redact
	// the text first; nothing reaches an implementation unredacted.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
