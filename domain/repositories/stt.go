package repositories

import (
	"context"

	"github.com/planvoice/planvoice/domain"
)

// SpeechToText abstracts speech recognition services.
type SpeechToText interface {
	// Transcribe converts a complete audio clip to text. An empty result
	// set upstream yields a zero TranscriptResult, not an error.
	Transcribe(ctx context.Context, audio []byte, config domain.AudioConfig) (domain.TranscriptResult, error)
}
