package stt

import (
	"context"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// Unconfigured is the capability-absent recognizer installed at startup when
// no speech credential is present. Transcription fails closed without
// attempting an upstream call.
type Unconfigured struct{}

var _ repositories.SpeechToText = Unconfigured{}

// Transcribe reports the missing credential without any I/O.
func (Unconfigured) Transcribe(ctx context.Context, audio []byte, config domain.AudioConfig) (domain.TranscriptResult, error) {
	return domain.TranscriptResult{}, domain.ErrServiceUnconfigured
}
