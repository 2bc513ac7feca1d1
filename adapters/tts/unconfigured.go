package tts

import (
	"context"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// Unconfigured is the capability-absent synthesizer installed at startup
// when no API key is present. Synthesis fails closed without attempting an
// upstream call.
type Unconfigured struct{}

var _ repositories.TextToSpeech = Unconfigured{}

// Synthesize reports the missing credential without any I/O.
func (Unconfigured) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, domain.ErrServiceUnconfigured
}
