package tts

import (
	"context"

	"go.uber.org/zap"

	"github.com/planvoice/planvoice/domain/repositories"
)

// MockTextToSpeech is a placeholder synthesizer for local development and
// handler tests. It records the last text it was asked to speak.
type MockTextToSpeech struct {
	logger   *zap.Logger
	LastText string
}

var _ repositories.TextToSpeech = (*MockTextToSpeech)(nil)

// NewMockTextToSpeech creates a new mock text-to-speech service.
func NewMockTextToSpeech(logger *zap.Logger) *MockTextToSpeech {
	return &MockTextToSpeech{logger: logger}
}

// Synthesize implements repositories.TextToSpeech.
func (m *MockTextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.LastText = text
	m.logger.Info("Mock speech synthesis", zap.Int("textLength", len(text)))
	return []byte("ID3mock-audio"), nil
}
