package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// MockSpeechToText is a placeholder recognizer for local development and
// handler tests. Output depends only on audio size so tests stay
// deterministic.
type MockSpeechToText struct {
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*MockSpeechToText)(nil)

// NewMockSpeechToText creates a new mock speech-to-text service.
func NewMockSpeechToText(logger *zap.Logger) *MockSpeechToText {
	return &MockSpeechToText{logger: logger}
}

// Transcribe implements repositories.SpeechToText.
func (s *MockSpeechToText) Transcribe(ctx context.Context, audio []byte, config domain.AudioConfig) (domain.TranscriptResult, error) {
	s.logger.Info("Processing mock speech-to-text",
		zap.Int("audioSize", len(audio)),
		zap.Int("sampleRate", config.SampleRate),
		zap.String("encoding", config.Encoding))

	switch {
	case len(audio) == 0:
		return domain.TranscriptResult{}, nil
	case len(audio) > 10000:
		return domain.TranscriptResult{
			Transcript: "How much should I contribute to get the full employer match?",
			Confidence: 0.95,
		}, nil
	case len(audio) > 1000:
		return domain.TranscriptResult{
			Transcript: "What is my account balance?",
			Confidence: 0.9,
		}, nil
	default:
		return domain.TranscriptResult{
			Transcript: "Hello",
			Confidence: 0.8,
		}, nil
	}
}
