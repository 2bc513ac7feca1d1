package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// VoiceService wraps the two independent speech capabilities. Either side
// may be backed by its Unconfigured variant; both fail closed with
// ErrServiceUnconfigured instead of attempting a doomed upstream call.
type VoiceService struct {
	stt      repositories.SpeechToText
	tts      repositories.TextToSpeech
	redactor *Redactor
	audio    domain.AudioConfig
	logger   *zap.Logger
}

// NewVoiceService creates the voice proxy. Sample rate and language are
// process-wide defaults fixed at startup, not per-request parameters.
func NewVoiceService(
	stt repositories.SpeechToText,
	tts repositories.TextToSpeech,
	sampleRate int,
	language string,
	logger *zap.Logger,
) *VoiceService {
	return &VoiceService{
		stt:      stt,
		tts:      tts,
		redactor: NewRedactor(),
		audio: domain.AudioConfig{
			SampleRate: sampleRate,
			Language:   language,
		},
		logger: logger,
	}
}

// Transcribe converts uploaded audio to text. The encoding is sniffed from
// the upload MIME type; an empty transcript with zero confidence means no
// speech was detected and is returned without error.
func (v *VoiceService) Transcribe(ctx context.Context, audio []byte, mimeType string) (domain.TranscriptResult, error) {
	config := domain.AudioConfig{
		SampleRate: v.audio.SampleRate,
		Encoding:   encodingForMime(mimeType),
		Language:   v.audio.Language,
	}

	result, err := v.stt.Transcribe(ctx, audio, config)
	if err != nil {
		return domain.TranscriptResult{}, err
	}

	v.logger.Info("Transcription completed",
		zap.String("component", "voice"),
		zap.Int("audioBytes", len(audio)),
		zap.String("encoding", config.Encoding),
		zap.Float64("confidence", result.Confidence))

	return result, nil
}

// Synthesize renders text as audio. Redaction happens here, inside the
// proxy, so no caller can reach the TTS API with unredacted identifiers.
func (v *VoiceService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return v.tts.Synthesize(ctx, v.redactor.Redact(text))
}

// encodingForMime maps an upload MIME type to a recognizer encoding.
// Browsers record webm/opus; wav comes from test harnesses and older
// clients. Anything unrecognized is treated as webm.
func encodingForMime(mimeType string) string {
	m := strings.ToLower(mimeType)
	switch {
	case strings.Contains(m, "wav"):
		return "LINEAR16"
	case strings.Contains(m, "webm"):
		return "WEBM_OPUS"
	default:
		return "WEBM_OPUS"
	}
}
