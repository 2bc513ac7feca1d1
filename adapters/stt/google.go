package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// GoogleSpeechToText implements SpeechToText for Google Cloud. The client is
// created once at startup from application default credentials and reused
// for the process lifetime.
type GoogleSpeechToText struct {
	client *speech.Client
	logger *zap.Logger
}

var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates the recognizer client. Failing here means
// the credential is missing or unusable; the caller installs the
// Unconfigured variant instead.
func NewGoogleSpeechToText(ctx context.Context, logger *zap.Logger) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client: client,
		logger: logger,
	}, nil
}

// Transcribe converts a complete audio clip to text using a single
// synchronous recognize request. Punctuation and the enhanced model tier are
// always requested. An empty result set means no speech was detected and is
// a valid zero result, not an error.
func (g *GoogleSpeechToText) Transcribe(ctx context.Context, audio []byte, config domain.AudioConfig) (domain.TranscriptResult, error) {
	encoding, err := getAudioEncoding(config.Encoding)
	if err != nil {
		return domain.TranscriptResult{}, fmt.Errorf("unsupported audio encoding: %s", config.Encoding)
	}

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            int32(config.SampleRate),
			LanguageCode:               config.Language,
			EnableAutomaticPunctuation: true,
			UseEnhanced:                true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return domain.TranscriptResult{}, fmt.Errorf("failed to recognize audio: %w", err)
	}

	if len(resp.Results) == 0 || len(resp.Results[0].Alternatives) == 0 {
		g.logger.Info("No speech detected", zap.Int("audioBytes", len(audio)))
		return domain.TranscriptResult{}, nil
	}

	best := resp.Results[0].Alternatives[0]

	return domain.TranscriptResult{
		Transcript: best.Transcript,
		Confidence: float64(best.Confidence),
	}, nil
}

// Close releases the underlying client connection.
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

// getAudioEncoding converts string encoding to Google Speech API enum
func getAudioEncoding(encoding string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch encoding {
	case "WAV", "LINEAR16":
		return speechpb.RecognitionConfig_LINEAR16, nil
	case "FLAC":
		return speechpb.RecognitionConfig_FLAC, nil
	case "MULAW":
		return speechpb.RecognitionConfig_MULAW, nil
	case "OGG_OPUS":
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case "WEBM_OPUS":
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}
