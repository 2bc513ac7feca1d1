package usecase

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/planvoice/planvoice/domain"
)

type spySpeechToText struct {
	lastConfig domain.AudioConfig
	result     domain.TranscriptResult
	err        error
}

func (s *spySpeechToText) Transcribe(ctx context.Context, audio []byte, config domain.AudioConfig) (domain.TranscriptResult, error) {
	s.lastConfig = config
	return s.result, s.err
}

type spyTextToSpeech struct {
	lastText string
	audio    []byte
	err      error
}

func (s *spyTextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.lastText = text
	return s.audio, s.err
}

func newTestVoiceService(stt *spySpeechToText, tts *spyTextToSpeech, t *testing.T) *VoiceService {
	return NewVoiceService(stt, tts, 48000, "en-US", zaptest.NewLogger(t))
}

func TestVoiceService_SynthesizeRedactsBeforeTTS(t *testing.T) {
	tts := &spyTextToSpeech{audio: []byte("mp3")}
	service := newTestVoiceService(&spySpeechToText{}, tts, t)

	_, err := service.Synthesize(context.Background(), "Your SSN is 123-45-6789 and card 4111 1111 1111 1234")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}

	if strings.Contains(tts.lastText, "123-45-6789") {
		t.Error("Unredacted SSN reached the TTS adapter")
	}
	if !strings.Contains(tts.lastText, "XXX-XX-XXXX") {
		t.Errorf("TTS received %q, want masked SSN", tts.lastText)
	}
	if !strings.Contains(tts.lastText, "XXXX-XXXX-XXXX-1234") {
		t.Errorf("TTS received %q, want masked card number", tts.lastText)
	}
}

func TestVoiceService_SynthesizeFailsClosedWhenUnconfigured(t *testing.T) {
	tts := &spyTextToSpeech{err: domain.ErrServiceUnconfigured}
	service := newTestVoiceService(&spySpeechToText{}, tts, t)

	_, err := service.Synthesize(context.Background(), "hello")
	if err != domain.ErrServiceUnconfigured {
		t.Errorf("err = %v, want ErrServiceUnconfigured", err)
	}
}

func TestVoiceService_TranscribeMapsMimeToEncoding(t *testing.T) {
	cases := []struct {
		mime     string
		encoding string
	}{
		{"audio/webm;codecs=opus", "WEBM_OPUS"},
		{"audio/wav", "LINEAR16"},
		{"audio/x-wav", "LINEAR16"},
		{"application/octet-stream", "WEBM_OPUS"},
		{"", "WEBM_OPUS"},
	}

	for _, tc := range cases {
		stt := &spySpeechToText{result: domain.TranscriptResult{Transcript: "hi", Confidence: 0.9}}
		service := newTestVoiceService(stt, &spyTextToSpeech{}, t)

		_, err := service.Transcribe(context.Background(), []byte{1, 2, 3}, tc.mime)
		if err != nil {
			t.Fatalf("Transcribe(%q) returned error: %v", tc.mime, err)
		}

		if stt.lastConfig.Encoding != tc.encoding {
			t.Errorf("mime %q mapped to %q, want %q", tc.mime, stt.lastConfig.Encoding, tc.encoding)
		}
		if stt.lastConfig.SampleRate != 48000 {
			t.Errorf("mime %q sample rate = %d, want the configured default", tc.mime, stt.lastConfig.SampleRate)
		}
		if stt.lastConfig.Language != "en-US" {
			t.Errorf("mime %q language = %q, want the configured default", tc.mime, stt.lastConfig.Language)
		}
	}
}

func TestVoiceService_NoSpeechIsNotAnError(t *testing.T) {
	stt := &spySpeechToText{result: domain.TranscriptResult{}}
	service := newTestVoiceService(stt, &spyTextToSpeech{}, t)

	result, err := service.Transcribe(context.Background(), bytes.Repeat([]byte{0}, 64), "audio/webm")
	if err != nil {
		t.Fatalf("Transcribe returned error for silent audio: %v", err)
	}
	if result.Transcript != "" || result.Confidence != 0 {
		t.Errorf("result = %+v, want empty transcript with zero confidence", result)
	}
}
