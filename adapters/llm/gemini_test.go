package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/planvoice/planvoice/domain"
)

func TestValidateGeminiConfig(t *testing.T) {
	if err := ValidateGeminiConfig(GeminiConfig{}); err == nil {
		t.Error("Expected error when API key is missing")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "k", Temperature: 1.5}); err == nil {
		t.Error("Expected error for out-of-range temperature")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "k", TimeoutSeconds: -1}); err == nil {
		t.Error("Expected error for negative timeout")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "k"}); err != nil {
		t.Errorf("Valid config rejected: %v", err)
	}
}

func TestNewGeminiConfigFromEnv(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-api-key")
	os.Setenv("GEMINI_TEMPERATURE", "0.7")
	defer os.Unsetenv("GEMINI_API_KEY")
	defer os.Unsetenv("GEMINI_TEMPERATURE")

	config := NewGeminiConfigFromEnv()

	if config.APIKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", config.APIKey)
	}
	if config.Temperature != 0.7 {
		t.Errorf("Expected temperature 0.7, got %f", config.Temperature)
	}
}

func TestNewGeminiChatModel_RequiresAPIKey(t *testing.T) {
	logger := zaptest.NewLogger(t)

	_, err := NewGeminiChatModel(context.Background(), GeminiConfig{}, logger)
	if err == nil {
		t.Error("Expected error when API key is not set")
	}
}

func TestMapGenerateError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		rateLimited bool
	}{
		{"quota message", errors.New("googleapi: Error 429: quota exceeded"), true},
		{"resource exhausted", errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), true},
		{"plain failure", errors.New("connection reset by peer"), false},
		{"already wrapped", fmt.Errorf("call: %w", errors.New("deadline exceeded")), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapGenerateError(tc.err)
			if got := errors.Is(mapped, domain.ErrRateLimited); got != tc.rateLimited {
				t.Errorf("errors.Is(mapped, ErrRateLimited) = %v, want %v for %v", got, tc.rateLimited, tc.err)
			}
		})
	}
}
