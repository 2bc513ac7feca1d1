package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

const (
	defaultModel          = "gemini-2.0-flash"
	defaultTemperature    = 0.4
	defaultMaxTokens      = 1024
	defaultTimeoutSeconds = 30
)

// GeminiConfig holds configuration for the Gemini chat model adapter.
// Required fields:
// - APIKey: Your Google AI API key
// Optional fields with defaults:
// - Model: The model name (default: "gemini-2.0-flash")
// - Temperature: Sampling temperature between 0 and 1 (default: 0.4)
// - MaxOutputTokens: Reply length cap (default: 1024)
// - TimeoutSeconds: Per-request deadline (default: 30)
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int
	TimeoutSeconds  int
}

// GeminiChatModel implements the ChatModel interface using Google's Gemini API.
type GeminiChatModel struct {
	client          *genai.Client
	logger          *zap.Logger
	model           string
	temperature     float32
	maxOutputTokens int
	timeoutSeconds  int
}

// Ensure GeminiChatModel implements the ChatModel interface
var _ repositories.ChatModel = (*GeminiChatModel)(nil)

// ValidateGeminiConfig validates the GeminiConfig.
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("Google AI API key is required")
	}

	if config.Temperature != 0 && (config.Temperature < 0 || config.Temperature > 1) {
		return fmt.Errorf("temperature must be between 0 and 1, got %f", config.Temperature)
	}

	if config.MaxOutputTokens < 0 {
		return fmt.Errorf("maxOutputTokens must be positive, got %d", config.MaxOutputTokens)
	}

	if config.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be positive, got %d", config.TimeoutSeconds)
	}

	return nil
}

// NewGeminiChatModel creates a new Gemini chat model instance. The client is
// created once here and reused for the process lifetime.
func NewGeminiChatModel(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiChatModel, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	temperature := config.Temperature
	if temperature == 0 {
		temperature = float32(defaultTemperature)
		logger.Info("Using default temperature", zap.Float32("temperature", temperature))
	}

	maxOutputTokens := config.MaxOutputTokens
	if maxOutputTokens == 0 {
		maxOutputTokens = defaultMaxTokens
		logger.Info("Using default maxOutputTokens", zap.Int("maxOutputTokens", maxOutputTokens))
	}

	timeoutSeconds := config.TimeoutSeconds
	if timeoutSeconds == 0 {
		timeoutSeconds = defaultTimeoutSeconds
		logger.Info("Using default timeoutSeconds", zap.Int("timeoutSeconds", timeoutSeconds))
	}

	return &GeminiChatModel{
		client:          client,
		logger:          logger,
		model:           model,
		temperature:     temperature,
		maxOutputTokens: maxOutputTokens,
		timeoutSeconds:  timeoutSeconds,
	}, nil
}

// Generate submits the assembled prompt as a single-turn request and returns
// the model's text. There is no retry here: rate limits surface as
// ErrRateLimited and the caller decides what to do.
func (g *GeminiChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: int32(g.maxOutputTokens),
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.timeoutSeconds)*time.Second)
	defer cancel()

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", mapGenerateError(err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil ||
		len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var text string
	for _, part := range response.Candidates[0].Content.Parts {
		text += part.Text
	}

	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	g.logger.Info("Generated model reply",
		zap.String("model", g.model),
		zap.Int("replyLength", len(text)))

	return text, nil
}

// mapGenerateError folds provider failures into the domain taxonomy. Quota
// exhaustion can arrive as a structured APIError with code 429 or as a bare
// message mentioning the quota, depending on the transport.
func mapGenerateError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.Status)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, strconv.Itoa(http.StatusTooManyRequests)) ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "quota") {
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	return fmt.Errorf("generate content: %w", err)
}

// NewGeminiConfigFromEnv creates a new GeminiConfig from environment variables.
func NewGeminiConfigFromEnv() GeminiConfig {
	config := GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}

	if temperatureStr := os.Getenv("GEMINI_TEMPERATURE"); temperatureStr != "" {
		if temperature, err := strconv.ParseFloat(temperatureStr, 32); err == nil && temperature >= 0 && temperature <= 1 {
			config.Temperature = float32(temperature)
		}
	}

	if maxTokensStr := os.Getenv("GEMINI_MAX_OUTPUT_TOKENS"); maxTokensStr != "" {
		if maxTokens, err := strconv.Atoi(maxTokensStr); err == nil && maxTokens > 0 {
			config.MaxOutputTokens = maxTokens
		}
	}

	if timeoutStr := os.Getenv("GEMINI_TIMEOUT_SECONDS"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil && timeout > 0 {
			config.TimeoutSeconds = timeout
		}
	}

	return config
}
