package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/internal/config"
	"github.com/planvoice/planvoice/usecase"
)

// uploadLimit caps voice uploads; larger files are rejected by the body
// limit middleware before any handler runs.
const uploadLimit = "10M"

// Handler carries the wired services for the HTTP surface.
type Handler struct {
	assistant *usecase.AssistantService
	voice     *usecase.VoiceService
	cfg       *config.Config
	logger    *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(assistant *usecase.AssistantService, voice *usecase.VoiceService, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		assistant: assistant,
		voice:     voice,
		cfg:       cfg,
		logger:    logger,
	}
}

// InitRoutes initializes all API routes.
func InitRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/health", h.health)
	e.POST("/api/core-ai", h.coreAI)

	voice := e.Group("/api/voice")
	voice.POST("/stt", h.speechToText, middleware.BodyLimit(uploadLimit))
	voice.POST("/tts", h.textToSpeech)
}

// health is purely a configuration-presence probe; it never calls out.
func (h *Handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Services: ServiceStatuses{
			STT:    h.cfg.STTConfigured(),
			TTS:    h.cfg.TTSConfigured(),
			CoreAI: h.cfg.ChatConfigured(),
		},
	})
}

func (h *Handler) coreAI(c echo.Context) error {
	var req AssistantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request"})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message is required"})
	}

	envelope := h.assistant.Reply(c.Request().Context(), req.Message, req.Context)
	if envelope.Error != "" {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: envelope.Error,
			Reply: envelope.Reply,
		})
	}

	return c.JSON(http.StatusOK, envelope)
}

func (h *Handler) speechToText(c echo.Context) error {
	if !h.cfg.STTConfigured() {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "speech_recognition_unavailable"})
	}

	file, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "audio file is required"})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded audio", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "audio file is unreadable"})
	}
	defer src.Close()

	audio, err := io.ReadAll(src)
	if err != nil {
		h.logger.Error("Failed to read uploaded audio", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "audio file is unreadable"})
	}

	result, err := h.voice.Transcribe(c.Request().Context(), audio, file.Header.Get("Content-Type"))
	if errors.Is(err, domain.ErrServiceUnconfigured) {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "speech_recognition_unavailable"})
	}
	if err != nil {
		h.logger.Error("Transcription failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "transcription_failed"})
	}

	if result.Transcript == "" {
		return c.JSON(http.StatusOK, TranscriptionResponse{Error: "No speech detected"})
	}

	return c.JSON(http.StatusOK, TranscriptionResponse{
		Transcript: result.Transcript,
		Confidence: result.Confidence,
	})
}

func (h *Handler) textToSpeech(c echo.Context) error {
	if !h.cfg.TTSConfigured() {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "speech_synthesis_unavailable"})
	}

	var req SynthesisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request"})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "text is required"})
	}

	audio, err := h.voice.Synthesize(c.Request().Context(), req.Text)
	if errors.Is(err, domain.ErrServiceUnconfigured) {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "speech_synthesis_unavailable"})
	}
	if err != nil {
		h.logger.Error("Synthesis failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "synthesis_failed"})
	}

	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}
