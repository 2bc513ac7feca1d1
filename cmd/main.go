package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/planvoice/planvoice/adapters/llm"
	"github.com/planvoice/planvoice/adapters/stt"
	"github.com/planvoice/planvoice/adapters/tts"
	"github.com/planvoice/planvoice/domain/repositories"
	"github.com/planvoice/planvoice/internal/api"
	"github.com/planvoice/planvoice/internal/config"
	"github.com/planvoice/planvoice/internal/websocket"
	"github.com/planvoice/planvoice/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
	}))

	ctx := context.Background()

	// External clients are established once here and never reconfigured.
	// A missing credential installs the unconfigured variant instead of
	// crashing the process.
	var model repositories.ChatModel = llm.Unconfigured{}
	if cfg.ChatConfigured() {
		gemini, err := llm.NewGeminiChatModel(ctx, llm.NewGeminiConfigFromEnv(), logger)
		if err != nil {
			logger.Warn("Chat model disabled", zap.Error(err))
		} else {
			model = gemini
		}
	} else {
		logger.Warn("Chat model disabled: GEMINI_API_KEY not set")
	}

	var recognizer repositories.SpeechToText = stt.Unconfigured{}
	if cfg.STTConfigured() {
		google, err := stt.NewGoogleSpeechToText(ctx, logger)
		if err != nil {
			logger.Warn("Speech recognition disabled", zap.Error(err))
		} else {
			recognizer = google
			defer google.Close()
		}
	} else {
		logger.Warn("Speech recognition disabled: GOOGLE_APPLICATION_CREDENTIALS not set")
	}

	var synthesizer repositories.TextToSpeech = tts.Unconfigured{}
	if cfg.TTSConfigured() {
		elevenlabs, err := tts.NewElevenLabsTTS(tts.NewElevenLabsConfigFromEnv(), logger)
		if err != nil {
			logger.Warn("Speech synthesis disabled", zap.Error(err))
		} else {
			synthesizer = elevenlabs
		}
	} else {
		logger.Warn("Speech synthesis disabled: ELEVEN_LABS_API_KEY not set")
	}

	// Initialize usecase services
	assistant := usecase.NewAssistantService(model, logger)
	voice := usecase.NewVoiceService(recognizer, synthesizer, cfg.STTSampleRate, cfg.STTLanguage, logger)

	// Initialize API routes
	api.InitRoutes(e, api.NewHandler(assistant, voice, cfg, logger))

	// Initialize WebSocket hub for the live assistant channel
	hub := websocket.NewHub(assistant, cfg.AllowedOrigin, logger)
	go hub.Run()
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(hub, c)
	})

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.Bool("coreAi", cfg.ChatConfigured()),
		zap.Bool("stt", cfg.STTConfigured()),
		zap.Bool("tts", cfg.TTSConfigured()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
