package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is read once at
// startup and treated as immutable; changing a credential requires a
// restart.
type Config struct {
	Port          string
	AllowedOrigin string

	// Credentials. Absence disables the corresponding feature without
	// crashing the process.
	GeminiAPIKey      string
	GoogleCredentials string // path to the service-account JSON for speech
	ElevenLabsAPIKey  string

	// Speech recognition defaults, fixed for all requests.
	STTLanguage   string
	STTSampleRate int
}

// Load reads configuration from environment variables. In development it
// loads from a .env file if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "*"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		ElevenLabsAPIKey:  os.Getenv("ELEVEN_LABS_API_KEY"),
		STTLanguage:       getEnv("STT_LANGUAGE", "en-US"),
		STTSampleRate:     getEnvInt("STT_SAMPLE_RATE", 48000),
	}
}

// Presence probes back the health endpoint. They only check that a
// credential was supplied, never that it works.

// ChatConfigured reports whether the chat model credential is present.
func (c *Config) ChatConfigured() bool {
	return c.GeminiAPIKey != ""
}

// STTConfigured reports whether the speech recognition credential is present.
func (c *Config) STTConfigured() bool {
	return c.GoogleCredentials != ""
}

// TTSConfigured reports whether the speech synthesis credential is present.
func (c *Config) TTSConfigured() bool {
	return c.ElevenLabsAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
