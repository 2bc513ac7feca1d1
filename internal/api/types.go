package api

import "github.com/planvoice/planvoice/domain"

// AssistantRequest represents the request payload for POST /api/core-ai.
type AssistantRequest struct {
	Message string             `json:"message"`
	Context domain.UserContext `json:"context,omitempty"`
}

// SynthesisRequest represents the request payload for POST /api/voice/tts.
type SynthesisRequest struct {
	Text string `json:"text"`
}

// TranscriptionResponse represents the response payload for POST /api/voice/stt.
type TranscriptionResponse struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// ServiceStatuses reports which external capabilities have credentials.
type ServiceStatuses struct {
	STT    bool `json:"stt"`
	TTS    bool `json:"tts"`
	CoreAI bool `json:"coreAi"`
}

// HealthResponse represents the response payload for GET /api/health.
type HealthResponse struct {
	Status   string          `json:"status"`
	Services ServiceStatuses `json:"services"`
}

// ErrorResponse represents an error response. Reply, when present, is a safe
// user-facing fallback sentence.
type ErrorResponse struct {
	Error string `json:"error"`
	Reply string `json:"reply,omitempty"`
}
