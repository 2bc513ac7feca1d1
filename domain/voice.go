package domain

// TranscriptResult is the outcome of a speech-to-text request. An empty
// transcript with zero confidence is a valid "no speech detected" result,
// not an error.
type TranscriptResult struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// AudioConfig represents audio configuration for speech recognition.
type AudioConfig struct {
	SampleRate int    `json:"sample_rate"`
	Encoding   string `json:"encoding"`
	Language   string `json:"language"`
}
