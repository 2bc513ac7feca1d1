package domain

// Classification is the outcome of topical screening for a user message.
type Classification int

const (
	// OutOfScope means the message carries no recognizable plan-related topic.
	OutOfScope Classification = iota
	// Allowed means the message matched the domain allow-list.
	Allowed
	// Greeting means the message is a salutation or acknowledgement with no
	// topical content. Greetings pass the guard regardless of keywords.
	Greeting
)

// UserContext is an optional caller-owned bag of account facts (balance,
// contribution rate, plan type). The gateway serializes it verbatim into the
// prompt and never validates, mutates, or persists it.
type UserContext map[string]any

// ReplyEnvelope is the uniform result of an assistant exchange.
//
// Filtered true means the model was never invoked for this request. When
// Error is set, Reply holds a safe user-facing fallback sentence, never raw
// upstream detail.
type ReplyEnvelope struct {
	Reply    string `json:"reply"`
	Filtered bool   `json:"filtered"`
	Error    string `json:"error,omitempty"`
}
