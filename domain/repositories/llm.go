package repositories

import "context"

// ChatModel abstracts any hosted chat/LLM provider.
type ChatModel interface {
	// Generate submits a fully assembled prompt and returns the model's
	// text reply. Implementations map provider errors to the domain
	// taxonomy (ErrServiceUnconfigured, ErrRateLimited) where they can.
	Generate(ctx context.Context, prompt string) (string, error)
}
