package llm

import (
	"context"

	"github.com/planvoice/planvoice/domain/repositories"
)

// MockChatModel is a canned-reply model for local development and handler
// tests. It records how many times it was invoked.
type MockChatModel struct {
	Reply string
	Calls int
}

var _ repositories.ChatModel = (*MockChatModel)(nil)

// NewMockChatModel creates a mock model with a fixed reply.
func NewMockChatModel(reply string) *MockChatModel {
	return &MockChatModel{Reply: reply}
}

// Generate implements repositories.ChatModel.
func (m *MockChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	return m.Reply, nil
}
