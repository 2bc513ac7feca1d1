package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/planvoice/planvoice/domain"
)

// spyChatModel counts calls and returns a scripted reply or error.
type spyChatModel struct {
	calls      int
	lastPrompt string
	reply      string
	err        error
}

func (m *spyChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestAssistantService_FiltersWithoutModelCall(t *testing.T) {
	model := &spyChatModel{reply: "should never be seen"}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	envelope := service.Reply(context.Background(), "What's the weather today?", nil)

	if !envelope.Filtered {
		t.Error("Expected filtered=true for off-topic message")
	}
	if envelope.Reply != declineReply {
		t.Errorf("Reply = %q, want the fixed decline text", envelope.Reply)
	}
	if envelope.Error != "" {
		t.Errorf("Error = %q, want empty; a policy decline is not a failure", envelope.Error)
	}
	if model.calls != 0 {
		t.Errorf("Model was called %d times for a filtered message, want 0", model.calls)
	}
}

func TestAssistantService_GreetingReachesModel(t *testing.T) {
	model := &spyChatModel{reply: "Hello! How can I help with your plan?"}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	envelope := service.Reply(context.Background(), "ok", nil)

	if envelope.Filtered {
		t.Error("Greeting was filtered; greetings must pass the guard")
	}
	if model.calls != 1 {
		t.Errorf("Model calls = %d, want 1", model.calls)
	}
}

func TestAssistantService_SuccessTrimsModelText(t *testing.T) {
	model := &spyChatModel{reply: "  You can contribute up to the annual limit.  \n"}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	envelope := service.Reply(context.Background(), "How much can I contribute?", nil)

	if envelope.Reply != "You can contribute up to the annual limit." {
		t.Errorf("Reply = %q, want trimmed model text", envelope.Reply)
	}
	if envelope.Filtered || envelope.Error != "" {
		t.Errorf("Unexpected envelope flags: filtered=%v error=%q", envelope.Filtered, envelope.Error)
	}
}

func TestAssistantService_PromptCarriesPreambleContextAndMessage(t *testing.T) {
	model := &spyChatModel{reply: "ok"}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	service.Reply(context.Background(), "How much should I contribute?", domain.UserContext{"balance": 100})

	if !strings.Contains(model.lastPrompt, policyPreamble) {
		t.Error("Prompt missing policy preamble")
	}
	if !strings.Contains(model.lastPrompt, "User context:") {
		t.Error("Prompt missing context block")
	}
	if !strings.Contains(model.lastPrompt, "How much should I contribute?") {
		t.Error("Prompt missing user message")
	}
}

func TestAssistantService_ModelUnconfigured(t *testing.T) {
	model := &spyChatModel{err: domain.ErrServiceUnconfigured}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	envelope := service.Reply(context.Background(), "How much can I contribute?", nil)

	if envelope.Error != "model_unconfigured" {
		t.Errorf("Error = %q, want model_unconfigured", envelope.Error)
	}
	if envelope.Filtered {
		t.Error("Unconfigured model must not mark the reply filtered")
	}
	if envelope.Reply == "" {
		t.Error("Expected a non-empty fallback reply")
	}
}

func TestAssistantService_RateLimited(t *testing.T) {
	model := &spyChatModel{err: fmt.Errorf("%w: 429 quota exceeded", domain.ErrRateLimited)}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	envelope := service.Reply(context.Background(), "What are my rollover options?", nil)

	if envelope.Error != "rate_limited" {
		t.Errorf("Error = %q, want rate_limited", envelope.Error)
	}
	if envelope.Reply != rateLimitedReply {
		t.Errorf("Reply = %q, want the retry-later text", envelope.Reply)
	}
	if model.calls != 1 {
		t.Errorf("Model calls = %d, want exactly 1; the gateway never retries", model.calls)
	}
}

func TestAssistantService_UpstreamFailureIsSanitized(t *testing.T) {
	model := &spyChatModel{err: errors.New("dial tcp 10.0.0.5:443: connection refused")}
	service := NewAssistantService(model, zaptest.NewLogger(t))

	envelope := service.Reply(context.Background(), "Can I take a loan?", nil)

	if envelope.Error != "upstream_error" {
		t.Errorf("Error = %q, want upstream_error", envelope.Error)
	}
	if strings.Contains(envelope.Reply, "dial tcp") {
		t.Error("Raw upstream error text leaked into the user-facing reply")
	}
	if envelope.Reply == "" {
		t.Error("Expected a non-empty fallback reply")
	}
}
