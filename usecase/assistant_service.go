package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// policyPreamble is the fixed instruction block prepended to every prompt.
const policyPreamble = `You are a retirement plan assistant for plan participants.
Answer only questions about retirement accounts: contributions, employer match,
investments, withdrawals, loans, rollovers, beneficiaries, and plan features.
Keep answers short, plain, and factual. Do not give personalized financial,
legal, or tax advice; suggest speaking with a licensed advisor for decisions.
Never ask for or repeat Social Security numbers, account numbers, or other
identifiers.`

// User-facing texts. Always short, calm, and actionable; never raw upstream
// error detail.
const (
	declineReply = "I can only help with questions about your retirement plan, " +
		"such as contributions, investments, withdrawals, and account features. " +
		"Is there something about your plan I can help with?"
	unavailableReply = "The assistant isn't available right now. Please try again later."
	rateLimitedReply = "I'm answering a lot of questions at the moment. " +
		"Please wait a few seconds and ask again."
	upstreamFailureReply = "Something went wrong while answering. Please try again in a moment."
)

// AssistantService orchestrates the scoped assistant exchange: topical
// screening, prompt assembly, model invocation, and failure classification.
// It holds no cross-request state; every call is independent.
type AssistantService struct {
	model     repositories.ChatModel
	guard     *TopicGuard
	assembler *PromptAssembler
	logger    *zap.Logger
}

// NewAssistantService creates the gateway around an injected chat model.
// Pass llm.Unconfigured when no model credential is present; the gateway
// then answers with the unconfigured fallback instead of crashing.
func NewAssistantService(model repositories.ChatModel, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		model:     model,
		guard:     NewTopicGuard(),
		assembler: NewPromptAssembler(),
		logger:    logger,
	}
}

// Reply runs one assistant exchange and always returns an envelope, never an
// error: out-of-scope messages are declined without touching the model, and
// every upstream failure is folded into a safe fallback reply. There is no
// internal retry; backpressure is surfaced to the caller as rate_limited.
//
// Privacy contract: neither the message nor the user context is ever logged.
func (s *AssistantService) Reply(ctx context.Context, message string, userCtx domain.UserContext) domain.ReplyEnvelope {
	if !s.guard.Allows(message) {
		s.logger.Info("Message declined by topic guard",
			zap.String("component", "assistant"))
		return domain.ReplyEnvelope{Reply: declineReply, Filtered: true}
	}

	prompt := s.assembler.Assemble(policyPreamble, userCtx, message)

	text, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return s.classifyFailure(err)
	}

	return domain.ReplyEnvelope{Reply: strings.TrimSpace(text), Filtered: false}
}

// classifyFailure folds a model failure into the error taxonomy. The
// envelope's Error field is a machine-readable cause; the diagnostic detail
// goes to the log, never to the user.
func (s *AssistantService) classifyFailure(err error) domain.ReplyEnvelope {
	switch {
	case errors.Is(err, domain.ErrServiceUnconfigured):
		s.logger.Warn("Chat model not configured",
			zap.String("component", "assistant"))
		return domain.ReplyEnvelope{Reply: unavailableReply, Error: "model_unconfigured"}

	case errors.Is(err, domain.ErrRateLimited):
		s.logger.Warn("Chat model rate limited",
			zap.String("component", "assistant"))
		return domain.ReplyEnvelope{Reply: rateLimitedReply, Error: "rate_limited"}

	default:
		s.logger.Error("Chat model request failed",
			zap.String("component", "assistant"),
			zap.Error(err))
		return domain.ReplyEnvelope{Reply: upstreamFailureReply, Error: "upstream_error"}
	}
}
