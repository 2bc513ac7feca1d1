package usecase

import (
	"testing"

	"github.com/planvoice/planvoice/domain"
)

func TestTopicGuard_AllowsPlanQuestions(t *testing.T) {
	guard := NewTopicGuard()

	messages := []string{
		"How much should I contribute to my Roth 401k?",
		"Can I take a loan from my account?",
		"What is an employer match?",
		"Should I change my investment allocation?",
		"When can I withdraw without penalty?",
		"How do I name a beneficiary?",
	}

	for _, msg := range messages {
		if got := guard.Classify(msg); got != domain.Allowed {
			t.Errorf("Classify(%q) = %v, want Allowed", msg, got)
		}
	}
}

func TestTopicGuard_GreetingsPassWithoutKeywords(t *testing.T) {
	guard := NewTopicGuard()

	greetings := []string{"ok", "Hi", "hello there", "thanks!", "yes", "Good morning"}

	for _, msg := range greetings {
		if got := guard.Classify(msg); got != domain.Greeting {
			t.Errorf("Classify(%q) = %v, want Greeting", msg, got)
		}
		if !guard.Allows(msg) {
			t.Errorf("Allows(%q) = false, want true", msg)
		}
	}
}

func TestTopicGuard_RejectsOffTopic(t *testing.T) {
	guard := NewTopicGuard()

	messages := []string{
		"What's the weather today?",
		"Tell me a joke about cats",
		"Who won the game last night?",
	}

	for _, msg := range messages {
		if got := guard.Classify(msg); got != domain.OutOfScope {
			t.Errorf("Classify(%q) = %v, want OutOfScope", msg, got)
		}
		if guard.Allows(msg) {
			t.Errorf("Allows(%q) = true, want false", msg)
		}
	}
}

func TestTopicGuard_MatchingIsCaseInsensitive(t *testing.T) {
	guard := NewTopicGuard()

	if got := guard.Classify("WHAT ARE MY ROLLOVER OPTIONS?"); got != domain.Allowed {
		t.Errorf("Classify upper-case = %v, want Allowed", got)
	}
}
