package usecase

import (
	"strings"

	"github.com/planvoice/planvoice/domain"
)

// TopicGuard screens user messages for topical scope before any paid
// upstream call is made. Matching is deliberately lower-cased substring and
// prefix scanning, not tokenized: false positives are tolerated so that a
// legitimate plan question is never blocked.
type TopicGuard struct{}

// greetingPrefixes carry no topical content and must never be rejected.
var greetingPrefixes = []string{
	"hi",
	"hello",
	"hey",
	"good morning",
	"good afternoon",
	"good evening",
	"thanks",
	"thank you",
	"ok",
	"okay",
	"yes",
	"no",
	"yep",
	"sure",
	"got it",
	"bye",
	"goodbye",
}

// allowedTopics is the static allow-list of plan vocabulary. One hit anywhere
// in the message allows it.
var allowedTopics = []string{
	"401k",
	"401(k)",
	"403b",
	"403(b)",
	"457",
	"ira",
	"roth",
	"pension",
	"retire",
	"retirement",
	"contribut",
	"deferral",
	"match",
	"vest",
	"withdraw",
	"distribution",
	"rollover",
	"roll over",
	"loan",
	"hardship",
	"beneficiar",
	"invest",
	"fund",
	"portfolio",
	"allocation",
	"diversif",
	"balance",
	"rmd",
	"required minimum",
	"annuity",
	"social security",
	"tax",
	"penalty",
	"catch-up",
	"catch up",
	"paycheck",
	"salary",
	"employer",
	"enroll",
	"plan",
	"saving",
	"save",
	"how much",
	"how many",
	"percent",
	"rate",
}

// NewTopicGuard creates a new topic guard.
func NewTopicGuard() *TopicGuard {
	return &TopicGuard{}
}

// Classify decides whether a message is in scope. It is a pure function of
// the message and the static configuration above; it never fails and never
// makes an external call. An unmatched message is OutOfScope, not an error.
func (g *TopicGuard) Classify(message string) domain.Classification {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, prefix := range greetingPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return domain.Greeting
		}
	}

	for _, topic := range allowedTopics {
		if strings.Contains(lower, topic) {
			return domain.Allowed
		}
	}

	return domain.OutOfScope
}

// Allows collapses the classification to the guard's public contract:
// greetings and on-topic messages both pass.
func (g *TopicGuard) Allows(message string) bool {
	return g.Classify(message) != domain.OutOfScope
}
