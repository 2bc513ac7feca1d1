package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planvoice/planvoice/domain"
)

// PromptAssembler merges the policy preamble, an optional account-context
// block, and the literal user message into a single model prompt.
type PromptAssembler struct{}

// NewPromptAssembler creates a new prompt assembler.
func NewPromptAssembler() *PromptAssembler {
	return &PromptAssembler{}
}

// Assemble produces the prompt text. Identical inputs produce byte-identical
// output; context keys are emitted in sorted order to keep that guarantee.
// The context block is omitted entirely when userCtx is nil, and the user
// message is never truncated or rewritten.
func (a *PromptAssembler) Assemble(preamble string, userCtx domain.UserContext, message string) string {
	var b strings.Builder

	b.WriteString(preamble)
	b.WriteString("\n\n")

	if userCtx != nil {
		b.WriteString("User context:\n")
		keys := make([]string, 0, len(userCtx))
		for k := range userCtx {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %v\n", k, userCtx[k])
		}
		b.WriteString("\n")
	}

	b.WriteString("User question: ")
	b.WriteString(message)

	return b.String()
}
