package llm

import (
	"context"

	"github.com/planvoice/planvoice/domain"
	"github.com/planvoice/planvoice/domain/repositories"
)

// Unconfigured is the capability-absent chat model installed at startup when
// no API key is present. It makes the unconfigured state a first-class,
// testable branch instead of a nil interface.
type Unconfigured struct{}

var _ repositories.ChatModel = Unconfigured{}

// Generate reports the missing credential without any I/O.
func (Unconfigured) Generate(ctx context.Context, prompt string) (string, error) {
	return "", domain.ErrServiceUnconfigured
}
