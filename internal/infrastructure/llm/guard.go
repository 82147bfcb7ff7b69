package llm

import (
	"context"
	"strings"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
	"github.com/kirillkom/brandboost/internal/infrastructure/resilience"
)

// Guard runs a provider through the circuit breaker. Once the upstream keeps
// failing, calls fail fast with domain.ErrCircuitOpen so the caller can serve
// fallback copy without waiting for a timeout.
type Guard struct {
	next      ports.TextGenerator
	executor  *resilience.Executor
	operation string
}

func NewGuard(next ports.TextGenerator, executor *resilience.Executor, operation string) *Guard {
	if operation == "" {
		operation = "llm_generate"
	}
	return &Guard{next: next, executor: executor, operation: operation}
}

func (g *Guard) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	var text string
	err := g.executor.Execute(ctx, g.operation, func(ctx context.Context) error {
		out, err := g.next.Generate(ctx, req)
		if err != nil {
			return err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return domain.ErrEmptyCompletion
		}
		text = out
		return nil
	}, RecordFailure)
	if err != nil {
		if resilience.IsCircuitOpen(err) {
			return "", domain.WrapError(domain.ErrCircuitOpen, g.operation, err)
		}
		return "", err
	}
	return text, nil
}

func (g *Guard) State() string {
	return g.executor.State(g.operation)
}
