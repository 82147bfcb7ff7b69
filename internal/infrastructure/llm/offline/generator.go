package offline

import (
	"context"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

// Generator never reaches a model; every request is served fallback copy.
type Generator struct{}

func New() Generator {
	return Generator{}
}

func (Generator) Generate(context.Context, domain.GenerationRequest) (string, error) {
	return "", domain.ErrProviderDisabled
}
