package ports

import (
	"context"
	"io"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

// TextGenerator is the remote language model. Implementations make exactly
// one upstream attempt per call.
type TextGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

// ObjectStorage stores exported content and reports where it landed.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// ProductCatalog is the read-only product source.
type ProductCatalog interface {
	List() []domain.Product
	GetByID(id string) (domain.Product, error)
	Categories() []domain.CategoryCount
}

// GenerationRecorder observes completed generations and export attempts.
type GenerationRecorder interface {
	RecordGeneration(source domain.ContentSource, duration time.Duration)
	RecordRemoteFailure(reason domain.FailureReason)
	RecordExport(ok bool)
}
