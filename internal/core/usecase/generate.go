package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/brandboost/internal/core/content"
	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
)

const (
	DefaultRemoteTimeout = 20 * time.Second

	errorResultContent        = "Sorry, there was an error generating content. Please try again."
	errorResultRecommendation = "Please check your internet connection and try again."
)

type GenerateContentUseCase struct {
	generator ports.TextGenerator
	recorder  ports.GenerationRecorder
	timeout   time.Duration
	now       func() time.Time
	newID     func() string

	mu    sync.Mutex
	stats domain.GenerationStats
}

type GenerateOption func(*GenerateContentUseCase)

func WithRecorder(recorder ports.GenerationRecorder) GenerateOption {
	return func(uc *GenerateContentUseCase) {
		uc.recorder = recorder
	}
}

func WithRemoteTimeout(timeout time.Duration) GenerateOption {
	return func(uc *GenerateContentUseCase) {
		if timeout > 0 {
			uc.timeout = timeout
		}
	}
}

func WithClock(now func() time.Time) GenerateOption {
	return func(uc *GenerateContentUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewGenerateContentUseCase(generator ports.TextGenerator, opts ...GenerateOption) *GenerateContentUseCase {
	uc := &GenerateContentUseCase{
		generator: generator,
		recorder:  noopRecorder{},
		timeout:   DefaultRemoteTimeout,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.recorder == nil {
		uc.recorder = noopRecorder{}
	}
	return uc
}

// Generate returns copy for the product. Only selection and product
// validation errors are returned; remote failures are reported through
// Metadata.Error on a fallback result.
func (uc *GenerateContentUseCase) Generate(
	ctx context.Context,
	product domain.Product,
	sel domain.Selection,
) (result *domain.GenerationResult, err error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("generation_internal_error",
				"request_id", domain.RequestIDFromContext(ctx),
				"product_id", product.ID,
				"content_type", sel.ContentType.String(),
				"panic", fmt.Sprint(r),
			)
			result = uc.errorResult(product, sel, fmt.Errorf("internal error: %v", r))
			err = nil
		}
	}()

	prompt := content.Prompt(sel, product)
	start := uc.now()

	outcome := uc.attemptRemote(ctx, prompt)
	text := outcome.Text
	source := domain.SourceAI
	if !outcome.OK() {
		uc.recorder.RecordRemoteFailure(outcome.Reason)
		slog.Warn("generation_fallback",
			"request_id", domain.RequestIDFromContext(ctx),
			"product_id", product.ID,
			"content_type", sel.ContentType.String(),
			"tone", sel.Tone.String(),
			"language", sel.Language.String(),
			"reason", string(outcome.Reason),
			"error", outcome.Err,
		)
		text = content.Fallback(sel, product)
		source = domain.SourceFallback
	}
	elapsed := uc.now().Sub(start)

	res := &domain.GenerationResult{
		Content:        strings.TrimSpace(text),
		GenerationTime: elapsed,
		Recommendation: content.Recommendation(sel.ContentType, sel.Tone),
		Metadata:       uc.metadata(product, sel, source, outcome.Indicator()),
	}

	uc.recordCompletion()
	uc.recorder.RecordGeneration(source, elapsed)
	slog.Info("generation_completed",
		"request_id", domain.RequestIDFromContext(ctx),
		"id", res.Metadata.ID,
		"product_id", product.ID,
		"source", string(source),
		"duration_ms", float64(elapsed.Microseconds())/1000.0,
	)
	return res, nil
}

// Stats returns a snapshot of the counters.
func (uc *GenerateContentUseCase) Stats() domain.GenerationStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stats
}

func (uc *GenerateContentUseCase) KPIs() domain.KPIs {
	return domain.CalculateKPIs(uc.Stats())
}

func (uc *GenerateContentUseCase) recordCompletion() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.stats = uc.stats.Add()
}

// attemptRemote makes the single upstream attempt. A provider that ignores
// its context is abandoned once the timeout fires.
func (uc *GenerateContentUseCase) attemptRemote(ctx context.Context, prompt string) domain.RemoteOutcome {
	if uc.generator == nil {
		return domain.Failed(domain.ReasonProviderDisabled, domain.ErrProviderDisabled)
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	req := domain.DefaultGenerationParams
	req.Prompt = prompt

	type reply struct {
		text string
		err  error
	}
	replies := make(chan reply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				replies <- reply{err: fmt.Errorf("remote generator panic: %v", r)}
			}
		}()
		text, err := uc.generator.Generate(callCtx, req)
		replies <- reply{text: text, err: err}
	}()

	select {
	case <-callCtx.Done():
		return domain.Failed(classifyRemoteError(callCtx.Err()), callCtx.Err())
	case r := <-replies:
		if r.err != nil {
			return domain.Failed(classifyRemoteError(r.err), r.err)
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			return domain.Failed(domain.ReasonEmptyCompletion, domain.ErrEmptyCompletion)
		}
		return domain.Succeeded(text)
	}
}

func classifyRemoteError(err error) domain.FailureReason {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ReasonTimeout
	case errors.Is(err, domain.ErrCircuitOpen):
		return domain.ReasonCircuitOpen
	case errors.Is(err, domain.ErrEmptyCompletion):
		return domain.ReasonEmptyCompletion
	case errors.Is(err, domain.ErrProviderDisabled):
		return domain.ReasonProviderDisabled
	case errors.Is(err, domain.ErrTemporary):
		return domain.ReasonTemporary
	default:
		return domain.ReasonError
	}
}

func (uc *GenerateContentUseCase) metadata(
	product domain.Product,
	sel domain.Selection,
	source domain.ContentSource,
	indicator string,
) domain.GenerationMetadata {
	return domain.GenerationMetadata{
		ID:          uc.newID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		ContentType: sel.ContentType,
		Tone:        sel.Tone,
		Language:    sel.Language,
		Source:      source,
		Timestamp:   uc.now().UTC(),
		Error:       indicator,
	}
}

func (uc *GenerateContentUseCase) errorResult(product domain.Product, sel domain.Selection, cause error) *domain.GenerationResult {
	return &domain.GenerationResult{
		Content:        errorResultContent,
		Recommendation: errorResultRecommendation,
		Metadata:       uc.metadata(product, sel, domain.SourceError, cause.Error()),
	}
}

type noopRecorder struct{}

func (noopRecorder) RecordGeneration(domain.ContentSource, time.Duration) {}
func (noopRecorder) RecordRemoteFailure(domain.FailureReason)             {}
func (noopRecorder) RecordExport(bool)                                    {}
