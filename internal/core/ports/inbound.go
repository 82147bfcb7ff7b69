package ports

import (
	"context"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

// ContentGenerator is the inbound contract for copy generation.
type ContentGenerator interface {
	Generate(ctx context.Context, product domain.Product, sel domain.Selection) (*domain.GenerationResult, error)
	Stats() domain.GenerationStats
	KPIs() domain.KPIs
}

// ContentExporter writes generated copy to the export directory.
type ContentExporter interface {
	Export(ctx context.Context, text, filename string) (string, error)
	Read(ctx context.Context, filename string) (string, error)
}

// AnalyticsService serves the dashboard figures.
type AnalyticsService interface {
	Overview() domain.AnalyticsOverview
	TimeSavings(now time.Time) []domain.TimeSavingsPoint
	CategoryDistribution() []domain.CategoryCount
	ToneEffectiveness() []domain.ToneEffectiveness
	Insights() domain.Insights
	About() domain.About
}
