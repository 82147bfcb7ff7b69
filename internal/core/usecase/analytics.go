package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/kirillkom/brandboost/internal/core/domain"
	"github.com/kirillkom/brandboost/internal/core/ports"
)

const timeSavingsDays = 7

type kpiSource interface {
	KPIs() domain.KPIs
}

// AnalyticsUseCase derives dashboard figures from the live KPIs and the
// catalog. Apart from KPIs and categories the figures are fixed samples.
type AnalyticsUseCase struct {
	kpis     kpiSource
	catalog  ports.ProductCatalog
	provider string
	model    string
}

func NewAnalyticsUseCase(kpis kpiSource, catalog ports.ProductCatalog, provider, model string) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		kpis:     kpis,
		catalog:  catalog,
		provider: provider,
		model:    model,
	}
}

func (uc *AnalyticsUseCase) Overview() domain.AnalyticsOverview {
	kpis := uc.kpis.KPIs()
	return domain.AnalyticsOverview{
		KPIs: kpis,
		ROI:  domain.ComputeROI(kpis),
	}
}

// TimeSavings spreads the saved hours evenly over the seven days ending at
// now, oldest first.
func (uc *AnalyticsUseCase) TimeSavings(now time.Time) []domain.TimeSavingsPoint {
	daily := uc.kpis.KPIs().TimeSavedHours / timeSavingsDays
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]domain.TimeSavingsPoint, 0, timeSavingsDays)
	for i := timeSavingsDays - 1; i >= 0; i-- {
		points = append(points, domain.TimeSavingsPoint{
			Date:       day.AddDate(0, 0, -i),
			HoursSaved: daily,
		})
	}
	return points
}

func (uc *AnalyticsUseCase) CategoryDistribution() []domain.CategoryCount {
	counts := uc.catalog.Categories()
	out := make([]domain.CategoryCount, len(counts))
	copy(out, counts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func (uc *AnalyticsUseCase) ToneEffectiveness() []domain.ToneEffectiveness {
	sample := []struct {
		tone  domain.Tone
		rates [domain.NumContentTypes]int
	}{
		{domain.Professional, [domain.NumContentTypes]int{85, 78, 82}},
		{domain.Playful, [domain.NumContentTypes]int{92, 95, 88}},
	}

	out := make([]domain.ToneEffectiveness, 0, len(sample)*domain.NumContentTypes)
	for _, row := range sample {
		for _, ct := range domain.AllContentTypes() {
			out = append(out, domain.ToneEffectiveness{
				ContentType:    ct,
				Tone:           row.tone,
				EngagementRate: row.rates[ct],
			})
		}
	}
	return out
}

func (uc *AnalyticsUseCase) Insights() domain.Insights {
	return domain.Insights{
		Insights: []string{
			"Content Strategy: Playful tone increases social media engagement by 15%",
			"SEO Optimization: Professional product descriptions improve search rankings",
			"Email Performance: Casual tone has 23% higher open rates",
			"Luxury Positioning: Premium tone justifies 30% higher pricing",
			// Marketing copy quotes 25 minutes; the KPI counters credit 30.
			"Time Efficiency: AI generation saves 25 minutes per content piece",
			"Cost Savings: Reduces content creation costs by 60%",
		},
		BestPractices: []string{
			"Product Descriptions: Use professional tone for e-commerce, playful for lifestyle",
			"Social Posts: Mix tones based on platform - professional for LinkedIn, playful for Instagram",
			"Email Campaigns: Match tone to audience - luxury for premium customers, casual for general audience",
			"A/B Testing: Test different tones to find what works best for your audience",
			"Consistency: Maintain consistent tone across all content for the same product",
		},
	}
}

func (uc *AnalyticsUseCase) About() domain.About {
	return domain.About{
		Name:    "BrandBoost",
		Tagline: "AI-powered marketing content generator",
		Description: "BrandBoost helps e-commerce businesses create consistent, high-quality " +
			"marketing content across all channels.",
		Features: []string{
			"Multi-format Content: product descriptions, social posts and email content",
			"Multiple Tones: Professional, Playful, Luxury and Casual",
			"Bilingual Support: English and French content generation",
			fmt.Sprintf("AI-Powered: %s via %s, with pre-written fallback copy", uc.model, uc.provider),
			"Analytics: track time saved, cost saved and ROI",
		},
		HowItWorks: []string{
			"Select a product from your catalog",
			"Choose content type, tone and language",
			"Generate content with AI",
			"Edit and export as needed",
		},
		Impact: []string{
			"Time Savings: 25 minutes per content piece",
			fmt.Sprintf("Cost Reduction: %.2f saved per piece", domain.CostSavedPerGeneration),
			"Consistency: maintain brand voice across all channels",
			"Scalability: generate unlimited content variations",
		},
		Provider: uc.provider,
		Model:    uc.model,
		Disclaimer: "This is a demonstration project using a synthetic product catalog. " +
			"Savings figures are policy assumptions, not measurements.",
	}
}
