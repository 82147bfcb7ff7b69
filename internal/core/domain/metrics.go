package domain

import "math"

// Savings policy. These are assumptions about manual copywriting effort, not
// measurements, and are applied once per completed generation.
const (
	TimeSavedPerGenerationMinutes = 30
	CostSavedPerGeneration        = 12.0

	HourlyWriterRate    = 45.0
	AICostPerGeneration = 0.08
)

// GenerationStats are the process-lifetime counters kept by the orchestrator.
type GenerationStats struct {
	TotalGenerations      int     `json:"total_generations"`
	TotalTimeSavedMinutes int     `json:"total_time_saved_minutes"`
	TotalCostSaved        float64 `json:"total_cost_saved"`
}

// Add returns the stats after one more completed generation.
func (s GenerationStats) Add() GenerationStats {
	s.TotalGenerations++
	s.TotalTimeSavedMinutes += TimeSavedPerGenerationMinutes
	s.TotalCostSaved += CostSavedPerGeneration
	return s
}

type KPIs struct {
	TimeSavedHours       float64 `json:"time_saved_hours"`
	CostSaved            float64 `json:"cost_saved"`
	GenerationsCount     int     `json:"generations_count"`
	AvgTimePerGeneration float64 `json:"avg_time_per_generation"`
}

func CalculateKPIs(stats GenerationStats) KPIs {
	minutes := float64(stats.TotalTimeSavedMinutes)
	return KPIs{
		TimeSavedHours:       round1(minutes / 60),
		CostSaved:            stats.TotalCostSaved,
		GenerationsCount:     stats.TotalGenerations,
		AvgTimePerGeneration: round1(minutes / float64(max(stats.TotalGenerations, 1))),
	}
}

type ROI struct {
	ManualCost        float64 `json:"manual_cost"`
	AICost            float64 `json:"ai_cost"`
	NetSavings        float64 `json:"net_savings"`
	ROIPercentage     float64 `json:"roi_percentage"`
	CostPerGeneration float64 `json:"cost_per_generation"`
}

func ComputeROI(kpis KPIs) ROI {
	manual := kpis.TimeSavedHours * HourlyWriterRate
	ai := float64(kpis.GenerationsCount) * AICostPerGeneration
	net := manual - ai
	return ROI{
		ManualCost:        manual,
		AICost:            ai,
		NetSavings:        net,
		ROIPercentage:     net / math.Max(ai, 1) * 100,
		CostPerGeneration: AICostPerGeneration,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
