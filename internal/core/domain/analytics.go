package domain

import "time"

type TimeSavingsPoint struct {
	Date       time.Time `json:"date"`
	HoursSaved float64   `json:"hours_saved"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type ToneEffectiveness struct {
	ContentType    ContentType `json:"content_type"`
	Tone           Tone        `json:"tone"`
	EngagementRate int         `json:"engagement_rate"`
}

type Insights struct {
	Insights      []string `json:"insights"`
	BestPractices []string `json:"best_practices"`
}

type AnalyticsOverview struct {
	KPIs KPIs `json:"kpis"`
	ROI  ROI  `json:"roi"`
}

type About struct {
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	HowItWorks  []string `json:"how_it_works"`
	Impact      []string `json:"business_impact"`
	Provider    string   `json:"provider"`
	Model       string   `json:"model"`
	Disclaimer  string   `json:"disclaimer"`
}
