package models

import "time"

// DailyMetric is one day of simulated campaign performance.
type DailyMetric struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Conversions int     `json:"conversions"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CPL         float64 `json:"cpl"`
	CTR         float64 `json:"ctr"`
	Notes       string  `json:"notes,omitempty"`
}

type ReportTotals struct {
	Spend float64 `json:"spend"`
	Leads int     `json:"leads"`
	CPL   float64 `json:"cpl"`
	CTR   float64 `json:"ctr"`
}

// WeeklyReport is the strategist's editable narrative for one client.
type WeeklyReport struct {
	Wins         []string  `json:"wins"`
	Problems     []string  `json:"problems"`
	Actions      []string  `json:"actions"`
	NextSteps    []string  `json:"next_steps"`
	LoomVideoURL string    `json:"loom_video_url,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
}

type AdCreative struct {
	ID           string  `json:"id"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Headline     string  `json:"headline"`
	Platform     string  `json:"platform"` // Facebook|Google|TikTok
	Type         string  `json:"type"`     // Image|Video
	Status       string  `json:"status"`   // Active|Testing|Paused
	Leads        int     `json:"leads"`
	CTR          float64 `json:"ctr"`
	Comments     int     `json:"comments"`
	PreviewURL   string  `json:"preview_url,omitempty"`
}

// ReportData is the aggregated view handed to the reports screen.
type ReportData struct {
	Totals       ReportTotals  `json:"totals"`
	DailyData    []DailyMetric `json:"daily_data"`
	WeeklyReport WeeklyReport  `json:"weekly_report"`
	Ads          []AdCreative  `json:"ads"`
}
