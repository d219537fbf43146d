package services

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/patrickmn/go-cache"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

const (
	reportDays         = 30
	weeklyReportExpiry = 24 * time.Hour
)

// ReportService produces the simulated campaign analytics for a client.
// The daily series comes from a seeded generator so the same client always
// sees the same numbers within a process; the editable weekly narrative is
// held in the cache layer.
type ReportService interface {
	Report(p models.Principal, clientID string) (models.ReportData, error)
	SaveWeeklyReport(clientID string, report models.WeeklyReport) (models.WeeklyReport, error)
	Sync(clientID string) error
}

type reportService struct {
	store    *store.Store
	notifier *notify.Notifier
	weekly   *cache.Cache
	newRand  func(clientID string) *rand.Rand
}

func NewReportService(st *store.Store, n *notify.Notifier) ReportService {
	return &reportService{
		store:    st,
		notifier: n,
		weekly:   cache.New(weeklyReportExpiry, 10*time.Minute),
		newRand:  seededRand,
	}
}

// seededRand derives a stable per-client generator so repeated report
// loads do not shuffle the charts.
func seededRand(clientID string) *rand.Rand {
	var seed int64
	for _, r := range clientID {
		seed = seed*31 + int64(r)
	}
	return rand.New(rand.NewSource(seed))
}

func weeklyKey(clientID string) string { return "weekly_" + clientID }

func (s *reportService) Report(p models.Principal, clientID string) (models.ReportData, error) {
	client, ok := s.store.Clients.Get(clientID)
	if !ok {
		return models.ReportData{}, ErrNotFound
	}
	if p.IsClient() && client.Name != p.CompanyName {
		return models.ReportData{}, ErrForbidden
	}

	rng := s.newRand(clientID)
	daily := generateDailySeries(rng, reportDays)

	var totals models.ReportTotals
	var ctrSum float64
	for _, d := range daily {
		totals.Spend += d.Spend
		totals.Leads += d.Conversions
		ctrSum += d.CTR
	}
	if totals.Leads > 0 {
		totals.CPL = round2(totals.Spend / float64(totals.Leads))
	}
	totals.Spend = round2(totals.Spend)
	totals.CTR = round2(ctrSum / float64(len(daily)))

	return models.ReportData{
		Totals:       totals,
		DailyData:    daily,
		WeeklyReport: s.weeklyReport(clientID),
		Ads:          mockAds(),
	}, nil
}

// generateDailySeries walks backwards from yesterday producing one metric
// row per day. Conversions derive from spend and cost-per-lead, clicks
// from conversions, impressions from clicks, so the columns stay mutually
// consistent.
func generateDailySeries(rng *rand.Rand, days int) []models.DailyMetric {
	out := make([]models.DailyMetric, 0, days)
	start := time.Now().AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		spend := 400 + rng.Float64()*200
		cpl := 20 + rng.Float64()*15
		conversions := int(spend / cpl)
		clicks := int(float64(conversions) * (15 + rng.Float64()*10))
		impressions := int(float64(clicks) * (50 + rng.Float64()*20))

		m := models.DailyMetric{
			Date:        start.AddDate(0, 0, i).Format("2006-01-02"),
			Spend:       round2(spend),
			Conversions: conversions,
			Clicks:      clicks,
			Impressions: impressions,
			CPL:         round2(spend / float64(conversions)),
		}
		if impressions > 0 {
			m.CTR = round2(float64(clicks) / float64(impressions) * 100)
		}
		if rng.Float64() < 0.1 {
			m.Notes = "Creative refresh launched"
		}
		out = append(out, m)
	}
	return out
}

func (s *reportService) weeklyReport(clientID string) models.WeeklyReport {
	if v, ok := s.weekly.Get(weeklyKey(clientID)); ok {
		return v.(models.WeeklyReport)
	}
	return defaultWeeklyReport()
}

func defaultWeeklyReport() models.WeeklyReport {
	return models.WeeklyReport{
		Wins:      []string{"CPL dropped 12% after the new hook variation went live."},
		Problems:  []string{"iOS delivery is still limited by the tracking gap."},
		Actions:   []string{"Launched 3 new UGC creatives into the testing campaign."},
		NextSteps: []string{"Scale the winning ad set budget by 20%."},
	}
}

func (s *reportService) SaveWeeklyReport(clientID string, report models.WeeklyReport) (models.WeeklyReport, error) {
	if _, ok := s.store.Clients.Get(clientID); !ok {
		return models.WeeklyReport{}, ErrNotFound
	}
	report.LastUpdated = time.Now()
	s.weekly.Set(weeklyKey(clientID), report, cache.DefaultExpiration)
	s.notifier.Success("Weekly report saved")
	return report, nil
}

// Sync simulates pulling fresh numbers from the ad platforms.
func (s *reportService) Sync(clientID string) error {
	if _, ok := s.store.Clients.Get(clientID); !ok {
		return ErrNotFound
	}
	s.notifier.Info(fmt.Sprintf("Syncing ad platform data for client %s", clientID))
	return nil
}

func mockAds() []models.AdCreative {
	return []models.AdCreative{
		{ID: "ad1", ThumbnailURL: "https://picsum.photos/seed/ad1/400/300", Headline: "Summer Sale - 50% Off Everything", Platform: "Facebook", Type: "Image", Status: "Active", Leads: 142, CTR: 3.2, Comments: 12},
		{ID: "ad2", ThumbnailURL: "https://picsum.photos/seed/ad2/400/300", Headline: "Behind the Scenes: How We Make It", Platform: "TikTok", Type: "Video", Status: "Testing", Leads: 67, CTR: 4.8, Comments: 31},
		{ID: "ad3", ThumbnailURL: "https://picsum.photos/seed/ad3/400/300", Headline: "Free Shipping This Week Only", Platform: "Google", Type: "Image", Status: "Paused", Leads: 89, CTR: 2.1, Comments: 4},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
