package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

func newReportService() ReportService {
	return NewReportService(store.New(), notify.New(notify.DefaultTTL))
}

func TestReportTotalsConsistentWithDailySeries(t *testing.T) {
	svc := newReportService()

	data, err := svc.Report(agencyUser, "1")
	require.NoError(t, err)
	require.Len(t, data.DailyData, 30)

	var spend float64
	var leads int
	for _, d := range data.DailyData {
		spend += d.Spend
		leads += d.Conversions
		assert.Greater(t, d.Spend, 0.0)
		assert.Greater(t, d.Conversions, 0)
		assert.GreaterOrEqual(t, d.Clicks, d.Conversions)
		assert.GreaterOrEqual(t, d.Impressions, d.Clicks)
	}
	assert.InDelta(t, spend, data.Totals.Spend, 1.0)
	assert.Equal(t, leads, data.Totals.Leads)
	if leads > 0 {
		assert.InDelta(t, spend/float64(leads), data.Totals.CPL, 0.05)
	}
}

func TestReportIsDeterministicPerClient(t *testing.T) {
	svc := newReportService()

	a, err := svc.Report(agencyUser, "1")
	require.NoError(t, err)
	b, err := svc.Report(agencyUser, "1")
	require.NoError(t, err)
	assert.Equal(t, a.DailyData, b.DailyData)

	other, err := svc.Report(agencyUser, "3")
	require.NoError(t, err)
	assert.NotEqual(t, a.DailyData, other.DailyData)
}

func TestReportScopedToOwnCompany(t *testing.T) {
	svc := newReportService()

	_, err := svc.Report(clientUser, "2")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Report(clientUser, "1")
	assert.NoError(t, err)

	_, err = svc.Report(agencyUser, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWeeklyReportRoundTrips(t *testing.T) {
	svc := newReportService()

	saved, err := svc.SaveWeeklyReport("1", models.WeeklyReport{
		Wins:      []string{"CTR up 30%"},
		NextSteps: []string{"Scale budget"},
	})
	require.NoError(t, err)
	assert.False(t, saved.LastUpdated.IsZero())

	data, err := svc.Report(agencyUser, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"CTR up 30%"}, data.WeeklyReport.Wins)
}

func TestWeeklyReportDefaultsWhenUnset(t *testing.T) {
	svc := newReportService()

	data, err := svc.Report(agencyUser, "3")
	require.NoError(t, err)
	assert.NotEmpty(t, data.WeeklyReport.Wins)
	assert.True(t, data.WeeklyReport.LastUpdated.IsZero())
}
