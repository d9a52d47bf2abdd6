package engine

import (
	"testing"
	"time"

	"github.com/creditlens/risk-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAnalyzeSegments_EmptyInput(t *testing.T) {
	e := testEngine()
	assert.Empty(t, e.AnalyzeSegments(nil))
	assert.Empty(t, e.AnalyzeSegments([]models.Customer{}))
}

func TestAnalyzeSegments_PercentagesPartition(t *testing.T) {
	e := testEngine()
	now := time.Now()

	customers := []models.Customer{
		{Segment: models.SegmentPremium, Income: 700000, RiskScore: 20, JoinDate: now},
		{Segment: models.SegmentGold, Income: 450000, RiskScore: 50, JoinDate: now},
		{Segment: models.SegmentGold, Income: 500000, RiskScore: 40, JoinDate: now},
		{Segment: models.SegmentSilver, Income: 300000, RiskScore: 60, JoinDate: now},
		{Segment: models.SegmentBasic, Income: 150000, RiskScore: 80, JoinDate: now},
		{Segment: models.SegmentBasic, Income: 120000, RiskScore: 85, JoinDate: now},
		{Segment: models.SegmentBasic, Income: 90000, RiskScore: 90, JoinDate: now},
	}

	analyses := e.AnalyzeSegments(customers)
	require.Len(t, analyses, 4)

	var sum float64
	for _, a := range analyses {
		sum += a.Percentage
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestAnalyzeSegments_Aggregates(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	e.now = fixedClock(now)

	customers := []models.Customer{
		{Segment: models.SegmentGold, Income: 400000, RiskScore: 41, JoinDate: now.AddDate(0, -1, 0)},
		{Segment: models.SegmentGold, Income: 500000, RiskScore: 44, JoinDate: now.AddDate(-2, 0, 0)},
	}

	analyses := e.AnalyzeSegments(customers)
	require.Len(t, analyses, 1)
	gold := analyses[0]

	assert.Equal(t, models.SegmentGold, gold.Segment)
	assert.Equal(t, 2, gold.Count)
	assert.Equal(t, 450000, gold.AvgIncome)
	assert.Equal(t, 43, gold.AvgRiskScore) // round(42.5)
	assert.InDelta(t, 135000, gold.Revenue, 1e-6)
	// 1 recent, 1 old -> 100
	assert.Equal(t, 100, gold.GrowthRate)
	assert.InDelta(t, 1.0, gold.Percentage, 1e-9)
}

func TestAnalyzeSegments_GrowthRate(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	e.now = fixedClock(now)

	recent := now.AddDate(0, 0, -30)
	old := now.AddDate(0, 0, -400)

	t.Run("all recent yields 100", func(t *testing.T) {
		customers := []models.Customer{
			{Segment: models.SegmentBasic, JoinDate: recent},
			{Segment: models.SegmentBasic, JoinDate: recent},
		}
		analyses := e.AnalyzeSegments(customers)
		require.Len(t, analyses, 1)
		assert.Equal(t, 100, analyses[0].GrowthRate)
	})

	t.Run("growth can exceed 100", func(t *testing.T) {
		customers := []models.Customer{
			{Segment: models.SegmentBasic, JoinDate: recent},
			{Segment: models.SegmentBasic, JoinDate: recent},
			{Segment: models.SegmentBasic, JoinDate: recent},
			{Segment: models.SegmentBasic, JoinDate: old},
		}
		analyses := e.AnalyzeSegments(customers)
		require.Len(t, analyses, 1)
		assert.Equal(t, 300, analyses[0].GrowthRate)
	})
}

func TestRiskDistribution(t *testing.T) {
	e := testEngine()

	customers := []models.Customer{
		{RiskCategory: models.RiskLow, Income: 100000},
		{RiskCategory: models.RiskLow, Income: 200000},
		{RiskCategory: models.RiskMedium, Income: 100000},
		{RiskCategory: models.RiskHigh, Income: 100000},
	}

	buckets := e.RiskDistribution(customers)
	require.Len(t, buckets, 3)

	assert.Equal(t, models.RiskLow, buckets[0].Category)
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 50.0, buckets[0].Percentage, 1e-9)
	assert.InDelta(t, 45000, buckets[0].Revenue, 1e-6)

	assert.Equal(t, models.RiskMedium, buckets[1].Category)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, models.RiskHigh, buckets[2].Category)
	assert.Equal(t, 1, buckets[2].Count)
}

func TestRiskDistribution_EmptyInput(t *testing.T) {
	e := testEngine()
	assert.Empty(t, e.RiskDistribution(nil))
}

func TestMonthlyTrends_SortedAscending(t *testing.T) {
	e := testEngine()

	date := func(y int, m time.Month) time.Time {
		return time.Date(y, m, 15, 0, 0, 0, 0, time.UTC)
	}
	customers := []models.Customer{
		{Income: 100000, RiskScore: 40, JoinDate: date(2026, time.March)},
		{Income: 200000, RiskScore: 60, JoinDate: date(2025, time.November)},
		{Income: 300000, RiskScore: 20, JoinDate: date(2026, time.January)},
		{Income: 400000, RiskScore: 30, JoinDate: date(2026, time.March)},
	}

	trends := e.MonthlyTrends(customers)
	require.Len(t, trends, 3)

	assert.Equal(t, "2025-11", trends[0].Month)
	assert.Equal(t, "2026-01", trends[1].Month)
	assert.Equal(t, "2026-03", trends[2].Month)

	march := trends[2]
	assert.Equal(t, 2, march.NewCustomers)
	assert.InDelta(t, 75000, march.Revenue, 1e-6)
	assert.Equal(t, 35, march.AvgRiskScore)
}

func TestMonthlyTrends_EmptyInput(t *testing.T) {
	e := testEngine()
	assert.Empty(t, e.MonthlyTrends(nil))
}

func TestOverview(t *testing.T) {
	e := testEngine()

	customers := []models.Customer{
		{Income: 100000, RiskScore: 20, RiskCategory: models.RiskLow, AvgTransactionAmount: 5000, TransactionCount: 20},
		{Income: 120000, RiskScore: 80, RiskCategory: models.RiskHigh, AvgTransactionAmount: 5200, TransactionCount: 22},
	}

	o := e.Overview(customers)
	assert.Equal(t, 2, o.TotalCustomers)
	assert.InDelta(t, 33000, o.TotalRevenue, 1e-6)
	assert.Equal(t, 50, o.AvgRiskScore)
	assert.Equal(t, 1, o.HighRiskCount)
	assert.Equal(t, 0, o.FraudSuspectCount)
}

func TestOverview_EmptyInput(t *testing.T) {
	e := testEngine()
	o := e.Overview(nil)
	assert.Equal(t, models.Overview{}, o)
}
