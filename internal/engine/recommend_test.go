package engine

import (
	"testing"

	"github.com/creditlens/risk-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// population builds n customers with the given number of high-risk members.
// Utilization is kept above the engagement threshold so only the risk rule
// can fire.
func population(n, highRisk int) []models.Customer {
	customers := make([]models.Customer, n)
	for i := range customers {
		customers[i] = models.Customer{RiskCategory: models.RiskLow, UtilizationRate: 50}
		if i < highRisk {
			customers[i].RiskCategory = models.RiskHigh
		}
	}
	return customers
}

func TestGenerateRecommendations_HighRiskRule(t *testing.T) {
	e := testEngine()

	t.Run("fires above 15 percent", func(t *testing.T) {
		recs := e.GenerateRecommendations(population(100, 16), nil)
		require.Len(t, recs, 1)
		assert.Equal(t, "risk_management", recs[0].Type)
		assert.Equal(t, models.PriorityCritical, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "16.0%")
	})

	t.Run("silent at exactly 15 percent", func(t *testing.T) {
		recs := e.GenerateRecommendations(population(100, 15), nil)
		assert.Empty(t, recs)
	})
}

func TestGenerateRecommendations_PremiumGrowthRule(t *testing.T) {
	e := testEngine()
	customers := population(10, 0)

	t.Run("fires when premium grows past 15", func(t *testing.T) {
		segments := []models.SegmentAnalysis{
			{Segment: models.SegmentPremium, GrowthRate: 20},
		}
		recs := e.GenerateRecommendations(customers, segments)
		require.Len(t, recs, 1)
		assert.Equal(t, "growth_opportunity", recs[0].Type)
		assert.Equal(t, models.PriorityHigh, recs[0].Priority)
	})

	t.Run("silent at growth 15", func(t *testing.T) {
		segments := []models.SegmentAnalysis{
			{Segment: models.SegmentPremium, GrowthRate: 15},
		}
		assert.Empty(t, e.GenerateRecommendations(customers, segments))
	})

	t.Run("ignores other segments", func(t *testing.T) {
		segments := []models.SegmentAnalysis{
			{Segment: models.SegmentGold, GrowthRate: 200},
		}
		assert.Empty(t, e.GenerateRecommendations(customers, segments))
	})
}

func TestGenerateRecommendations_EngagementRule(t *testing.T) {
	e := testEngine()

	customers := make([]models.Customer, 10)
	for i := range customers {
		customers[i] = models.Customer{RiskCategory: models.RiskLow, UtilizationRate: 50}
		if i < 4 {
			customers[i].UtilizationRate = 10
		}
	}

	recs := e.GenerateRecommendations(customers, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "engagement", recs[0].Type)
	assert.Equal(t, models.PriorityMedium, recs[0].Priority)
}

func TestGenerateRecommendations_RuleOrderPreserved(t *testing.T) {
	e := testEngine()

	// All three rules fire: 20% high risk, premium growth 30, 40% low
	// utilization.
	customers := make([]models.Customer, 10)
	for i := range customers {
		customers[i] = models.Customer{RiskCategory: models.RiskLow, UtilizationRate: 50}
		if i < 2 {
			customers[i].RiskCategory = models.RiskHigh
		}
		if i >= 6 {
			customers[i].UtilizationRate = 5
		}
	}
	segments := []models.SegmentAnalysis{
		{Segment: models.SegmentPremium, GrowthRate: 30},
	}

	recs := e.GenerateRecommendations(customers, segments)
	require.Len(t, recs, 3)
	assert.Equal(t, "risk_management", recs[0].Type)
	assert.Equal(t, "growth_opportunity", recs[1].Type)
	assert.Equal(t, "engagement", recs[2].Type)
}

func TestGenerateRecommendations_EmptyInput(t *testing.T) {
	e := testEngine()
	assert.Empty(t, e.GenerateRecommendations(nil, nil))
}
