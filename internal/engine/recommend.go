package engine

import (
	"fmt"

	"github.com/creditlens/risk-dashboard/internal/models"
)

// GenerateRecommendations evaluates the business rules in fixed order over
// the portfolio. Each rule independently appends at most one
// recommendation; rules that do not fire leave no placeholder.
func (e *Engine) GenerateRecommendations(customers []models.Customer, segments []models.SegmentAnalysis) []models.Recommendation {
	recs := []models.Recommendation{}
	if len(customers) == 0 {
		return recs
	}
	total := float64(len(customers))

	highRisk := 0
	lowUtilization := 0
	for _, c := range customers {
		if c.RiskCategory == models.RiskHigh {
			highRisk++
		}
		if c.UtilizationRate < e.params.LowUtilization {
			lowUtilization++
		}
	}

	if float64(highRisk)/total > e.params.HighRiskAlertRatio {
		recs = append(recs, models.Recommendation{
			Type:     "risk_management",
			Priority: models.PriorityCritical,
			Message: fmt.Sprintf("%.1f%% of the portfolio is high risk; review credit limits and tighten approval criteria",
				float64(highRisk)/total*100),
		})
	}

	for _, seg := range segments {
		if seg.Segment == models.SegmentPremium && seg.GrowthRate > 15 {
			recs = append(recs, models.Recommendation{
				Type:     "growth_opportunity",
				Priority: models.PriorityHigh,
				Message: fmt.Sprintf("Premium segment is growing at %d%%; expand premium offerings to capture the trend",
					seg.GrowthRate),
			})
			break
		}
	}

	if float64(lowUtilization)/total > e.params.LowUtilizationAlertRatio {
		recs = append(recs, models.Recommendation{
			Type:     "engagement",
			Priority: models.PriorityMedium,
			Message: fmt.Sprintf("%d customers use less than %.0f%% of their credit; launch utilization campaigns",
				lowUtilization, e.params.LowUtilization),
		})
	}

	return recs
}
