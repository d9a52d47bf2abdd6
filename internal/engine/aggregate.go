package engine

import (
	"math"
	"sort"

	"github.com/creditlens/risk-dashboard/internal/models"
)

// segmentOrder fixes the reporting order of segment buckets.
var segmentOrder = []string{
	models.SegmentPremium,
	models.SegmentGold,
	models.SegmentSilver,
	models.SegmentBasic,
}

// riskOrder fixes the reporting order of risk distribution buckets.
var riskOrder = []string{models.RiskLow, models.RiskMedium, models.RiskHigh}

// AnalyzeSegments partitions the customers into segment buckets and
// computes the aggregate view of each non-empty bucket. Empty buckets are
// dropped from the result.
func (e *Engine) AnalyzeSegments(customers []models.Customer) []models.SegmentAnalysis {
	if len(customers) == 0 {
		return []models.SegmentAnalysis{}
	}

	buckets := make(map[string][]models.Customer)
	for _, c := range customers {
		buckets[c.Segment] = append(buckets[c.Segment], c)
	}

	cutoff := e.now().Add(-e.params.RecentWindow)
	total := len(customers)

	analyses := make([]models.SegmentAnalysis, 0, len(buckets))
	for _, segment := range segmentOrder {
		members := buckets[segment]
		if len(members) == 0 {
			continue
		}

		var incomeSum, scoreSum, revenue float64
		recent := 0
		for _, m := range members {
			incomeSum += m.Income
			scoreSum += float64(m.RiskScore)
			revenue += m.Income * e.params.RevenueYield
			if m.JoinDate.After(cutoff) {
				recent++
			}
		}

		count := len(members)
		old := count - recent
		growth := 100
		if old > 0 {
			growth = int(math.Round(float64(recent) / float64(old) * 100))
		}

		analyses = append(analyses, models.SegmentAnalysis{
			Segment:      segment,
			Count:        count,
			AvgIncome:    int(math.Round(incomeSum / float64(count))),
			AvgRiskScore: int(math.Round(scoreSum / float64(count))),
			Revenue:      revenue,
			GrowthRate:   growth,
			Percentage:   float64(count) / float64(total),
		})
	}
	return analyses
}

// RiskDistribution counts customers into the three fixed risk buckets.
// All buckets appear in the result, including empty ones.
func (e *Engine) RiskDistribution(customers []models.Customer) []models.RiskBucket {
	if len(customers) == 0 {
		return []models.RiskBucket{}
	}

	counts := make(map[string]int, 3)
	revenues := make(map[string]float64, 3)
	for _, c := range customers {
		counts[c.RiskCategory]++
		revenues[c.RiskCategory] += c.Income * e.params.RevenueYield
	}

	total := float64(len(customers))
	buckets := make([]models.RiskBucket, 0, 3)
	for _, category := range riskOrder {
		buckets = append(buckets, models.RiskBucket{
			Category:   category,
			Count:      counts[category],
			Percentage: float64(counts[category]) / total * 100,
			Revenue:    revenues[category],
		})
	}
	return buckets
}

// MonthlyTrends groups customers by join month and reports each cohort's
// size, estimated revenue and average risk score, sorted ascending by
// month key. The YYYY-MM key sorts lexicographically in date order.
func (e *Engine) MonthlyTrends(customers []models.Customer) []models.MonthlyTrend {
	if len(customers) == 0 {
		return []models.MonthlyTrend{}
	}

	type cohort struct {
		count    int
		revenue  float64
		scoreSum float64
	}
	cohorts := make(map[string]*cohort)
	for _, c := range customers {
		key := c.JoinDate.Format("2006-01")
		co := cohorts[key]
		if co == nil {
			co = &cohort{}
			cohorts[key] = co
		}
		co.count++
		co.revenue += c.Income * e.params.RevenueYield
		co.scoreSum += float64(c.RiskScore)
	}

	months := make([]string, 0, len(cohorts))
	for key := range cohorts {
		months = append(months, key)
	}
	sort.Strings(months)

	trends := make([]models.MonthlyTrend, 0, len(months))
	for _, month := range months {
		co := cohorts[month]
		trends = append(trends, models.MonthlyTrend{
			Month:        month,
			NewCustomers: co.count,
			Revenue:      co.revenue,
			AvgRiskScore: int(math.Round(co.scoreSum / float64(co.count))),
		})
	}
	return trends
}

// Overview computes the dashboard headline metrics.
func (e *Engine) Overview(customers []models.Customer) models.Overview {
	o := models.Overview{TotalCustomers: len(customers)}
	if len(customers) == 0 {
		return o
	}

	var scoreSum float64
	for _, c := range customers {
		o.TotalRevenue += c.Income * e.params.RevenueYield
		scoreSum += float64(c.RiskScore)
		if c.RiskCategory == models.RiskHigh {
			o.HighRiskCount++
		}
	}
	o.AvgRiskScore = int(math.Round(scoreSum / float64(len(customers))))
	o.FraudSuspectCount = len(e.DetectFraudSuspects(customers))
	return o
}
