package engine

import (
	"math"

	"github.com/creditlens/risk-dashboard/internal/models"
)

// Deviation weights for the anomaly score combination.
const (
	anomalyWeightIncome = 0.3
	anomalyWeightAmount = 0.4
	anomalyWeightCount  = 0.3
)

// populationStats holds the population means used for deviation scoring.
type populationStats struct {
	meanIncome    float64
	meanTxnAmount float64
	meanTxnCount  float64
}

func computePopulationStats(customers []models.Customer) populationStats {
	var s populationStats
	if len(customers) == 0 {
		return s
	}
	for _, c := range customers {
		s.meanIncome += c.Income
		s.meanTxnAmount += c.AvgTransactionAmount
		s.meanTxnCount += float64(c.TransactionCount)
	}
	n := float64(len(customers))
	s.meanIncome /= n
	s.meanTxnAmount /= n
	s.meanTxnCount /= n
	return s
}

// deviation measures how far a value sits from the population mean,
// normalized by half the mean. A zero mean contributes nothing rather
// than propagating NaN.
func deviation(value, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return math.Abs(value-mean) / (mean * 0.5)
}

// AnomalyScore rates how unusual a customer looks against the population,
// clamped to [0, 1]. Higher means more suspicious.
func (e *Engine) AnomalyScore(c *models.Customer, customers []models.Customer) float64 {
	stats := computePopulationStats(customers)
	return anomalyScore(c, stats)
}

func anomalyScore(c *models.Customer, stats populationStats) float64 {
	incomeDev := deviation(c.Income, stats.meanIncome)
	amountDev := deviation(c.AvgTransactionAmount, stats.meanTxnAmount)
	countDev := deviation(float64(c.TransactionCount), stats.meanTxnCount)

	combined := (incomeDev*anomalyWeightIncome +
		amountDev*anomalyWeightAmount +
		countDev*anomalyWeightCount) / 3
	return math.Min(1, combined)
}

// DetectFraudSuspects returns the customers whose anomaly score exceeds
// the configured threshold.
func (e *Engine) DetectFraudSuspects(customers []models.Customer) []models.Customer {
	suspects := []models.Customer{}
	if len(customers) == 0 {
		return suspects
	}

	stats := computePopulationStats(customers)
	for i := range customers {
		if anomalyScore(&customers[i], stats) > e.params.AnomalyThreshold {
			suspects = append(suspects, customers[i])
		}
	}
	return suspects
}
