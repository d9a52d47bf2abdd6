package engine

import (
	"math"
	"time"

	"github.com/creditlens/risk-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Risk factor weights. They sum to 100 so each weight is also the maximum
// contribution of its factor to the final score.
const (
	weightCreditScore    = 35.0
	weightPaymentHistory = 35.0
	weightUtilization    = 15.0
	weightIncome         = 10.0
	weightAccountAge     = 3.0
	weightFraudAlerts    = 2.0
)

// Params holds the tunable constants of the analytics engine. The defaults
// reproduce the historical dashboard behaviour; none of them are principled
// statistics, they are knobs.
type Params struct {
	// RevenueYield is the assumed revenue as a fraction of customer income.
	RevenueYield float64
	// AnomalyThreshold is the anomaly score above which a customer is
	// flagged as a fraud suspect.
	AnomalyThreshold float64
	// RecentWindow bounds the "recently joined" cohort used for growth
	// rates. Six 30-day months, not calendar-aware.
	RecentWindow time.Duration
	// HighRiskAlertRatio is the share of high-risk customers above which a
	// risk management recommendation is raised.
	HighRiskAlertRatio float64
	// LowUtilization is the utilization rate below which a customer counts
	// as under-engaged.
	LowUtilization float64
	// LowUtilizationAlertRatio is the share of under-engaged customers
	// above which an engagement recommendation is raised.
	LowUtilizationAlertRatio float64
}

// DefaultParams returns the standard engine parameters.
func DefaultParams() Params {
	return Params{
		RevenueYield:             0.15,
		AnomalyThreshold:         0.7,
		RecentWindow:             180 * 24 * time.Hour,
		HighRiskAlertRatio:       0.15,
		LowUtilization:           20,
		LowUtilizationAlertRatio: 0.30,
	}
}

// Engine computes risk scores, segments and portfolio aggregates over a
// customer list. It carries no dataset state: every method is a pure
// function of its arguments, the params and the clock.
type Engine struct {
	params Params
	log    *logrus.Logger
	now    func() time.Time
}

// NewEngine initializes an engine with the given parameters.
func NewEngine(params Params, log *logrus.Logger) *Engine {
	return &Engine{params: params, log: log, now: time.Now}
}

// Params returns the engine parameters.
func (e *Engine) Params() Params {
	return e.params
}

// ExtractRiskFactors pulls the weighted scoring inputs out of a customer.
func ExtractRiskFactors(c *models.Customer) models.RiskFactors {
	f := models.RiskFactors{
		CreditScore:      c.CreditScore,
		PaymentHistory:   c.PaymentHistory,
		UtilizationRate:  c.UtilizationRate,
		Income:           c.Income,
		AccountAge:       c.AccountAge,
		FraudAlerts:      c.FraudAlerts,
		TransactionCount: c.TransactionCount,
	}
	if c.AccountAge > 0 {
		f.TransactionPattern = float64(c.TransactionCount) / float64(c.AccountAge)
	}
	return f
}

// ComputeRiskScore calculates the 0-100 risk score for a customer from
// six weighted factors. Each normalized term is clamped at zero so no
// factor can reduce the score, and the sum is capped at 100.
func (e *Engine) ComputeRiskScore(c *models.Customer) int {
	f := ExtractRiskFactors(c)

	score := clampLow((850-f.CreditScore)/450) * weightCreditScore
	score += clampLow((100-f.PaymentHistory)/100) * weightPaymentHistory
	if f.UtilizationRate > 30 {
		score += clampLow((f.UtilizationRate-30)/70) * weightUtilization
	}
	score += clampLow((500000-f.Income)/500000) * weightIncome
	score += clampLow((60-float64(f.AccountAge))/60) * weightAccountAge
	score += math.Min(1, float64(f.FraudAlerts)/5) * weightFraudAlerts

	return int(math.Round(math.Min(100, score)))
}

// RiskCategory maps a risk score to its category. 30 and 70 belong to the
// upper bucket.
func RiskCategory(score int) string {
	switch {
	case score < 30:
		return models.RiskLow
	case score < 70:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// AssignSegment places a customer in a segment by first-match over ordered
// income and risk thresholds. The risk score must already be computed.
func AssignSegment(c *models.Customer) string {
	switch {
	case c.Income > 600000 && c.RiskScore < 40:
		return models.SegmentPremium
	case c.Income > 400000 && c.RiskScore < 60:
		return models.SegmentGold
	case c.Income > 250000 && c.RiskScore < 80:
		return models.SegmentSilver
	default:
		return models.SegmentBasic
	}
}

// ProcessCustomers returns a new list with the derived fields populated for
// every customer: risk score, then category, then segment, in that order.
// Input records are assumed normalized; the engine does not validate.
func (e *Engine) ProcessCustomers(customers []models.Customer) []models.Customer {
	processed := make([]models.Customer, len(customers))
	for i := range customers {
		c := customers[i]
		c.RiskScore = e.ComputeRiskScore(&c)
		c.RiskCategory = RiskCategory(c.RiskScore)
		c.Segment = AssignSegment(&c)
		processed[i] = c
	}
	e.log.Debugf("Processed %d customers", len(processed))
	return processed
}

func clampLow(v float64) float64 {
	return math.Max(0, v)
}
