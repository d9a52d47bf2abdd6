package models

import "time"

// Risk categories derived from the 0-100 risk score.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Customer segments, from highest tier to lowest.
const (
	SegmentPremium = "Premium"
	SegmentGold    = "Gold"
	SegmentSilver  = "Silver"
	SegmentBasic   = "Basic"
)

// Customer represents a customer record in the portfolio.
// RiskScore, RiskCategory and Segment are derived fields: they are only
// ever written by the analytics engine, never by ingestion.
type Customer struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Age                  int       `json:"age"`
	City                 string    `json:"city"`
	State                string    `json:"state"`
	Income               float64   `json:"income"`
	CreditScore          float64   `json:"credit_score"` // 0-850
	AccountBalance       float64   `json:"account_balance"`
	PaymentHistory       float64   `json:"payment_history"`  // 0-100 %
	UtilizationRate      float64   `json:"utilization_rate"` // 0-100 %
	AccountAge           int       `json:"account_age"`      // months
	TransactionCount     int       `json:"transaction_count"`
	AvgTransactionAmount float64   `json:"avg_transaction_amount"`
	FraudAlerts          int       `json:"fraud_alerts"`
	JoinDate             time.Time `json:"join_date"`
	LastTransactionDate  time.Time `json:"last_transaction_date"`

	RiskScore    int    `json:"risk_score"`    // 0-100, engine-derived
	RiskCategory string `json:"risk_category"` // Low/Medium/High, engine-derived
	Segment      string `json:"segment"`       // Premium/Gold/Silver/Basic, engine-derived
}

// RiskFactors holds the weighted inputs extracted from a customer during
// score computation. Transient: built, consumed, discarded.
type RiskFactors struct {
	CreditScore        float64
	PaymentHistory     float64
	UtilizationRate    float64
	Income             float64
	AccountAge         int
	FraudAlerts        int
	TransactionCount   int
	TransactionPattern float64 // transactions per account month
}
