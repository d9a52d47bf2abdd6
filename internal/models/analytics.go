package models

// SegmentAnalysis represents the aggregate view of one customer segment.
// Rebuilt from the full customer list on every recomputation.
type SegmentAnalysis struct {
	Segment      string  `json:"segment"`
	Count        int     `json:"count"`
	AvgIncome    int     `json:"avg_income"`     // rounded to nearest integer
	AvgRiskScore int     `json:"avg_risk_score"` // rounded to nearest integer
	Revenue      float64 `json:"revenue"`        // sum of income * revenue yield
	GrowthRate   int     `json:"growth_rate"`    // recent/old * 100, can exceed 100
	Percentage   float64 `json:"percentage"`     // share of portfolio, as a fraction
}

// RiskBucket represents one of the three fixed risk distribution buckets.
type RiskBucket struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // share of portfolio, 0-100
	Revenue    float64 `json:"revenue"`
}

// Recommendation priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Recommendation represents a rule-generated business recommendation.
// Ordering is rule-evaluation order, not significance.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// MonthlyTrend represents the cohort of customers who joined in one month.
type MonthlyTrend struct {
	Month        string  `json:"month"` // YYYY-MM
	NewCustomers int     `json:"new_customers"`
	Revenue      float64 `json:"revenue"`
	AvgRiskScore int     `json:"avg_risk_score"`
}

// Overview represents the dashboard headline metrics.
type Overview struct {
	TotalCustomers    int     `json:"total_customers"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgRiskScore      int     `json:"avg_risk_score"`
	HighRiskCount     int     `json:"high_risk_count"`
	FraudSuspectCount int     `json:"fraud_suspect_count"`
}
