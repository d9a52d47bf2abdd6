package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/creditlens/risk-dashboard/internal/models"
)

// PortfolioXML builds the portfolio report document: headline metrics,
// segment aggregates and the risk distribution.
func PortfolioXML(overview models.Overview, segments []models.SegmentAnalysis, distribution []models.RiskBucket) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("PortfolioReport")
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))

	ov := root.CreateElement("Overview")
	ov.CreateElement("TotalCustomers").SetText(fmt.Sprintf("%d", overview.TotalCustomers))
	ov.CreateElement("TotalRevenue").SetText(fmt.Sprintf("%.2f", overview.TotalRevenue))
	ov.CreateElement("AvgRiskScore").SetText(fmt.Sprintf("%d", overview.AvgRiskScore))
	ov.CreateElement("HighRiskCount").SetText(fmt.Sprintf("%d", overview.HighRiskCount))
	ov.CreateElement("FraudSuspectCount").SetText(fmt.Sprintf("%d", overview.FraudSuspectCount))

	segs := root.CreateElement("Segments")
	for _, s := range segments {
		el := segs.CreateElement("Segment")
		el.CreateAttr("name", s.Segment)
		el.CreateElement("Count").SetText(fmt.Sprintf("%d", s.Count))
		el.CreateElement("AvgIncome").SetText(fmt.Sprintf("%d", s.AvgIncome))
		el.CreateElement("AvgRiskScore").SetText(fmt.Sprintf("%d", s.AvgRiskScore))
		el.CreateElement("Revenue").SetText(fmt.Sprintf("%.2f", s.Revenue))
		el.CreateElement("GrowthRate").SetText(fmt.Sprintf("%d", s.GrowthRate))
		el.CreateElement("Percentage").SetText(fmt.Sprintf("%.4f", s.Percentage))
	}

	dist := root.CreateElement("RiskDistribution")
	for _, b := range distribution {
		el := dist.CreateElement("Bucket")
		el.CreateAttr("category", b.Category)
		el.CreateElement("Count").SetText(fmt.Sprintf("%d", b.Count))
		el.CreateElement("Percentage").SetText(fmt.Sprintf("%.2f", b.Percentage))
		el.CreateElement("Revenue").SetText(fmt.Sprintf("%.2f", b.Revenue))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}
	return out, nil
}
