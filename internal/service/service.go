package service

import (
	"fmt"
	"io"
	"sync"

	"github.com/creditlens/risk-dashboard/internal/engine"
	"github.com/creditlens/risk-dashboard/internal/ingest"
	"github.com/creditlens/risk-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Service orchestrates ingestion and the analytics engine and holds the
// current processed customer list. The engine itself is stateless; the
// list is swapped atomically on every load so readers never observe a
// partially ingested dataset.
type Service struct {
	loader *ingest.Loader
	engine *engine.Engine
	log    *logrus.Logger

	mu        sync.RWMutex
	customers []models.Customer
}

// NewService initializes a new service.
func NewService(loader *ingest.Loader, eng *engine.Engine, log *logrus.Logger) *Service {
	return &Service{loader: loader, engine: eng, log: log}
}

// LoadFile ingests a CSV file from disk and recomputes the portfolio.
func (s *Service) LoadFile(path string) (int, error) {
	customers, err := s.loader.LoadFile(path)
	if err != nil {
		return 0, err
	}
	return s.replace(customers), nil
}

// Load ingests CSV data from a reader and recomputes the portfolio.
func (s *Service) Load(r io.Reader) (int, error) {
	customers, err := s.loader.Load(r)
	if err != nil {
		return 0, fmt.Errorf("failed to ingest CSV: %w", err)
	}
	return s.replace(customers), nil
}

func (s *Service) replace(raw []models.Customer) int {
	processed := s.engine.ProcessCustomers(raw)
	s.mu.Lock()
	s.customers = processed
	s.mu.Unlock()
	s.log.Infof("Portfolio refreshed: %d customers", len(processed))
	return len(processed)
}

// Customers returns the current processed customer list.
func (s *Service) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Segments returns the per-segment portfolio aggregates.
func (s *Service) Segments() []models.SegmentAnalysis {
	return s.engine.AnalyzeSegments(s.Customers())
}

// RiskDistribution returns the three fixed risk buckets.
func (s *Service) RiskDistribution() []models.RiskBucket {
	return s.engine.RiskDistribution(s.Customers())
}

// FraudSuspects returns the customers flagged by anomaly detection.
func (s *Service) FraudSuspects() []models.Customer {
	return s.engine.DetectFraudSuspects(s.Customers())
}

// Recommendations returns the rule-generated business recommendations.
func (s *Service) Recommendations() []models.Recommendation {
	customers := s.Customers()
	segments := s.engine.AnalyzeSegments(customers)
	return s.engine.GenerateRecommendations(customers, segments)
}

// Trends returns the monthly join cohorts, sorted ascending by month.
func (s *Service) Trends() []models.MonthlyTrend {
	return s.engine.MonthlyTrends(s.Customers())
}

// Overview returns the dashboard headline metrics.
func (s *Service) Overview() models.Overview {
	return s.engine.Overview(s.Customers())
}
