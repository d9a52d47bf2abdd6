package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/creditlens/risk-dashboard/internal/config"
	"github.com/creditlens/risk-dashboard/internal/engine"
	"github.com/creditlens/risk-dashboard/internal/handler"
	"github.com/creditlens/risk-dashboard/internal/ingest"
	"github.com/creditlens/risk-dashboard/internal/notify"
	"github.com/creditlens/risk-dashboard/internal/service"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize layers
	params := engine.DefaultParams()
	params.RevenueYield = cfg.RevenueYield
	params.AnomalyThreshold = cfg.AnomalyThreshold
	eng := engine.NewEngine(params, logger)
	loader := ingest.NewLoader(logger)
	svc := service.NewService(loader, eng, logger)
	h := handler.NewHandler(svc, logger)
	sender := notify.NewSender(cfg, logger)

	// Initial dataset load; the service starts empty if the file is absent
	if _, err := svc.LoadFile(cfg.DataFile); err != nil {
		logger.Warnf("Initial data load skipped: %v", err)
	}

	// Scheduled refresh and fraud digest
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.RefreshSchedule, func() {
		if _, err := svc.LoadFile(cfg.DataFile); err != nil {
			logger.Errorf("Scheduled refresh failed: %v", err)
			return
		}
		suspects := svc.FraudSuspects()
		if len(suspects) > 0 && sender.Enabled() {
			if err := sender.SendFraudDigest(suspects); err != nil {
				logger.Errorf("Fraud digest failed: %v", err)
			}
		}
	})
	if err != nil {
		logger.Fatalf("Invalid refresh schedule %q: %v", cfg.RefreshSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/customers/upload", h.UploadCustomers).Methods("POST")
	r.HandleFunc("/customers", h.ListCustomers).Methods("GET")
	r.HandleFunc("/customers/fraud-suspects", h.FraudSuspects).Methods("GET")
	r.HandleFunc("/analytics/overview", h.Overview).Methods("GET")
	r.HandleFunc("/analytics/segments", h.Segments).Methods("GET")
	r.HandleFunc("/analytics/risk-distribution", h.RiskDistribution).Methods("GET")
	r.HandleFunc("/analytics/recommendations", h.Recommendations).Methods("GET")
	r.HandleFunc("/analytics/trends", h.Trends).Methods("GET")
	r.HandleFunc("/export/portfolio.xml", h.ExportPortfolio).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
