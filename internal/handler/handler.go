package handler

import (
	"encoding/json"
	"net/http"

	"github.com/creditlens/risk-dashboard/internal/export"
	"github.com/creditlens/risk-dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

// Handler exposes the analytics service over HTTP.
type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

// NewHandler initializes a new handler.
func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"})
}

// UploadCustomers ingests a CSV request body and recomputes the portfolio.
func (h *Handler) UploadCustomers(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	count, err := h.svc.Load(r.Body)
	if err != nil {
		h.log.Errorf("Upload failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, map[string]int{"customers_loaded": count})
}

// ListCustomers returns the processed customer list.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Customers())
}

// FraudSuspects returns customers flagged by anomaly detection.
func (h *Handler) FraudSuspects(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.FraudSuspects())
}

// Overview returns the dashboard headline metrics.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Overview())
}

// Segments returns the per-segment aggregates.
func (h *Handler) Segments(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Segments())
}

// RiskDistribution returns the three fixed risk buckets.
func (h *Handler) RiskDistribution(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.RiskDistribution())
}

// Recommendations returns the rule-generated recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Recommendations())
}

// Trends returns the monthly join cohorts.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Trends())
}

// ExportPortfolio returns the portfolio report as an XML document.
func (h *Handler) ExportPortfolio(w http.ResponseWriter, r *http.Request) {
	report, err := export.PortfolioXML(h.svc.Overview(), h.svc.Segments(), h.svc.RiskDistribution())
	if err != nil {
		h.log.Errorf("Export failed: %v", err)
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Write(report)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
