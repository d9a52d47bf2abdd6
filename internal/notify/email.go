package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/creditlens/risk-dashboard/internal/config"
	"github.com/creditlens/risk-dashboard/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending alert emails via SMTP.
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender.
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP delivery is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != "" && s.cfg.AlertRecipient != ""
}

// SendFraudDigest sends a plain-text digest of the current fraud suspects
// to the configured alert recipient.
func (s *Sender) SendFraudDigest(suspects []models.Customer) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.AlertRecipient}
	e.Subject = fmt.Sprintf("Fraud Alert Digest: %d suspect(s) flagged", len(suspects))

	var body strings.Builder
	body.WriteString(fmt.Sprintf(
		"Anomaly detection flagged %d customer(s) on %s.\n\n",
		len(suspects), time.Now().Format("2006-01-02 15:04:05"),
	))
	for _, c := range suspects {
		body.WriteString(fmt.Sprintf(
			"- %s (%s): risk score %d, %d prior fraud alert(s), avg transaction %.2f\n",
			c.Name, c.ID, c.RiskScore, c.FraudAlerts, c.AvgTransactionAmount,
		))
	}
	body.WriteString("\nReview these accounts in the dashboard.\n\nBest regards,\nRisk Dashboard")
	e.Text = []byte(body.String())

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send fraud digest to %s: %v", s.cfg.AlertRecipient, err)
		return fmt.Errorf("failed to send fraud digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.AlertRecipient, e.Subject)
	return nil
}
