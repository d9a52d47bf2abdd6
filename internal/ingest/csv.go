package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creditlens/risk-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Defaults applied when a column is absent from the CSV header.
const (
	defaultAge              = 30
	defaultIncome           = 300000
	defaultCreditScore      = 650
	defaultBalance          = 50000
	defaultTransactionCount = 25
	defaultAvgTransaction   = 5000
	defaultPaymentHistory   = 85
	defaultUtilization      = 45
	defaultAccountAge       = 24
	defaultCity             = "Mumbai"
	defaultState            = "Maharashtra"
	defaultName             = "Unknown"
)

const dateLayout = "2006-01-02"

// Canonical field keys a header column can map to.
const (
	fieldID              = "id"
	fieldName            = "name"
	fieldAge             = "age"
	fieldIncome          = "income"
	fieldCreditScore     = "credit_score"
	fieldBalance         = "balance"
	fieldTransactions    = "transactions"
	fieldAvgTransaction  = "avg_transaction"
	fieldCity            = "city"
	fieldState           = "state"
	fieldJoinDate        = "join_date"
	fieldLastTransaction = "last_transaction"
	fieldFraudAlerts     = "fraud_alerts"
	fieldPaymentHistory  = "payment_history"
	fieldUtilization     = "utilization"
	fieldAccountAge      = "account_age"
)

// headerRules map header substrings to canonical fields. Order matters:
// the more specific substrings come first so "avg_transaction_amount"
// does not land on the transaction count field, and "account_age" does
// not land on the age field.
var headerRules = []struct {
	substr string
	field  string
}{
	{"avg_transaction", fieldAvgTransaction},
	{"last_transaction", fieldLastTransaction},
	{"join", fieldJoinDate},
	{"fraud", fieldFraudAlerts},
	{"payment", fieldPaymentHistory},
	{"utilization", fieldUtilization},
	{"account_age", fieldAccountAge},
	{"credit", fieldCreditScore},
	{"income", fieldIncome},
	{"balance", fieldBalance},
	{"transaction", fieldTransactions},
	{"age", fieldAge},
	{"city", fieldCity},
	{"state", fieldState},
	{"name", fieldName},
	{"id", fieldID},
}

// Loader parses plain-text CSV files of customer records. The format is
// comma-separated with a required header row and no quoting or escaping.
type Loader struct {
	log *logrus.Logger
	now func() time.Time
}

// NewLoader initializes a CSV loader.
func NewLoader(log *logrus.Logger) *Loader {
	return &Loader{log: log, now: time.Now}
}

// LoadFile reads customer records from a CSV file on disk.
func (l *Loader) LoadFile(path string) ([]models.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads customer records from CSV data. Rows that fail to parse are
// dropped with a warning; partial success is the contract.
func (l *Loader) Load(r io.Reader) ([]models.Customer, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		return nil, fmt.Errorf("CSV data is empty, header row required")
	}
	columns := mapHeader(strings.Split(scanner.Text(), ","))

	var customers []models.Customer
	line := 1
	for scanner.Scan() {
		line++
		row := scanner.Text()
		if strings.TrimSpace(row) == "" {
			continue
		}
		customer, err := l.parseRow(strings.Split(row, ","), columns)
		if err != nil {
			l.log.Warnf("Dropping row %d: %v", line, err)
			continue
		}
		customers = append(customers, customer)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	l.log.Infof("Loaded %d customers from CSV", len(customers))
	return customers, nil
}

// mapHeader maps each canonical field to its column index, matching header
// names case-insensitively by substring.
func mapHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		for _, rule := range headerRules {
			if strings.Contains(name, rule.substr) {
				if _, taken := columns[rule.field]; !taken {
					columns[rule.field] = i
				}
				break
			}
		}
	}
	return columns
}

func (l *Loader) parseRow(fields []string, columns map[string]int) (models.Customer, error) {
	row := rowReader{fields: fields, columns: columns, now: l.now()}

	c := models.Customer{
		ID:                   row.str(fieldID, ""),
		Name:                 row.str(fieldName, defaultName),
		City:                 row.str(fieldCity, defaultCity),
		State:                row.str(fieldState, defaultState),
		Age:                  row.intVal(fieldAge, defaultAge),
		Income:               row.floatVal(fieldIncome, defaultIncome),
		CreditScore:          row.floatVal(fieldCreditScore, defaultCreditScore),
		AccountBalance:       row.floatVal(fieldBalance, defaultBalance),
		TransactionCount:     row.intVal(fieldTransactions, defaultTransactionCount),
		AvgTransactionAmount: row.floatVal(fieldAvgTransaction, defaultAvgTransaction),
		PaymentHistory:       row.floatVal(fieldPaymentHistory, defaultPaymentHistory),
		UtilizationRate:      row.floatVal(fieldUtilization, defaultUtilization),
		AccountAge:           row.intVal(fieldAccountAge, defaultAccountAge),
		FraudAlerts:          row.intVal(fieldFraudAlerts, 0),
		JoinDate:             row.dateVal(fieldJoinDate),
		LastTransactionDate:  row.dateVal(fieldLastTransaction),
	}
	if row.err != nil {
		return models.Customer{}, row.err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return c, nil
}

// rowReader reads typed values out of a split CSV row, remembering the
// first parse error it hits.
type rowReader struct {
	fields  []string
	columns map[string]int
	now     time.Time
	err     error
}

func (r *rowReader) raw(field string) (string, bool) {
	idx, ok := r.columns[field]
	if !ok || idx >= len(r.fields) {
		return "", false
	}
	return strings.TrimSpace(r.fields[idx]), true
}

func (r *rowReader) str(field, fallback string) string {
	if v, ok := r.raw(field); ok && v != "" {
		return v
	}
	return fallback
}

func (r *rowReader) intVal(field string, fallback int) int {
	v, ok := r.raw(field)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("invalid %s value %q", field, v)
		}
		return fallback
	}
	return n
}

func (r *rowReader) floatVal(field string, fallback float64) float64 {
	v, ok := r.raw(field)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("invalid %s value %q", field, v)
		}
		return fallback
	}
	return n
}

func (r *rowReader) dateVal(field string) time.Time {
	v, ok := r.raw(field)
	if !ok || v == "" {
		return r.now
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("invalid %s value %q", field, v)
		}
		return r.now
	}
	return t
}
