package domain

import (
	"math"
	"strings"
	"time"
)

// User-facing validation messages.
const (
	MsgSelectionRequired = "Lütfen departman, risk ve değer zinciri adımı seçin"
	MsgRatingsRequired   = "Lütfen tüm değerleri girin"
	MsgNothingToExport   = "Dışa aktarılacak değerlendirme bulunamadı"
)

// Rating input domains. They are advertised to the user as input hints; the
// scoring engine itself accepts any finite value.
const (
	MinRating      = 0.1
	MaxProbability = 10
	MaxFrequency   = 10
	MaxSeverity    = 100
)

// Assessment is one saved risk assessment. It is immutable once created.
type Assessment struct {
	ID              string    `json:"id"`
	Department      string    `json:"department"`
	Risk            string    `json:"risk"`
	ValueChainStep  string    `json:"valueChainStep"`
	Probability     float64   `json:"probability"`
	Frequency       float64   `json:"frequency"`
	Severity        float64   `json:"severity"`
	RiskScore       float64   `json:"riskScore"`
	RiskDegree      string    `json:"riskDegree"`
	FinancialImpact string    `json:"financialImpact"`
	Date            time.Time `json:"date"`
}

// DateString formats the creation timestamp as ISO 8601 with millisecond
// precision in UTC.
func (a Assessment) DateString() string {
	return a.Date.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// CreateAssessmentRequest holds the user's selections and ratings.
type CreateAssessmentRequest struct {
	Department     string  `json:"department" yaml:"department"`
	Risk           string  `json:"risk" yaml:"risk"`
	ValueChainStep string  `json:"valueChainStep" yaml:"valueChainStep"`
	Probability    float64 `json:"probability" yaml:"probability"`
	Frequency      float64 `json:"frequency" yaml:"frequency"`
	Severity       float64 `json:"severity" yaml:"severity"`
}

// Validate checks that all three selections are present and that all three
// ratings are present and non-zero. Selections are checked first.
func (r *CreateAssessmentRequest) Validate() error {
	r.Department = strings.TrimSpace(r.Department)
	r.Risk = strings.TrimSpace(r.Risk)
	r.ValueChainStep = strings.TrimSpace(r.ValueChainStep)
	if r.Department == "" || r.Risk == "" || r.ValueChainStep == "" {
		return ErrValidation(MsgSelectionRequired)
	}
	if !usableRating(r.Probability) || !usableRating(r.Frequency) || !usableRating(r.Severity) {
		return ErrValidation(MsgRatingsRequired)
	}
	return nil
}

// usableRating rejects zero as well as values that did not parse to a finite
// number.
func usableRating(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
