// Package scoring maps probability, frequency, and severity ratings to a
// multiplicative risk score and the labels derived from it.
//
// Every function in this package is pure and total: any finite input yields a
// result, and bounds checking is left to callers.
package scoring

// Financial impact bracket labels, highest first.
const (
	ImpactOver20M = ">20M"
	Impact10To20M = "10–20M"
	Impact5To10M  = "5–10M"
	Impact1To5M   = "1–5M"
	ImpactUpTo1M  = "0–1M"
)

// Risk degree labels, highest first.
const (
	DegreeVeryHigh = "Very High"
	DegreeHigh     = "High"
	DegreeMedium   = "Medium"
	DegreeLow      = "Low"
	DegreeVeryLow  = "Very Low"
)

// Bracket is one step of the score classification table. A score belongs to
// the first bracket whose Above threshold it strictly exceeds; the last
// bracket has no lower bound.
type Bracket struct {
	Above         float64
	Bounded       bool
	Impact        string
	Degree        string
	DisplayImpact string
	DisplayDegree string
}

var brackets = []Bracket{
	{Above: 400, Bounded: true, Impact: ImpactOver20M, Degree: DegreeVeryHigh, DisplayImpact: ">20M Dolar", DisplayDegree: "Çok Yüksek"},
	{Above: 200, Bounded: true, Impact: Impact10To20M, Degree: DegreeHigh, DisplayImpact: "20 - 10M Dolar", DisplayDegree: "Yüksek"},
	{Above: 70, Bounded: true, Impact: Impact5To10M, Degree: DegreeMedium, DisplayImpact: "10 - 5M Dolar", DisplayDegree: "Orta"},
	{Above: 20, Bounded: true, Impact: Impact1To5M, Degree: DegreeLow, DisplayImpact: "5 - 1M Dolar", DisplayDegree: "Düşük"},
	{Impact: ImpactUpTo1M, Degree: DegreeVeryLow, DisplayImpact: "1 - 0M Dolar", DisplayDegree: "Çok Düşük"},
}

// Brackets returns the classification table ordered from the highest
// threshold to the open-ended lowest bracket.
func Brackets() []Bracket {
	out := make([]Bracket, len(brackets))
	copy(out, brackets)
	return out
}

// ComputeRiskScore returns probability × frequency × severity.
func ComputeRiskScore(probability, frequency, severity float64) float64 {
	return probability * frequency * severity
}

// Classify returns the bracket a score falls into.
func Classify(score float64) Bracket {
	for _, b := range brackets {
		if !b.Bounded || score > b.Above {
			return b
		}
	}
	return brackets[len(brackets)-1]
}

// ClassifyFinancialImpact returns the financial impact bracket label for a score.
func ClassifyFinancialImpact(score float64) string {
	return Classify(score).Impact
}

// ClassifyRiskDegree returns the qualitative risk degree for a score.
func ClassifyRiskDegree(score float64) string {
	return Classify(score).Degree
}

// Result bundles everything derived from one set of ratings.
type Result struct {
	Probability            float64 `json:"probability"`
	Frequency              float64 `json:"frequency"`
	Severity               float64 `json:"severity"`
	RiskScore              float64 `json:"risk_score"`
	RiskDegree             string  `json:"risk_degree"`
	FinancialImpact        string  `json:"financial_impact"`
	ProbabilityDescription string  `json:"probability_description,omitempty"`
	FrequencyDescription   string  `json:"frequency_description,omitempty"`
}

// Assess scores the ratings and classifies the result.
func Assess(probability, frequency, severity float64) Result {
	score := ComputeRiskScore(probability, frequency, severity)
	b := Classify(score)
	return Result{
		Probability:            probability,
		Frequency:              frequency,
		Severity:               severity,
		RiskScore:              score,
		RiskDegree:             b.Degree,
		FinancialImpact:        b.Impact,
		ProbabilityDescription: DescribeProbability(probability),
		FrequencyDescription:   DescribeFrequency(frequency),
	}
}
