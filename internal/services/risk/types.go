package risk

// RiskSlice is one pie-chart segment in the UI-facing risk breakdown.
type RiskSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// BasicResult is the response of the simple credit/income ratio scorer.
type BasicResult struct {
	RiskScore   float64 `json:"risk_score"`
	RiskLevel   string  `json:"risk_level"`
	Explanation string  `json:"explanation"`
}

// HeuristicResult is the response of the deterministic rule-based
// scorer, which is also the fallback tier of the remote scorers.
type HeuristicResult struct {
	RiskLevel         string      `json:"risk_level"`
	RiskScore         float64     `json:"risk_score"`
	RiskData          []RiskSlice `json:"riskData"`
	Explanation       string      `json:"explanation"`
	Factors           []string    `json:"factors"`
	MaxLoanAmount     string      `json:"maxLoanAmount"`
	InterestRateRange string      `json:"interestRateRange"`
	UsedFallback      bool        `json:"used_fallback"`
}

// TabularResult is the response of the hosted tabular risk model.
type TabularResult struct {
	RiskScore         float64     `json:"risk_score"`
	RiskLevel         string      `json:"riskLevel"`
	RiskData          []RiskSlice `json:"riskData"`
	Factors           []string    `json:"factors"`
	MaxLoanAmount     string      `json:"maxLoanAmount"`
	InterestRateRange string      `json:"interestRateRange"`
	Recommendations   []string    `json:"recommendations"`
	Explanation       string      `json:"explanation"`
	UsedFallback      bool        `json:"used_fallback"`
}

// CreditResult is the response of the hosted credit-card risk model.
type CreditResult struct {
	Creditworthy       interface{} `json:"creditworthy"`
	DefaultProbability interface{} `json:"default_probability"`
	Explanation        string      `json:"explanation"`
	UsedFallback       bool        `json:"used_fallback"`
}

// Summary carries the fields the assessment audit trail records.
type Summary struct {
	Level        string
	Score        float64
	UsedFallback bool
}

// Risk bucket colors used by the UI pie chart.
const (
	colorHigh   = "#FF4C4C"
	colorMedium = "#FFD700"
	colorLow    = "#4CAF50"
	colorRest   = "#E0E0E0"
)

func bucketColor(level string) string {
	switch level {
	case "High":
		return colorHigh
	case "Low":
		return colorLow
	default:
		return colorMedium
	}
}

// bucket maps a [0,1] risk score to its level. Thresholds are part of
// the API contract: below 0.33 is Low, below 0.66 is Medium.
func bucket(score float64) string {
	switch {
	case score < 0.33:
		return "Low"
	case score < 0.66:
		return "Medium"
	default:
		return "High"
	}
}
