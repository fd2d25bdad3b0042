package fraud

// DetectResult is the response of the basic text fraud check: a
// zero-shot NLI pass and a spam classification pass over the document.
type DetectResult struct {
	NLIResult  interface{} `json:"nli_result"`
	SpamResult interface{} `json:"spam_result"`
}

// AdvancedResult composes the three independent sub-analyses of the
// advanced detector. Each sub-result carries its own nullable error so
// one failing tier never hides the others.
type AdvancedResult struct {
	AnomalyScore    *float64    `json:"anomaly_score"`
	IsAnomaly       *bool       `json:"is_anomaly"`
	AnomalyError    *string     `json:"anomaly_error"`
	TextFraud       interface{} `json:"text_fraud"`
	LogicValidation interface{} `json:"logic_validation"`
	Explanation     string      `json:"explanation"`
	RiskNarrative   string      `json:"risk_narrative"`
}

// FinchainResult is the response of the financial-text fraud classifier.
type FinchainResult struct {
	FraudLabel       string  `json:"fraud_label,omitempty"`
	FraudProbability float64 `json:"fraud_probability,omitempty"`
	Explanation      string  `json:"explanation,omitempty"`
	Error            string  `json:"error,omitempty"`
}

// modelError wraps a sub-model failure into a renderable JSON object.
type modelError struct {
	Error string `json:"error"`
}

// nliLabels is the fixed zero-shot label set for logic validation.
var nliLabels = []string{"fake", "contradictory", "real"}

// anomalyFields are the tabular features the anomaly model requires,
// in scoring order.
var anomalyFields = []string{"age", "income", "credit_score", "existing_loans", "loan_amount"}
