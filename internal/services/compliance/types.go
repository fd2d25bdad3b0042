package compliance

// ClauseResult is the per-clause verdict in a compliance report.
type ClauseResult struct {
	ID         int     `json:"id"`
	Text       string  `json:"text"`
	Status     string  `json:"status"`
	Confidence float64 `json:"confidence"`
	Rule       *string `json:"rule"`
	Suggestion *string `json:"suggestion"`
}

// Report is the document-level compliance analysis response.
type Report struct {
	OverallCompliance   string         `json:"overallCompliance"`
	CompliantClauses    int            `json:"compliantClauses"`
	NonCompliantClauses int            `json:"nonCompliantClauses"`
	Clauses             []ClauseResult `json:"clauses"`
	Summary             string         `json:"summary"`
}

// Clause statuses.
const (
	StatusCompliant    = "compliant"
	StatusNonCompliant = "non-compliant"
	StatusError        = "error"
)

// Rule citations assigned to analyzed clauses.
const (
	RuleGeneral = "General RBI Guidelines for Digital Lending"
	RulePenalty = "RBI/2022-23/45 - Penalty and Late Payment Guidelines"
)
