package risk

import (
	"math"
	"strconv"
	"strings"

	"finguard/internal/validation"
)

// ScoreHeuristic is the deterministic rule-based loan risk scorer.
// It starts from a 0.5 baseline and applies fixed deltas per rule;
// the resulting score, buckets and loan terms are part of the API
// contract and must not drift.
func ScoreHeuristic(payload map[string]interface{}) *HeuristicResult {
	creditScore := validation.OptionalNumber(payload, "credit_score")
	salary := validation.OptionalNumber(payload, "income")
	loanAmount := validation.OptionalNumber(payload, "loan_amount")
	employment := strings.ToLower(validation.OptionalString(payload, "employment"))
	socials := strings.ToLower(validation.OptionalString(payload, "socials"))

	score := 0.5
	factors := []string{}

	if creditScore < 600 {
		score += 0.25
		factors = append(factors, "Low credit score")
	} else if creditScore > 750 {
		score -= 0.15
		factors = append(factors, "Excellent credit score")
	}
	if salary < 20000 {
		score += 0.15
		factors = append(factors, "Low salary")
	} else if salary > 100000 {
		score -= 0.10
		factors = append(factors, "High salary")
	}
	if loanAmount > 3*salary {
		score += 0.15
		factors = append(factors, "High loan amount relative to salary")
	}
	if strings.Contains(employment, "unemployed") {
		score += 0.20
		factors = append(factors, "Unemployed")
	}
	if strings.Contains(socials, "linkedin") || strings.Contains(socials, "github") {
		score -= 0.05
		factors = append(factors, "Professional social media presence")
	}

	score = clamp01(score)
	level := bucket(score)

	var maxLoan float64
	var interestRange string
	switch level {
	case "Low":
		maxLoan = math.Round(salary * 5)
		interestRange = "7% - 10%"
	case "Medium":
		maxLoan = math.Round(salary * 2.5)
		interestRange = "10% - 16%"
	default:
		maxLoan = math.Round(salary)
		interestRange = "16% - 25%"
	}

	return &HeuristicResult{
		RiskLevel: level,
		RiskScore: score,
		RiskData: []RiskSlice{
			{Name: level, Value: score * 100, Color: bucketColor(level)},
			{Name: "Safe Margin", Value: 100 - score*100, Color: colorRest},
		},
		Explanation:       "Risk computed by custom algorithm based on credit score, salary, loan amount, and social media.",
		Factors:           factors,
		MaxLoanAmount:     "₹" + formatAmount(maxLoan),
		InterestRateRange: interestRange,
		UsedFallback:      true,
	}
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}

// formatAmount renders a rounded amount with thousands separators.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
