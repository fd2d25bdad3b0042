// Package risk implements the loan risk scoring surfaces: a simple
// ratio scorer, the deterministic rule-based scorer, and two hosted
// tabular models with the rule-based scorer as their fallback tier.
package risk

import (
	"context"
	"log"

	"finguard/internal/inference"
	"finguard/internal/validation"
)

type Service interface {
	AnalyzeBasic(payload map[string]interface{}) *BasicResult
	ScoreHeuristic(payload map[string]interface{}) *HeuristicResult
	ScoreTabular(ctx context.Context, payload map[string]interface{}) (interface{}, Summary)
	ScoreCreditModel(ctx context.Context, payload map[string]interface{}) (interface{}, Summary)
}

type service struct {
	remote TabularScorer
}

func NewService(remote TabularScorer) Service {
	if remote == nil {
		panic("remote scorer is required")
	}
	return &service{remote: remote}
}

// AnalyzeBasic scores an applicant from credit score and the
// income-to-requested-amount ratio, equally weighted.
func (s *service) AnalyzeBasic(payload map[string]interface{}) *BasicResult {
	creditScore := validation.OptionalNumber(payload, "credit_score")
	income := validation.OptionalNumber(payload, "income")
	amountRequested := validation.OptionalNumber(payload, "amount_requested")

	score := (creditScore/850)*0.5 + (income/(amountRequested+1))*0.5
	score = clamp01(score)

	var level, explanation string
	switch {
	case score > 0.7:
		level = "LOW"
		explanation = "Applicant has high credit score and/or sufficient income."
	case score > 0.4:
		level = "MEDIUM"
		explanation = "Applicant has moderate risk factors."
	default:
		level = "HIGH"
		explanation = "Applicant has low credit score and/or insufficient income."
	}

	return &BasicResult{
		RiskScore:   score,
		RiskLevel:   level,
		Explanation: explanation,
	}
}

// ScoreHeuristic exposes the deterministic rule-based scorer.
func (s *service) ScoreHeuristic(payload map[string]interface{}) *HeuristicResult {
	return ScoreHeuristic(payload)
}

// ScoreTabular asks the hosted tabular model for a risk probability and
// shapes it for the UI. Any remote failure degrades to the rule-based
// scorer with the error surfaced in the explanation.
func (s *service) ScoreTabular(ctx context.Context, payload map[string]interface{}) (interface{}, Summary) {
	out, err := s.remote.ScoreTabular(ctx, inference.ModelTabularRisk, payload)
	if err != nil {
		return s.fallback(payload, "Score computed by local heuristic due to inference error: "+err.Error())
	}

	score := remoteScore(out)
	level := bucket(score)

	result := &TabularResult{
		RiskScore: score,
		RiskLevel: level,
		RiskData: []RiskSlice{
			{Name: level, Value: score * 100, Color: bucketColor(level)},
			{Name: "Other", Value: 100 - score*100, Color: colorRest},
		},
		Factors:           []string{},
		MaxLoanAmount:     "N/A",
		InterestRateRange: "N/A",
		Recommendations:   []string{},
		Explanation:       "Score computed by Hugging Face transformer tabular model.",
		UsedFallback:      false,
	}
	return result, Summary{Level: level, Score: score}
}

// ScoreCreditModel asks the hosted credit-card risk model for a
// creditworthiness verdict. Any remote failure, including a malformed
// output shape, degrades to the rule-based scorer.
func (s *service) ScoreCreditModel(ctx context.Context, payload map[string]interface{}) (interface{}, Summary) {
	out, err := s.remote.ScoreTabular(ctx, inference.ModelCreditRisk, payload)
	if err != nil {
		return s.fallback(payload, "Score computed by local ML model due to Hugging Face error: "+err.Error())
	}

	creditworthy, hasVerdict := out["creditworthy"]
	defaultProb, hasProb := out["default_probability"]
	if !hasVerdict && !hasProb {
		return s.fallback(payload, "Score computed by local ML model due to Hugging Face error: model returned no creditworthiness fields")
	}

	result := &CreditResult{
		Creditworthy:       creditworthy,
		DefaultProbability: defaultProb,
		Explanation:        "Score computed by Hugging Face saifhmb/Credit-Card-Risk-Model.",
		UsedFallback:       false,
	}

	summary := Summary{}
	if prob, perr := validation.Number(defaultProb); perr == nil {
		summary.Score = prob
		summary.Level = bucket(prob)
	}
	return result, summary
}

func (s *service) fallback(payload map[string]interface{}, explanation string) (interface{}, Summary) {
	log.Printf("risk: remote scoring failed, using heuristic fallback")
	result := ScoreHeuristic(payload)
	result.Explanation = explanation
	result.UsedFallback = true
	return result, Summary{Level: result.RiskLevel, Score: result.RiskScore, UsedFallback: true}
}

// remoteScore pulls the risk probability out of a hosted model reply,
// accepting either a "score" or a "probability" field.
func remoteScore(out map[string]interface{}) float64 {
	for _, key := range []string{"score", "probability"} {
		if v, ok := out[key]; ok {
			if f, err := validation.Number(v); err == nil {
				return clamp01(f)
			}
		}
	}
	return 0.0
}
