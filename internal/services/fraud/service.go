// Package fraud implements the fraud detection surfaces: text-level
// spam and NLI passes, the composed tabular/text anomaly report, and
// the financial-text classifier.
package fraud

import (
	"context"
	"strings"

	"finguard/internal/inference"
	"finguard/internal/ml"
	"finguard/internal/registry"
	"finguard/internal/validation"
)

type Service interface {
	Detect(ctx context.Context, documentText string) *DetectResult
	DetectAdvanced(ctx context.Context, tabular, text map[string]interface{}) *AdvancedResult
	DetectFinchain(ctx context.Context, documentText string) *FinchainResult
}

type service struct {
	remote InferenceAPI
	models ModelProvider
}

func NewService(remote InferenceAPI, models ModelProvider) Service {
	if models == nil {
		panic("model provider is required")
	}
	return &service{remote: remote, models: models}
}

// Detect runs the zero-shot NLI pass and the spam classification pass
// over the document. Each pass is independent: a failure lands in that
// pass's slot as an error object, never as a request failure.
func (s *service) Detect(ctx context.Context, documentText string) *DetectResult {
	return &DetectResult{
		NLIResult:  s.runNLI(ctx, documentText),
		SpamResult: s.runSpam(ctx, documentText),
	}
}

func (s *service) runNLI(ctx context.Context, text string) interface{} {
	if s.remote != nil {
		if result, err := s.remote.ZeroShot(ctx, inference.ModelNLI, text, nliLabels); err == nil {
			return result
		}
	}

	classifier, err := s.models.ZeroShot(registry.ModelNLIClassifier)
	if err != nil {
		return modelError{Error: "NLI model failed: " + err.Error()}
	}
	result, err := classifier.ClassifyLabels(text, nliLabels)
	if err != nil {
		return modelError{Error: "NLI model failed: " + err.Error()}
	}
	return result
}

func (s *service) runSpam(ctx context.Context, text string) interface{} {
	if s.remote != nil {
		if predictions, err := s.remote.Classify(ctx, inference.ModelSpam, text); err == nil {
			return predictions
		}
	}

	classifier, err := s.models.TextClassifier(registry.ModelSpamClassifier)
	if err != nil {
		return modelError{Error: "Text fraud model failed: " + err.Error()}
	}
	predictions, err := classifier.Classify(text)
	if err != nil {
		return modelError{Error: "Text fraud model failed: " + err.Error()}
	}
	return predictions
}

// DetectAdvanced composes three best-effort analyses: the anomaly model
// over required tabular features, plus spam and NLI passes over the
// free-text fields. Missing or invalid tabular fields only disable the
// anomaly tier, captured in anomaly_error.
func (s *service) DetectAdvanced(ctx context.Context, tabular, text map[string]interface{}) *AdvancedResult {
	result := &AdvancedResult{
		Explanation: "Scores computed by Isolation Forest (if data present) and transformer models.",
	}

	if score, isAnomaly, err := s.scoreAnomaly(tabular); err != nil {
		msg := err.Error()
		result.AnomalyError = &msg
	} else {
		result.AnomalyScore = &score
		result.IsAnomaly = &isAnomaly
	}

	applicationText := validation.OptionalString(text, "application_text")
	if applicationText != "" {
		result.TextFraud = s.runSpam(ctx, applicationText)
		result.LogicValidation = s.runNLI(ctx, applicationText)
	}

	result.RiskNarrative = narrative(result)
	return result
}

func (s *service) scoreAnomaly(tabular map[string]interface{}) (float64, bool, error) {
	values, err := validation.RequiredNumbers(tabular, anomalyFields)
	if err != nil {
		return 0, false, err
	}

	detector, err := s.models.AnomalyDetector()
	if err != nil {
		return 0, false, err
	}
	return detector.Score(values)
}

// DetectFinchain classifies financial text for fraud signals. All
// failure paths terminate in a renderable result with an error field.
func (s *service) DetectFinchain(ctx context.Context, documentText string) *FinchainResult {
	predictions, err := s.classifyFinance(ctx, documentText)
	if err != nil {
		return &FinchainResult{Error: "Failed to run FinChain-BERT fraud detection: " + err.Error()}
	}
	if len(predictions) == 0 {
		return &FinchainResult{Error: "No prediction returned from model."}
	}

	return &FinchainResult{
		FraudLabel:       predictions[0].Label,
		FraudProbability: predictions[0].Score,
		Explanation:      "Prediction by BERT-based model (ProsusAI/finbert). Higher probability means higher fraud likelihood.",
	}
}

func (s *service) classifyFinance(ctx context.Context, text string) ([]ml.Classification, error) {
	if s.remote != nil {
		if predictions, err := s.remote.Classify(ctx, inference.ModelFinance, text); err == nil {
			return predictions, nil
		}
	}
	classifier, err := s.models.TextClassifier(registry.ModelFinanceClassifier)
	if err != nil {
		return nil, err
	}
	return classifier.Classify(text)
}

// narrative buckets the composed report by how many independent fraud
// signals fired and names them for the UI.
func narrative(result *AdvancedResult) string {
	var signals []string

	if result.IsAnomaly != nil && *result.IsAnomaly {
		signals = append(signals, "tabular features are anomalous")
	}
	if predictions, ok := result.TextFraud.([]ml.Classification); ok && len(predictions) > 0 {
		if strings.EqualFold(predictions[0].Label, "spam") && predictions[0].Score > 0.5 {
			signals = append(signals, "application text reads like spam")
		}
	}
	if nli, ok := result.LogicValidation.(*ml.ZeroShotResult); ok && len(nli.Labels) > 0 {
		if !strings.EqualFold(nli.Labels[0], "real") {
			signals = append(signals, "narrative fails logic validation ("+nli.Labels[0]+")")
		}
	}

	switch len(signals) {
	case 0:
		return "Low fraud risk: no independent signals fired."
	case 1:
		return "Medium fraud risk: " + signals[0] + "."
	default:
		return "High fraud risk: " + strings.Join(signals, "; ") + "."
	}
}
