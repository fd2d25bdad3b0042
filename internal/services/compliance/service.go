// Package compliance implements the clause-level document analyzer:
// split a document into clauses, classify each as compliant or not,
// suggest rewrites for violations and summarize the whole document.
package compliance

import (
	"context"
	"regexp"
	"strings"

	"finguard/internal/inference"
	"finguard/internal/ml"
	"finguard/internal/registry"
)

type Service interface {
	Analyze(ctx context.Context, documentText string) *Report
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

var (
	blankLineSplit = regexp.MustCompile(`\n{2,}`)
	clauseMarker   = regexp.MustCompile(`Clause \d+`)
)

// SplitClauses breaks a document into clauses on blank-line runs and
// "Clause N" heading markers. Empty clauses are dropped.
func SplitClauses(documentText string) []string {
	var clauses []string
	for _, block := range blankLineSplit.Split(documentText, -1) {
		for _, part := range splitBeforeMarkers(block) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				clauses = append(clauses, trimmed)
			}
		}
	}
	return clauses
}

// splitBeforeMarkers cuts a block immediately before each "Clause N"
// heading, keeping the marker with the text that follows it.
func splitBeforeMarkers(block string) []string {
	locs := clauseMarker.FindAllStringIndex(block, -1)
	if len(locs) == 0 {
		return []string{block}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, block[prev:loc[0]])
		}
		prev = loc[0]
	}
	parts = append(parts, block[prev:])
	return parts
}

// Analyze produces the clause-level compliance report. Every failure is
// captured inside the report rather than propagated: a clause that
// cannot be classified gets an error status, a rewrite or summary that
// cannot be generated gets an inline error string.
func (s *service) Analyze(ctx context.Context, documentText string) *Report {
	report := &Report{Clauses: []ClauseResult{}}

	for idx, clause := range SplitClauses(documentText) {
		result := s.analyzeClause(ctx, idx+1, clause)
		switch result.Status {
		case StatusCompliant:
			report.CompliantClauses++
		case StatusNonCompliant:
			report.NonCompliantClauses++
		}
		report.Clauses = append(report.Clauses, result)
	}

	switch {
	case report.NonCompliantClauses == 0:
		report.OverallCompliance = "Compliant"
	case report.CompliantClauses > 0:
		report.OverallCompliance = "Partial"
	default:
		report.OverallCompliance = "Non-compliant"
	}

	report.Summary = s.summarize(ctx, documentText)
	return report
}

func (s *service) analyzeClause(ctx context.Context, id int, clause string) ClauseResult {
	predictions, err := s.classifyClause(ctx, clause)
	if err != nil || len(predictions) == 0 {
		msg := "no prediction returned"
		if err != nil {
			msg = err.Error()
		}
		suggestion := "Error analyzing clause: " + msg
		return ClauseResult{
			ID:         id,
			Text:       clause,
			Status:     StatusError,
			Confidence: 0.0,
			Suggestion: &suggestion,
		}
	}

	label := predictions[0].Label
	confidence := predictions[0].Score
	if confidence == 0 {
		confidence = 0.8
	}
	compliant := label == "LABEL_1" || label == "POSITIVE" || label == "COMPLIANT"

	result := ClauseResult{
		ID:         id,
		Text:       clause,
		Confidence: confidence,
	}

	rule := RuleGeneral
	if compliant {
		result.Status = StatusCompliant
	} else {
		result.Status = StatusNonCompliant
		if strings.Contains(strings.ToLower(clause), "penalty") {
			rule = RulePenalty
		}
		suggestion := s.suggestRewrite(ctx, clause)
		result.Suggestion = &suggestion
	}
	result.Rule = &rule
	return result
}

// classifyClause tries the hosted legal model first and falls back to
// the local clause classifier.
func (s *service) classifyClause(ctx context.Context, clause string) ([]ml.Classification, error) {
	if s.remote != nil {
		if predictions, err := s.remote.Classify(ctx, inference.ModelLegal, clause); err == nil {
			return predictions, nil
		}
	}
	classifier, err := s.models.TextClassifier(registry.ModelClauseClassifier)
	if err != nil {
		return nil, err
	}
	return classifier.Classify(clause)
}

// suggestRewrite generates a compliant rewrite for a flagged clause.
// Generation is best-effort; failures are embedded as inline strings.
func (s *service) suggestRewrite(ctx context.Context, clause string) string {
	prompt := "Rewrite this clause to be RBI compliant: " + clause

	if s.remote != nil {
		if text, err := s.remote.Generate(ctx, inference.ModelRewrite, prompt); err == nil {
			return text
		}
	}

	generator, err := s.models.Generator(registry.ModelClauseRewriter)
	if err != nil {
		return "Error generating suggestion: " + err.Error()
	}
	text, err := generator.Generate(prompt)
	if err != nil {
		return "Error generating suggestion: " + err.Error()
	}
	return text
}

func (s *service) summarize(ctx context.Context, documentText string) string {
	if s.remote != nil {
		if summary, err := s.remote.Summarize(ctx, inference.ModelSummarize, documentText); err == nil {
			return summary
		}
	}

	summarizer, err := s.models.Summarizer(registry.ModelSummarizer)
	if err != nil {
		return "Error generating summary: " + err.Error()
	}
	summary, err := summarizer.Summarize(documentText)
	if err != nil {
		return "Error generating summary: " + err.Error()
	}
	return summary
}
