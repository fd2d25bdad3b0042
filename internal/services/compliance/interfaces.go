package compliance

import (
	"context"

	"finguard/internal/ml"
)

// InferenceAPI is the slice of the hosted inference client this
// service needs: clause classification, rewrite generation and
// document summarization.
type InferenceAPI interface {
	Classify(ctx context.Context, model, text string) ([]ml.Classification, error)
	Generate(ctx context.Context, model, prompt string) (string, error)
	Summarize(ctx context.Context, model, text string) (string, error)
}

// ModelProvider is the slice of the model registry this service needs:
// the local fallback tiers of the same three models.
type ModelProvider interface {
	TextClassifier(name string) (ml.TextClassifier, error)
	Generator(name string) (ml.Generator, error)
	Summarizer(name string) (ml.Summarizer, error)
}
