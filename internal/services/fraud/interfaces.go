package fraud

import (
	"context"

	"finguard/internal/ml"
)

// InferenceAPI is the slice of the hosted inference client this
// service needs: text classification and zero-shot NLI.
type InferenceAPI interface {
	Classify(ctx context.Context, model, text string) ([]ml.Classification, error)
	ZeroShot(ctx context.Context, model, text string, labels []string) (*ml.ZeroShotResult, error)
}

// ModelProvider is the slice of the model registry this service needs:
// local classifier tiers plus the artifact-backed anomaly detector.
type ModelProvider interface {
	TextClassifier(name string) (ml.TextClassifier, error)
	ZeroShot(name string) (ml.ZeroShotClassifier, error)
	AnomalyDetector() (*ml.AnomalyDetector, error)
}
