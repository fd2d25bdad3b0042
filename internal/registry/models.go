package registry

import "finguard/internal/ml"

// Registered model names.
const (
	ModelSpamClassifier    = "spam-classifier"
	ModelNLIClassifier     = "nli-classifier"
	ModelClauseClassifier  = "clause-classifier"
	ModelClauseRewriter    = "clause-rewriter"
	ModelSummarizer        = "summarizer"
	ModelFinanceClassifier = "finance-classifier"
	ModelAnomalyDetector   = "anomaly-detector"
)

// NewDefault builds the registry with the full local model set wired.
// Only the anomaly detector touches the disk at load time; the text
// pipelines construct in-memory lexicon models.
func NewDefault(anomalyArtifactPath string) *Registry {
	r := New()
	r.Register(ModelSpamClassifier, func() (interface{}, error) {
		return ml.NewSpamClassifier(), nil
	})
	r.Register(ModelNLIClassifier, func() (interface{}, error) {
		return ml.NewKeywordNLI(), nil
	})
	r.Register(ModelClauseClassifier, func() (interface{}, error) {
		return ml.NewClauseClassifier(), nil
	})
	r.Register(ModelClauseRewriter, func() (interface{}, error) {
		return ml.NewClauseRewriter(), nil
	})
	r.Register(ModelSummarizer, func() (interface{}, error) {
		return ml.NewLeadSummarizer(), nil
	})
	r.Register(ModelFinanceClassifier, func() (interface{}, error) {
		return ml.NewFinanceClassifier(), nil
	})
	r.Register(ModelAnomalyDetector, func() (interface{}, error) {
		return ml.LoadAnomalyDetector(anomalyArtifactPath)
	})
	return r
}

// TextClassifier fetches a registered model and asserts it classifies text.
func (r *Registry) TextClassifier(name string) (ml.TextClassifier, error) {
	h, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return h.(ml.TextClassifier), nil
}

// ZeroShot fetches the zero-shot classifier.
func (r *Registry) ZeroShot(name string) (ml.ZeroShotClassifier, error) {
	h, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return h.(ml.ZeroShotClassifier), nil
}

// Generator fetches a text generator.
func (r *Registry) Generator(name string) (ml.Generator, error) {
	h, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return h.(ml.Generator), nil
}

// Summarizer fetches the summarizer.
func (r *Registry) Summarizer(name string) (ml.Summarizer, error) {
	h, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return h.(ml.Summarizer), nil
}

// AnomalyDetector fetches the artifact-backed anomaly model.
func (r *Registry) AnomalyDetector() (*ml.AnomalyDetector, error) {
	h, err := r.Get(ModelAnomalyDetector)
	if err != nil {
		return nil, err
	}
	return h.(*ml.AnomalyDetector), nil
}
