// Package ml holds the local model implementations served by the
// registry. These are deterministic, lexicon-backed stand-ins used as
// the fallback tier when the hosted inference API is unavailable, plus
// the artifact-backed anomaly detector.
package ml

// Classification is a single labeled prediction with a confidence score.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ZeroShotResult mirrors the hosted zero-shot output shape: candidate
// labels sorted by descending score.
type ZeroShotResult struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// TextClassifier maps free text to a labeled, scored prediction list.
type TextClassifier interface {
	Classify(text string) ([]Classification, error)
}

// ZeroShotClassifier scores free text against a caller-supplied label set.
type ZeroShotClassifier interface {
	ClassifyLabels(text string, labels []string) (*ZeroShotResult, error)
}

// Generator produces text from a prompt (clause rewrites).
type Generator interface {
	Generate(prompt string) (string, error)
}

// Summarizer condenses a document into a short summary.
type Summarizer interface {
	Summarize(text string) (string, error)
}
