package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// AnomalyArtifact is the serialized form of the trained outlier model:
// per-feature location/scale statistics and a decision threshold.
type AnomalyArtifact struct {
	Features  []string  `json:"features"`
	Means     []float64 `json:"means"`
	Stds      []float64 `json:"stds"`
	Threshold float64   `json:"threshold"`
}

// AnomalyDetector scores fixed-order numeric feature vectors against a
// loaded artifact. Higher scores mean more anomalous; a vector is
// flagged when its score exceeds the artifact threshold.
type AnomalyDetector struct {
	artifact AnomalyArtifact
}

// LoadAnomalyDetector reads and validates the artifact file. Loading is
// disk I/O and is expected to run behind the model registry's lazy
// initialization.
func LoadAnomalyDetector(path string) (*AnomalyDetector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read anomaly model artifact: %w", err)
	}

	var artifact AnomalyArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse anomaly model artifact: %w", err)
	}

	if len(artifact.Features) == 0 {
		return nil, fmt.Errorf("anomaly model artifact has no features")
	}
	if len(artifact.Means) != len(artifact.Features) || len(artifact.Stds) != len(artifact.Features) {
		return nil, fmt.Errorf("anomaly model artifact is inconsistent: %d features, %d means, %d stds",
			len(artifact.Features), len(artifact.Means), len(artifact.Stds))
	}
	if artifact.Threshold <= 0 {
		artifact.Threshold = 2.5
	}

	return &AnomalyDetector{artifact: artifact}, nil
}

// Features returns the feature names in scoring order.
func (d *AnomalyDetector) Features() []string {
	return d.artifact.Features
}

// Score computes the anomaly score of a feature vector as the mean
// absolute deviation from the trained statistics, in scale units.
func (d *AnomalyDetector) Score(values []float64) (float64, bool, error) {
	if len(values) != len(d.artifact.Features) {
		return 0, false, fmt.Errorf("expected %d features, got %d", len(d.artifact.Features), len(values))
	}

	total := 0.0
	for i, v := range values {
		std := d.artifact.Stds[i]
		if std == 0 {
			std = 1
		}
		total += math.Abs(v-d.artifact.Means[i]) / std
	}
	score := total / float64(len(values))
	return score, score > d.artifact.Threshold, nil
}
