package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnomalyDetector(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := writeArtifact(t, `{
			"features": ["age", "income"],
			"means": [40, 50000],
			"stds": [10, 20000],
			"threshold": 2.0
		}`)

		d, err := LoadAnomalyDetector(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"age", "income"}, d.Features())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAnomalyDetector(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeArtifact(t, `{not json`)
		_, err := LoadAnomalyDetector(path)
		assert.Error(t, err)
	})

	t.Run("inconsistent lengths", func(t *testing.T) {
		path := writeArtifact(t, `{
			"features": ["age", "income"],
			"means": [40],
			"stds": [10, 20000]
		}`)
		_, err := LoadAnomalyDetector(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inconsistent")
	})

	t.Run("default threshold applied", func(t *testing.T) {
		path := writeArtifact(t, `{
			"features": ["x"],
			"means": [0],
			"stds": [1]
		}`)
		d, err := LoadAnomalyDetector(path)
		require.NoError(t, err)

		// 2.4 scale units is under the 2.5 default threshold.
		_, anomalous, err := d.Score([]float64{2.4})
		require.NoError(t, err)
		assert.False(t, anomalous)

		_, anomalous, err = d.Score([]float64{2.6})
		require.NoError(t, err)
		assert.True(t, anomalous)
	})
}

func TestAnomalyDetector_Score(t *testing.T) {
	path := writeArtifact(t, `{
		"features": ["age", "income"],
		"means": [40, 50000],
		"stds": [10, 0],
		"threshold": 2.0
	}`)
	d, err := LoadAnomalyDetector(path)
	require.NoError(t, err)

	t.Run("mean vector scores zero", func(t *testing.T) {
		score, anomalous, err := d.Score([]float64{40, 50000})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
		assert.False(t, anomalous)
	})

	t.Run("zero std treated as unit scale", func(t *testing.T) {
		score, _, err := d.Score([]float64{40, 50001})
		require.NoError(t, err)
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("wrong vector length", func(t *testing.T) {
		_, _, err := d.Score([]float64{40})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expected 2 features")
	})
}
