package ml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpamClassifier(t *testing.T) {
	c := NewSpamClassifier()

	t.Run("promotional text is spam", func(t *testing.T) {
		preds, err := c.Classify("URGENT! You are a lottery WINNER, claim your free prize now")
		require.NoError(t, err)
		require.Len(t, preds, 1)
		assert.Equal(t, "spam", preds[0].Label)
		assert.Greater(t, preds[0].Score, 0.5)
		assert.LessOrEqual(t, preds[0].Score, 1.0)
	})

	t.Run("plain text is ham", func(t *testing.T) {
		preds, err := c.Classify("The quarterly repayment was received on schedule.")
		require.NoError(t, err)
		require.Len(t, preds, 1)
		assert.Equal(t, "ham", preds[0].Label)
	})
}

func TestKeywordNLI(t *testing.T) {
	c := NewKeywordNLI()
	labels := []string{"fake", "contradictory", "real"}

	t.Run("scores normalize and sort descending", func(t *testing.T) {
		result, err := c.ClassifyLabels("The statement is forged and fabricated.", labels)
		require.NoError(t, err)
		assert.Equal(t, "fake", result.Labels[0])

		sum := 0.0
		for i, s := range result.Scores {
			sum += s
			if i > 0 {
				assert.LessOrEqual(t, s, result.Scores[i-1])
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("no labels", func(t *testing.T) {
		_, err := c.ClassifyLabels("anything", nil)
		assert.Error(t, err)
	})
}

func TestClauseClassifier(t *testing.T) {
	c := NewClauseClassifier()

	t.Run("red flag clause", func(t *testing.T) {
		preds, err := c.Classify("The lender may change terms at its sole discretion without notice.")
		require.NoError(t, err)
		assert.Equal(t, "NON_COMPLIANT", preds[0].Label)
		assert.GreaterOrEqual(t, preds[0].Score, 0.6)
	})

	t.Run("obligation clause", func(t *testing.T) {
		preds, err := c.Classify("The lender shall comply with RBI guidelines and fair practices.")
		require.NoError(t, err)
		assert.Equal(t, "COMPLIANT", preds[0].Label)
	})
}

func TestClauseRewriter(t *testing.T) {
	g := NewClauseRewriter()

	t.Run("strips prompt and substitutes phrases", func(t *testing.T) {
		out, err := g.Generate("Rewrite this clause to be RBI compliant: Terms change at sole discretion without notice.")
		require.NoError(t, err)
		assert.NotContains(t, strings.ToLower(out), "sole discretion")
		assert.Contains(t, out, "mutual written agreement")
		assert.Contains(t, out, "RBI guidelines")
	})

	t.Run("empty prompt", func(t *testing.T) {
		_, err := g.Generate("Rewrite this clause to be RBI compliant:   ")
		assert.Error(t, err)
	})
}

func TestLeadSummarizer(t *testing.T) {
	s := NewLeadSummarizer()

	t.Run("keeps first three sentences", func(t *testing.T) {
		out, err := s.Summarize("One. Two. Three. Four. Five.")
		require.NoError(t, err)
		assert.Equal(t, "One. Two. Three.", out)
	})

	t.Run("truncates long summaries", func(t *testing.T) {
		out, err := s.Summarize(strings.Repeat("x", 600))
		require.NoError(t, err)
		assert.LessOrEqual(t, len([]rune(out)), 401)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := s.Summarize("   ")
		assert.Error(t, err)
	})
}

func TestFinanceClassifier(t *testing.T) {
	c := NewFinanceClassifier()

	tests := []struct {
		name  string
		text  string
		label string
	}{
		{"negative", "The shell company issued a fake invoice to launder funds.", "negative"},
		{"positive", "The loan was repaid on time and accounts were audited.", "positive"},
		{"neutral", "The branch opens at nine.", "neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preds, err := c.Classify(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.label, preds[0].Label)
		})
	}
}
