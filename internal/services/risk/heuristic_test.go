package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreHeuristic(t *testing.T) {
	t.Run("strong profile lands in the low bucket", func(t *testing.T) {
		result := ScoreHeuristic(map[string]interface{}{
			"credit_score": 800.0,
			"income":       1200000.0,
			"employment":   "Govt Job",
			"loan_amount":  200000.0,
			"socials":      "LinkedIn",
		})

		// 0.5 - 0.15 (credit) - 0.10 (salary) - 0.05 (socials) = 0.20
		assert.InDelta(t, 0.20, result.RiskScore, 1e-9)
		assert.Equal(t, "Low", result.RiskLevel)
		assert.Equal(t, "₹6,000,000", result.MaxLoanAmount)
		assert.Equal(t, "7% - 10%", result.InterestRateRange)
		assert.Contains(t, result.Factors, "Excellent credit score")
		assert.Contains(t, result.Factors, "Professional social media presence")
		assert.True(t, result.UsedFallback)
	})

	t.Run("weak profile scores by the literal arithmetic", func(t *testing.T) {
		result := ScoreHeuristic(map[string]interface{}{
			"credit_score": 480.0,
			"income":       220000.0,
			"employment":   "Daily Wage",
			"loan_amount":  200000.0,
			"socials":      "None",
		})

		// 0.5 + 0.25 (credit) - 0.10 (salary); the loan rule does not
		// fire because 200000 is not above 3x income.
		assert.InDelta(t, 0.65, result.RiskScore, 1e-9)
		assert.Equal(t, "Medium", result.RiskLevel)
		assert.Equal(t, "10% - 16%", result.InterestRateRange)
		assert.Equal(t, "₹550,000", result.MaxLoanAmount)
	})

	t.Run("worst case clamps to one", func(t *testing.T) {
		result := ScoreHeuristic(map[string]interface{}{
			"credit_score": 300.0,
			"income":       10000.0,
			"employment":   "unemployed",
			"loan_amount":  500000.0,
		})

		assert.Equal(t, 1.0, result.RiskScore)
		assert.Equal(t, "High", result.RiskLevel)
		assert.Equal(t, "16% - 25%", result.InterestRateRange)
		assert.Equal(t, "₹10,000", result.MaxLoanAmount)
		assert.Contains(t, result.Factors, "Unemployed")
		assert.Contains(t, result.Factors, "High loan amount relative to salary")
	})

	t.Run("deterministic", func(t *testing.T) {
		payload := map[string]interface{}{
			"credit_score": 700.0,
			"income":       80000.0,
			"loan_amount":  150000.0,
			"employment":   "Salaried",
			"socials":      "github",
		}
		first := ScoreHeuristic(payload)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, ScoreHeuristic(payload))
		}
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		payloads := []map[string]interface{}{
			{},
			{"credit_score": 850.0, "income": 5000000.0, "socials": "linkedin github"},
			{"credit_score": 300.0, "income": 1000.0, "loan_amount": 1e9, "employment": "unemployed"},
		}
		for _, payload := range payloads {
			result := ScoreHeuristic(payload)
			assert.GreaterOrEqual(t, result.RiskScore, 0.0)
			assert.LessOrEqual(t, result.RiskScore, 1.0)
			require.Len(t, result.RiskData, 2)
			assert.InDelta(t, 100.0, result.RiskData[0].Value+result.RiskData[1].Value, 1e-9)
		}
	})
}

func TestBucket(t *testing.T) {
	assert.Equal(t, "Low", bucket(0.0))
	assert.Equal(t, "Low", bucket(0.3299))
	assert.Equal(t, "Medium", bucket(0.33))
	assert.Equal(t, "Medium", bucket(0.6599))
	assert.Equal(t, "High", bucket(0.66))
	assert.Equal(t, "High", bucket(1.0))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{550000, "550,000"},
		{6000000, "6,000,000"},
		{-12345, "-12,345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in))
	}
}
