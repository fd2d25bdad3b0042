package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"finguard/internal/models"
	"finguard/internal/registry"
	"finguard/internal/services/auth"
	"finguard/internal/services/compliance"
	"finguard/internal/services/dashboard"
	"finguard/internal/services/fraud"
	"finguard/internal/services/report"
	"finguard/internal/services/risk"
	"finguard/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct{}

func (stubAuthService) Register(email, password, name string) (*models.User, error) {
	return nil, auth.ErrEmailTaken
}

func (stubAuthService) Login(email, password string) (*models.User, string, string, error) {
	return nil, "", "", auth.ErrInvalidCredentials
}

func (stubAuthService) RefreshTokens(refreshToken string) (string, string, error) {
	return "", "", errors.New("invalid refresh token")
}

type failingScorer struct{}

func (failingScorer) ScoreTabular(ctx context.Context, model string, features map[string]interface{}) (map[string]interface{}, error) {
	return nil, errors.New("offline")
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	localModels := registry.NewDefault("does-not-exist.json")

	app := fiber.New()
	SetupRoutes(app, Deps{
		Auth:       stubAuthService{},
		Compliance: compliance.NewService(nil, localModels),
		Risk:       risk.NewService(failingScorer{}),
		Fraud:      fraud.NewService(nil, localModels),
		Dashboard:  dashboard.NewService(nil),
		Report:     report.NewService(),
	})
	return app
}

func authToken(t *testing.T, role string) string {
	t.Helper()
	access, _, err := utils.GenerateTokens(&models.UserClaims{
		UserID:      1,
		Email:       "analyst@example.com",
		Role:        role,
		Permissions: models.GetDefaultPermissions(role),
	})
	require.NoError(t, err)
	return access
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestPublicRoutes(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t)

	t.Run("health", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", decodeBody(t, resp)["status"])
	})

	t.Run("ping", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/ping", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", decodeBody(t, resp)["status"])
	})

	t.Run("login with bad credentials", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/login", "",
			map[string]string{"email": "x@y.z", "password": "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthBoundary(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t)

	t.Run("missing token", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/detect-fraud", "",
			map[string]string{"document_text": "hello"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard-summary", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("role without permissions is forbidden", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/dashboard-summary", authToken(t, "viewer"), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("analyst cannot list all assessments", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/admin/assessments", authToken(t, "analyst"), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestComplianceEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t)
	token := authToken(t, "analyst")

	t.Run("missing document_text", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/analyze-compliance", token,
			map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing document_text", decodeBody(t, resp)["error"])
	})

	t.Run("analysis report", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/analyze-compliance", token,
			map[string]string{"document_text": "The lender shall comply with RBI guidelines."})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Compliant", body["overallCompliance"])
		assert.NotEmpty(t, body["clauses"])
	})
}

func TestRiskEndpoints(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t)
	token := authToken(t, "analyst")

	payload := map[string]interface{}{
		"credit_score": 800,
		"income":       1200000,
		"loan_amount":  200000,
		"socials":      "LinkedIn",
	}

	t.Run("heuristic scorer", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/score-loan-risk-flan", token, payload)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Low", body["risk_level"])
		assert.Equal(t, "₹6,000,000", body["maxLoanAmount"])
	})

	t.Run("remote scorer degrades to heuristic", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/score-loan-risk-ml", token, payload)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["used_fallback"])
		assert.Contains(t, body["explanation"], "local heuristic")
	})

	t.Run("basic analyzer", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/analyze-loan-risk", token,
			map[string]interface{}{"credit_score": 820, "income": 500000, "amount_requested": 100000})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "LOW", decodeBody(t, resp)["risk_level"])
	})
}

func TestFraudEndpoints(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t)
	token := authToken(t, "analyst")

	t.Run("detect requires document_text", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/detect-fraud", token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing document_text", decodeBody(t, resp)["error"])
	})

	t.Run("detect returns both passes", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/detect-fraud", token,
			map[string]string{"document_text": "The statement is verified and audited."})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Contains(t, body, "nli_result")
		assert.Contains(t, body, "spam_result")
	})

	t.Run("advanced surfaces anomaly error without failing", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/detect-fraud-advanced", token,
			map[string]interface{}{
				"tabular": map[string]interface{}{"age": 30},
				"text":    map[string]interface{}{"application_text": "ordinary application"},
			})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "missing field: income", body["anomaly_error"])
		assert.NotNil(t, body["text_fraud"])
	})
}

func TestReportAndDashboard(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(t)
	token := authToken(t, "analyst")

	t.Run("dashboard summary", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/dashboard-summary", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Len(t, body["recent_frauds"], 4)
		assert.Equal(t, 92.3, body["compliance_pass_rate"])
	})

	t.Run("generate report", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/generate-report", token,
			map[string]string{"reportType": "audit"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		report := body["report"].(map[string]interface{})
		assert.Equal(t, "audit", report["type"])
		assert.Equal(t, "monthly", report["period"])
	})

	t.Run("rbi submission", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/rbi-api", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Report submitted to RBI successfully", decodeBody(t, resp)["message"])
	})
}
