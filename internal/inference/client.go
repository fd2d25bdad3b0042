// Package inference is the HTTP client for the hosted model inference
// API. Every call POSTs {"inputs": ...} to baseURL+model with a fixed
// timeout and decodes the model-specific response shape.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finguard/internal/ml"
)

// DefaultTimeout bounds every remote model call.
const DefaultTimeout = 60 * time.Second

// Hosted model identifiers.
const (
	ModelSpam        = "mrm8488/bert-tiny-finetuned-sms-spam-detection"
	ModelNLI         = "facebook/bart-large-mnli"
	ModelLegal       = "nlpaueb/legal-bert-base-uncased"
	ModelRewrite     = "google/flan-t5-base"
	ModelSummarize   = "sshleifer/distilbart-cnn-12-6"
	ModelFinance     = "ProsusAI/finbert"
	ModelTabularRisk = "mindsdb/tabular-financial-forecasting"
	ModelCreditRisk  = "saifhmb/Credit-Card-Risk-Model"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the given API base URL. An empty token
// sends requests unauthenticated, matching the hosted API's free tier.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// post sends {"inputs": inputs, ...params} and returns the raw body on 2xx.
func (c *Client) post(ctx context.Context, model string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+model, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("inference API returned %d for %s: %s", resp.StatusCode, model, truncate(raw, 200))
	}
	return raw, nil
}

// Classify runs a text-classification model. The API returns either a
// flat prediction list or a nested per-input list; both are accepted.
func (c *Client) Classify(ctx context.Context, model, text string) ([]ml.Classification, error) {
	raw, err := c.post(ctx, model, map[string]interface{}{"inputs": text})
	if err != nil {
		return nil, err
	}

	var flat []ml.Classification
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var nested [][]ml.Classification
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	return nil, fmt.Errorf("unexpected classification output from %s: %s", model, truncate(raw, 200))
}

// ZeroShot runs a zero-shot classification model over candidate labels.
func (c *Client) ZeroShot(ctx context.Context, model, text string, labels []string) (*ml.ZeroShotResult, error) {
	payload := map[string]interface{}{
		"inputs":     text,
		"parameters": map[string]interface{}{"candidate_labels": labels},
	}
	raw, err := c.post(ctx, model, payload)
	if err != nil {
		return nil, err
	}

	var result ml.ZeroShotResult
	if err := json.Unmarshal(raw, &result); err != nil || len(result.Labels) == 0 {
		return nil, fmt.Errorf("unexpected zero-shot output from %s: %s", model, truncate(raw, 200))
	}
	return &result, nil
}

// Generate runs a text-to-text generation model and returns the first
// generated sequence.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	raw, err := c.post(ctx, model, map[string]interface{}{"inputs": prompt})
	if err != nil {
		return "", err
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || len(out) == 0 || out[0].GeneratedText == "" {
		return "", fmt.Errorf("unexpected generation output from %s: %s", model, truncate(raw, 200))
	}
	return out[0].GeneratedText, nil
}

// Summarize runs a summarization model and returns the summary text.
func (c *Client) Summarize(ctx context.Context, model, text string) (string, error) {
	raw, err := c.post(ctx, model, map[string]interface{}{"inputs": text})
	if err != nil {
		return "", err
	}

	var out []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || len(out) == 0 || out[0].SummaryText == "" {
		return "", fmt.Errorf("unexpected summarization output from %s: %s", model, truncate(raw, 200))
	}
	return out[0].SummaryText, nil
}

// ScoreTabular runs a tabular scoring model over named features and
// returns the decoded JSON object.
func (c *Client) ScoreTabular(ctx context.Context, model string, features map[string]interface{}) (map[string]interface{}, error) {
	raw, err := c.post(ctx, model, map[string]interface{}{"inputs": features})
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unexpected tabular output from %s: %s", model, truncate(raw, 200))
	}
	if msg, ok := out["error"].(string); ok && msg != "" {
		return nil, fmt.Errorf("inference API error from %s: %s", model, msg)
	}
	return out, nil
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
