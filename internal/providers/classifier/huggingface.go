package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api-inference.huggingface.co"
	defaultModel   = "distilbert-base-uncased-finetuned-sst-2-english"

	hfLabel = "Hugging Face - distilbert-finetuned-sst-2"
)

// Config configures the Hugging Face Inference API classifier.
type Config struct {
	APIBase string
	APIKey  string
	Model   string
}

type HuggingFace struct {
	apiBase string
	apiKey  string
	model   string
	client  *http.Client
}

func NewHuggingFace(cfg Config) *HuggingFace {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &HuggingFace{
		apiBase: cfg.APIBase,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (h *HuggingFace) Classify(ctx context.Context, text string) (Result, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return Result{}, err
	}

	url := h.apiBase + "/models/" + h.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call inference api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("inference api returned %d: %s", resp.StatusCode, raw)
	}

	// Text-classification responses come nested one level deep
	// ([[{label,score},...]]); some deployments return the flat form.
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		best := nested[0][0]
		return Result{Label: best.Label, Score: best.Score, Model: hfLabel}, nil
	}

	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return Result{Label: flat[0].Label, Score: flat[0].Score, Model: hfLabel}, nil
	}

	return Result{}, fmt.Errorf("inference api returned unexpected payload: %s", raw)
}
