package tts

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
	defaultAPIBase = "https://api.elevenlabs.io"
	defaultVoiceID = "W5JElH3dK1UYYAiHH7uh"
)

// Config configures the ElevenLabs synthesizer.
type Config struct {
	APIBase string
	APIKey  string
	VoiceID string
}

type ElevenLabs struct {
	apiBase string
	apiKey  string
	voiceID string
	client  *http.Client
}

func NewElevenLabs(cfg Config) *ElevenLabs {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	if cfg.VoiceID == "" {
		cfg.VoiceID = defaultVoiceID
	}
	return &ElevenLabs{
		apiBase: cfg.APIBase,
		apiKey:  cfg.APIKey,
		voiceID: cfg.VoiceID,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (e *ElevenLabs) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(elevenLabsRequest{
		Text: text,
		VoiceSettings: voiceSettings{
			Stability:       0.75,
			SimilarityBoost: 0.85,
		},
	})
	if err != nil {
		return nil, err
	}

	url := e.apiBase + "/v1/text-to-speech/" + e.voiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call elevenlabs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("elevenlabs returned %d: %s", resp.StatusCode, snippet)
	}

	return io.ReadAll(resp.Body)
}
