package stt

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// New builds the recognizer selected by STT_PROVIDER.
func New(ctx context.Context) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STT_PROVIDER"))) {
	case "", "huggingface":
		return NewHuggingFace(Config{APIKey: os.Getenv("HUGGINGFACE_API_KEY")}), nil
	case "google":
		return NewGoogleSpeech(ctx, os.Getenv("STT_LANGUAGE"))
	default:
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", os.Getenv("STT_PROVIDER"))
	}
}
