package tts

import "context"

// Provider synthesizes speech from text and returns encoded audio
// bytes (MP3).
type Provider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
