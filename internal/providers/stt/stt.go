package stt

import "context"

type Provider interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
	Close() error
}
