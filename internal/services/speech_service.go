package services

import (
	"context"

	"github.com/psiconervio/agente-ia/internal/providers/tts"
	"github.com/psiconervio/agente-ia/internal/storage"
	"github.com/psiconervio/agente-ia/internal/utils"
)

// SpeechService satisfies agent.Synthesizer: synthesize, persist the
// audio artifact, hand back its reference.
type SpeechService interface {
	Speak(ctx context.Context, text string) (string, error)
}

type speechService struct {
	tts   tts.Provider
	store storage.Store
}

func NewSpeechService(t tts.Provider, store storage.Store) SpeechService {
	return &speechService{tts: t, store: store}
}

func (s *speechService) Speak(ctx context.Context, text string) (string, error) {
	const op = "SpeechService.Speak"

	if text == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "text is required", nil)
	}

	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to synthesize speech", err)
	}

	ref, err := s.store.SaveAudio(ctx, audio)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to store audio", err)
	}
	return ref, nil
}
