package tts

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// New builds the synthesizer selected by TTS_PROVIDER.
func New() (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TTS_PROVIDER"))) {
	case "", "elevenlabs":
		key := os.Getenv("TEXT_TO_SPEECH_API_KEY")
		if key == "" {
			return nil, errors.New("TEXT_TO_SPEECH_API_KEY environment variable is not set")
		}
		return NewElevenLabs(Config{
			APIKey:  key,
			VoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
		}), nil
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAI(key, os.Getenv("OPENAI_TTS_VOICE")), nil
	default:
		return nil, fmt.Errorf("unknown TTS_PROVIDER %q", os.Getenv("TTS_PROVIDER"))
	}
}
