package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// New builds the chat provider selected by LLM_PROVIDER.
func New(ctx context.Context) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))) {
	case "", "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAI(key, os.Getenv("OPENAI_MODEL")), nil
	case "vertex":
		project := os.Getenv("VERTEX_PROJECT_ID")
		if project == "" {
			return nil, errors.New("VERTEX_PROJECT_ID environment variable is not set")
		}
		location := os.Getenv("VERTEX_LOCATION")
		if location == "" {
			location = "us-central1"
		}
		return NewVertexGemini(ctx, project, location, os.Getenv("VERTEX_MODEL"))
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", os.Getenv("LLM_PROVIDER"))
	}
}
