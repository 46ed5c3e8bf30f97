package llm

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// Reply carries the generated text plus the human-readable model label
// recorded in the transcript.
type Reply struct {
	Content string
	Model   string
}

type Provider interface {
	Complete(ctx context.Context, messages []Message) (Reply, error)
	Close() error
}
