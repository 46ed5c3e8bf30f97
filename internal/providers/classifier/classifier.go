package classifier

import "context"

// Result is one sentiment prediction. Model is the human-readable
// label recorded in the transcript.
type Result struct {
	Label string
	Score float64
	Model string
}

type Provider interface {
	Classify(ctx context.Context, text string) (Result, error)
}
