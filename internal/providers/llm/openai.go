package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// openAILabel is how replies have always been annotated in transcripts,
// even though the request model is gpt-4. Changing it would break
// stored history.
const openAILabel = "ChatGPT (GPT-3.5)"

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAI) Close() error { return nil }

func (c *OpenAI) Complete(ctx context.Context, messages []Message) (Reply, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("chat completion returned no choices")
	}

	return Reply{Content: resp.Choices[0].Message.Content, Model: openAILabel}, nil
}
