package agent

import (
	"context"
	"strconv"
	"strings"

	"github.com/psiconervio/agente-ia/internal/providers/classifier"
	"github.com/psiconervio/agente-ia/internal/providers/llm"
	"github.com/psiconervio/agente-ia/internal/utils"
)

const (
	// chatMarker routes to the chat model when it appears anywhere in
	// the input, case-insensitively. It beats the greeting on purpose.
	chatMarker = "-gpt"

	greetingToken    = "hola"
	greetingAnswer   = "Hola, ¿cómo puedo ayudarte?"
	greetingResolver = "Mensaje Predeterminado"
)

// Synthesizer turns answer text into stored audio and returns a
// reference to it.
type Synthesizer interface {
	Speak(ctx context.Context, text string) (string, error)
}

// Result is one resolved exchange before persistence and composition.
type Result struct {
	Answer    string
	Resolver  string
	AudioPath *string
}

type rule struct {
	name  string
	match func(input string) bool
	run   func(ctx context.Context, input string, history []llm.Message) (answer, resolver string, err error)
}

// Engine decides which capability answers a given input. Rules are
// evaluated top-down, first match wins; the order is load-bearing.
type Engine struct {
	chat       llm.Provider
	classifier classifier.Provider
	speech     Synthesizer
	rules      []rule
}

func NewEngine(chat llm.Provider, cls classifier.Provider, speech Synthesizer) *Engine {
	e := &Engine{chat: chat, classifier: cls, speech: speech}
	e.rules = []rule{
		{
			name: "chat",
			match: func(in string) bool {
				return strings.Contains(strings.ToLower(in), chatMarker)
			},
			run: e.resolveChat,
		},
		{
			name: "greeting",
			match: func(in string) bool {
				return strings.ToLower(strings.TrimSpace(in)) == greetingToken
			},
			run: e.resolveGreeting,
		},
		{
			name:  "classify",
			match: func(string) bool { return true },
			run:   e.resolveClassify,
		},
	}
	return e
}

// Resolve runs the first matching rule and, when voiceRequested,
// synthesizes the resulting answer text as audio. Empty-input and
// userId validation happen upstream; Resolve assumes its input is
// already normalized.
func (e *Engine) Resolve(ctx context.Context, input string, history []llm.Message, voiceRequested bool) (Result, error) {
	const op = "Engine.Resolve"

	var res Result
	for _, r := range e.rules {
		if !r.match(input) {
			continue
		}
		answer, resolver, err := r.run(ctx, input, history)
		if err != nil {
			return Result{}, err
		}
		res = Result{Answer: answer, Resolver: resolver}
		break
	}

	if voiceRequested {
		if e.speech == nil {
			return Result{}, utils.E(utils.CodeInternal, op, "speech synthesizer is not configured", nil)
		}
		ref, err := e.speech.Speak(ctx, res.Answer)
		if err != nil {
			// a voice request without voice is a failed request
			return Result{}, err
		}
		res.AudioPath = &ref
	}

	return res, nil
}

func (e *Engine) resolveChat(ctx context.Context, input string, history []llm.Message) (string, string, error) {
	const op = "Engine.resolveChat"

	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: input})

	reply, err := e.chat.Complete(ctx, msgs)
	if err != nil {
		return "", "", utils.E(utils.CodeUnavailable, op, "chat completion failed", err)
	}
	return reply.Content, reply.Model, nil
}

func (e *Engine) resolveGreeting(context.Context, string, []llm.Message) (string, string, error) {
	return greetingAnswer, greetingResolver, nil
}

func (e *Engine) resolveClassify(ctx context.Context, input string, _ []llm.Message) (string, string, error) {
	const op = "Engine.resolveClassify"

	r, err := e.classifier.Classify(ctx, input)
	if err != nil {
		return "", "", utils.E(utils.CodeUnavailable, op, "classification failed", err)
	}

	answer := "Clasificación: " + r.Label +
		" (Confianza: " + strconv.FormatFloat(r.Score, 'g', -1, 64) + ")"
	return answer, r.Model, nil
}
