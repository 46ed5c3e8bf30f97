package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/psiconervio/agente-ia/internal/agent"
	"github.com/psiconervio/agente-ia/internal/models"
	"github.com/psiconervio/agente-ia/internal/providers/llm"
	"github.com/psiconervio/agente-ia/internal/providers/stt"
	"github.com/psiconervio/agente-ia/internal/utils"
)

// HistoryStore is the durable transcript, keyed by user, readable in
// chronological order. Both the Postgres and Mongo repos satisfy it.
type HistoryStore interface {
	Insert(ctx context.Context, rec *models.Interaction) error
	ListByUser(ctx context.Context, userID string) ([]models.Interaction, error)
	DeleteAll(ctx context.Context) error
}

type AskResult struct {
	Answer    string  `json:"answer"`
	AudioPath *string `json:"audio"`
}

type TranscribeResult struct {
	Transcription string  `json:"transcription"`
	Answer        string  `json:"answer"`
	AudioPath     *string `json:"audio"`
}

type InteractionService interface {
	Ask(ctx context.Context, input, userID string) (*AskResult, error)
	TranscribeAndAsk(ctx context.Context, audio []byte) (*TranscribeResult, error)
	ListByUser(ctx context.Context, userID string) ([]models.Interaction, error)
	DeleteAll(ctx context.Context) error
}

type interactionService struct {
	store  HistoryStore
	engine *agent.Engine
	stt    stt.Provider
}

func NewInteractionService(store HistoryStore, engine *agent.Engine, recognizer stt.Provider) InteractionService {
	return &interactionService{store: store, engine: engine, stt: recognizer}
}

func (s *interactionService) Ask(ctx context.Context, input, userID string) (*AskResult, error) {
	const op = "InteractionService.Ask"

	if strings.TrimSpace(input) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "input cannot be empty", nil)
	}
	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "userId is required", nil)
	}

	text, voice := agent.ParseVoiceDirective(input)

	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load history", err)
	}

	res, err := s.engine.Resolve(ctx, text, historyTurns(records), voice)
	if err != nil {
		return nil, err
	}

	answer := composeAnswer(res)

	meta, _ := json.Marshal(map[string]any{"resolver": res.Resolver})
	rec := &models.Interaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Question:  input, // raw, marker included
		Answer:    answer,
		Metadata:  datatypes.JSON(meta),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist interaction", err)
	}

	return &AskResult{Answer: answer, AudioPath: res.AudioPath}, nil
}

// TranscribeAndAsk feeds recognized speech through the same policy
// engine with voice output forced on. The audio path carries no user
// identity, so it sees no history and persists nothing.
func (s *interactionService) TranscribeAndAsk(ctx context.Context, audio []byte) (*TranscribeResult, error) {
	const op = "InteractionService.TranscribeAndAsk"

	if len(audio) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "audio is required", nil)
	}

	text, err := s.stt.Transcribe(ctx, audio)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to transcribe audio", err)
	}

	res, err := s.engine.Resolve(ctx, text, nil, true)
	if err != nil {
		return nil, err
	}

	return &TranscribeResult{
		Transcription: text,
		Answer:        composeAnswer(res),
		AudioPath:     res.AudioPath,
	}, nil
}

func (s *interactionService) ListByUser(ctx context.Context, userID string) ([]models.Interaction, error) {
	const op = "InteractionService.ListByUser"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "userId is required", nil)
	}
	rows, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interactions", err)
	}
	return rows, nil
}

func (s *interactionService) DeleteAll(ctx context.Context) error {
	const op = "InteractionService.DeleteAll"

	if err := s.store.DeleteAll(ctx); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete interactions", err)
	}
	return nil
}

// historyTurns derives chat context from stored records: two turns per
// record, question before answer, oldest record first.
func historyTurns(records []models.Interaction) []llm.Message {
	out := make([]llm.Message, 0, 2*len(records))
	for _, r := range records {
		out = append(out,
			llm.Message{Role: llm.RoleUser, Content: r.Question},
			llm.Message{Role: llm.RoleAssistant, Content: r.Answer},
		)
	}
	return out
}

// composeAnswer produces the externally visible answer string. The
// format is frozen; existing consumers parse it.
func composeAnswer(res agent.Result) string {
	return fmt.Sprintf("%s (Respondido con: %s)", res.Answer, res.Resolver)
}
