package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/psiconervio/agente-ia/internal/agent"
	"github.com/psiconervio/agente-ia/internal/models"
	"github.com/psiconervio/agente-ia/internal/providers/classifier"
	"github.com/psiconervio/agente-ia/internal/providers/llm"
	"github.com/psiconervio/agente-ia/internal/utils"
)

type fakeStore struct {
	records     []models.Interaction
	listCalls   int
	insertCalls int
	listErr     error
	insertErr   error
}

func (f *fakeStore) Insert(_ context.Context, rec *models.Interaction) error {
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]models.Interaction, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Interaction
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteAll(context.Context) error {
	f.records = nil
	return nil
}

type fakeChat struct {
	calls int
	got   []llm.Message
	reply llm.Reply
}

func (f *fakeChat) Complete(_ context.Context, msgs []llm.Message) (llm.Reply, error) {
	f.calls++
	f.got = msgs
	return f.reply, nil
}

func (f *fakeChat) Close() error { return nil }

type fakeClassifier struct {
	calls int
	res   classifier.Result
}

func (f *fakeClassifier) Classify(context.Context, string) (classifier.Result, error) {
	f.calls++
	return f.res, nil
}

type fakeSpeech struct {
	calls int
	ref   string
}

func (f *fakeSpeech) Speak(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.ref, nil
}

type fakeSTT struct {
	calls int
	got   []byte
	text  string
	err   error
}

func (f *fakeSTT) Transcribe(_ context.Context, audio []byte) (string, error) {
	f.calls++
	f.got = audio
	return f.text, f.err
}

func (f *fakeSTT) Close() error { return nil }

type fixture struct {
	svc    InteractionService
	store  *fakeStore
	chat   *fakeChat
	cls    *fakeClassifier
	speech *fakeSpeech
	stt    *fakeSTT
}

func newFixture() *fixture {
	store := &fakeStore{}
	chat := &fakeChat{reply: llm.Reply{Content: "respuesta", Model: "ChatGPT (GPT-3.5)"}}
	cls := &fakeClassifier{res: classifier.Result{Label: "NEGATIVE", Score: 0.75, Model: "Hugging Face - distilbert-finetuned-sst-2"}}
	speech := &fakeSpeech{ref: "uploads/audio-1.mp3"}
	rec := &fakeSTT{text: "hola"}

	engine := agent.NewEngine(chat, cls, speech)
	return &fixture{
		svc:    NewInteractionService(store, engine, rec),
		store:  store,
		chat:   chat,
		cls:    cls,
		speech: speech,
		stt:    rec,
	}
}

func TestAskRejectsEmptyInput(t *testing.T) {
	f := newFixture()

	for _, in := range []string{"", "   "} {
		_, err := f.svc.Ask(context.Background(), in, "u1")
		if !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Fatalf("Ask(%q) err = %v, want INVALID_ARGUMENT", in, err)
		}
		var ae *utils.AppError
		if !errors.As(err, &ae) || ae.Message != "input cannot be empty" {
			t.Fatalf("Ask(%q) message = %v", in, err)
		}
	}
	if f.store.listCalls != 0 || f.cls.calls != 0 || f.chat.calls != 0 {
		t.Fatalf("validation failure must short-circuit before any collaborator call")
	}
}

func TestAskRejectsMissingUserID(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Ask(context.Background(), "hello", "")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("err = %v, want INVALID_ARGUMENT", err)
	}
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Message != "userId is required" {
		t.Fatalf("message = %v", err)
	}
	if f.store.listCalls != 0 {
		t.Fatalf("history must not be read without a userId")
	}
}

func TestAskClassifiesAndPersists(t *testing.T) {
	f := newFixture()

	out, err := f.svc.Ask(context.Background(), "odio los lunes", "u1")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	want := "Clasificación: NEGATIVE (Confianza: 0.75) (Respondido con: Hugging Face - distilbert-finetuned-sst-2)"
	if out.Answer != want {
		t.Fatalf("answer = %q, want %q", out.Answer, want)
	}
	if out.AudioPath != nil {
		t.Fatalf("audio should be nil without the voice directive")
	}

	if len(f.store.records) != 1 {
		t.Fatalf("records = %d, want 1", len(f.store.records))
	}
	rec := f.store.records[0]
	if rec.ID == "" || rec.UserID != "u1" || rec.Question != "odio los lunes" || rec.Answer != want {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.CreatedAt.IsZero() || time.Since(rec.CreatedAt) > time.Minute {
		t.Fatalf("createdAt not set: %v", rec.CreatedAt)
	}
}

func TestAskVoiceDirective(t *testing.T) {
	f := newFixture()

	out, err := f.svc.Ask(context.Background(), "-voz hola", "u1")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if f.speech.calls != 1 {
		t.Fatalf("speech calls = %d, want 1", f.speech.calls)
	}
	if out.AudioPath == nil || *out.AudioPath != "uploads/audio-1.mp3" {
		t.Fatalf("audio = %v", out.AudioPath)
	}
	if out.Answer != "Hola, ¿cómo puedo ayudarte? (Respondido con: Mensaje Predeterminado)" {
		t.Fatalf("answer = %q", out.Answer)
	}
	// question persists as submitted, marker included
	if f.store.records[0].Question != "-voz hola" {
		t.Fatalf("stored question = %q", f.store.records[0].Question)
	}
}

func TestAskThreadsHistoryOldestFirst(t *testing.T) {
	f := newFixture()
	f.store.records = []models.Interaction{
		{UserID: "u1", Question: "q1", Answer: "a1"},
		{UserID: "u1", Question: "q2", Answer: "a2"},
		{UserID: "u2", Question: "other", Answer: "other"},
	}

	if _, err := f.svc.Ask(context.Background(), "-gpt sigue", "u1"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if f.chat.calls != 1 {
		t.Fatalf("chat calls = %d, want 1", f.chat.calls)
	}

	got := f.chat.got
	if len(got) != 5 {
		t.Fatalf("messages = %d, want 2 records x 2 turns + current = 5", len(got))
	}
	wantSeq := []llm.Message{
		{Role: llm.RoleUser, Content: "q1"},
		{Role: llm.RoleAssistant, Content: "a1"},
		{Role: llm.RoleUser, Content: "q2"},
		{Role: llm.RoleAssistant, Content: "a2"},
		{Role: llm.RoleUser, Content: "-gpt sigue"},
	}
	for i, w := range wantSeq {
		if got[i] != w {
			t.Fatalf("message %d = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestAskPersistFailureFailsRequest(t *testing.T) {
	f := newFixture()
	f.store.insertErr = errors.New("db down")

	out, err := f.svc.Ask(context.Background(), "hola", "u1")
	if !utils.IsCode(err, utils.CodeInternal) {
		t.Fatalf("err = %v, want INTERNAL", err)
	}
	if out != nil {
		t.Fatalf("no partial answer on persist failure, got %+v", out)
	}
}

func TestAskIsNotDeduplicated(t *testing.T) {
	f := newFixture()

	for i := 0; i < 2; i++ {
		if _, err := f.svc.Ask(context.Background(), "hola", "u1"); err != nil {
			t.Fatalf("Ask #%d: %v", i+1, err)
		}
	}
	if len(f.store.records) != 2 {
		t.Fatalf("records = %d, want 2 independent records", len(f.store.records))
	}
	if f.store.records[0].ID == f.store.records[1].ID {
		t.Fatalf("records must have distinct IDs")
	}
}

func TestTranscribeAndAsk(t *testing.T) {
	f := newFixture()

	out, err := f.svc.TranscribeAndAsk(context.Background(), []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("TranscribeAndAsk: %v", err)
	}
	if f.stt.calls != 1 || string(f.stt.got) != string([]byte{1, 2, 3}) {
		t.Fatalf("recognizer not called with the uploaded bytes")
	}
	if out.Transcription != "hola" {
		t.Fatalf("transcription = %q", out.Transcription)
	}
	if out.AudioPath == nil {
		t.Fatalf("voice output is forced on for the audio path")
	}
	if f.store.listCalls != 0 || f.store.insertCalls != 0 {
		t.Fatalf("audio path must not touch the history store")
	}
}

func TestTranscribeAndAskRecognitionFailure(t *testing.T) {
	f := newFixture()
	f.stt.err = errors.New("stt down")

	if _, err := f.svc.TranscribeAndAsk(context.Background(), []byte{1}); !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("err = %v, want UNAVAILABLE", err)
	}
}

func TestListByUserRequiresUserID(t *testing.T) {
	f := newFixture()

	if _, err := f.svc.ListByUser(context.Background(), ""); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT for empty userId")
	}
}
