package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hazwanhalim/suaraform/internal/apply"
	"github.com/hazwanhalim/suaraform/internal/engine"
	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/metrics"
	"github.com/hazwanhalim/suaraform/internal/model"
	"github.com/hazwanhalim/suaraform/internal/pubsub"
	"github.com/hazwanhalim/suaraform/internal/store"
)

var (
	// ErrConversationActive is returned when a manual field edit arrives
	// while the voice conversation still owns the record.
	ErrConversationActive = errors.New("conversation is active, stop it before editing fields manually")
	// ErrNotComplete is returned when submission is requested before all
	// questions were answered.
	ErrNotComplete = errors.New("conversation is not complete yet")
)

// Event is what a session streams to its websocket subscribers.
type Event struct {
	Type      string        `json:"type"`
	State     *engine.State `json:"state,omitempty"`
	Prompt    string        `json:"prompt,omitempty"`
	PromptWAV []byte        `json:"prompt_wav,omitempty"`
	Reference string        `json:"reference_number,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, wavData []byte, loc model.Locale) (string, error)
}

// Synthesizer renders prompt text as WAV audio for browser playback.
type Synthesizer interface {
	GenerateAudio(ctx context.Context, msg string, loc model.Locale) ([]byte, error)
}

// Session binds one applicant's conversation to its record, event
// stream and draft persistence.
type Session struct {
	ID string

	loc     model.Locale
	engine  *engine.Engine
	events  *pubsub.PubSub[Event]
	stt     Transcriber
	backend *apply.Client
	drafts  *store.DraftStore
}

func newSession(id string, deps Dependencies, record *model.ApplicationRecord) *Session {
	s := &Session{
		ID:      id,
		loc:     deps.Locale,
		events:  pubsub.New[Event](),
		stt:     deps.Transcriber,
		backend: deps.Backend,
		drafts:  deps.Drafts,
	}

	speaker := &eventSpeaker{
		loc:    deps.Locale,
		tts:    deps.Synthesizer,
		events: s.events,
	}

	s.engine = engine.New(engine.Config{
		Locale:    deps.Locale,
		Speaker:   speaker,
		Extractor: deps.Extractor,
		Record:    record,
		OnComplete: func(*model.ApplicationRecord) {
			metrics.ConversationsCompleted.Inc()
		},
		OnState: func(state engine.State) {
			s.events.Publish(Event{Type: "state", State: &state})
		},
	})

	return s
}

// Record returns the session's application record.
func (s *Session) Record() *model.ApplicationRecord {
	return s.engine.Record()
}

func (s *Session) State() engine.State {
	return s.engine.State()
}

func (s *Session) Subscribe(ctx context.Context) pubsub.Subscription[Event] {
	return s.events.Subscribe(ctx)
}

// Start begins or resumes the voice conversation.
func (s *Session) Start(ctx context.Context) error {
	return s.engine.Start(ctx)
}

// Reset stops the conversation without discarding recorded answers.
func (s *Session) Reset() {
	s.engine.Reset()
}

// HandleTranscript feeds one utterance into the conversation and
// persists the resulting draft.
func (s *Session) HandleTranscript(ctx context.Context, text string) error {
	err := s.engine.HandleTranscript(ctx, text)
	if err != nil {
		return err
	}

	s.saveDraft(ctx)

	return nil
}

// HandleAudio transcribes a recorded utterance and feeds it into the
// conversation.
func (s *Session) HandleAudio(ctx context.Context, wavData []byte) (string, error) {
	text, err := s.stt.Transcribe(ctx, wavData, s.loc)
	if err != nil {
		return "", fmt.Errorf("transcribe utterance: %w", err)
	}

	s.events.Publish(Event{Type: "transcript", Prompt: text})

	return text, s.HandleTranscript(ctx, text)
}

// SetFields applies manual edits from the review screen, keyed by field
// descriptor key. Edits are rejected while the conversation is active.
func (s *Session) SetFields(ctx context.Context, values map[string]string) error {
	if s.engine.Active() {
		return ErrConversationActive
	}

	record := s.engine.Record()
	if record.Submitted {
		return engine.ErrSubmitted
	}

	schema := form.NewSchema()
	schema.Materialize(len(record.Children))

	for key, value := range values {
		f, ok := fieldByKey(schema, key)
		if !ok {
			return fmt.Errorf("unknown field: %s", key)
		}

		if f.Kind == form.KindBoolean {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("field %s expects a boolean value: %w", key, err)
			}

			if err := form.SetBool(record, f, b); err != nil {
				return err
			}

			continue
		}

		if err := form.SetValue(record, f, value); err != nil {
			return fmt.Errorf("set field %s: %w", key, err)
		}
	}

	state := s.engine.State()
	s.events.Publish(Event{Type: "state", State: &state})
	s.saveDraft(ctx)

	return nil
}

// Submit sends the completed application to the portal backend.
func (s *Session) Submit(ctx context.Context) (apply.SubmissionResult, error) {
	if s.engine.Active() {
		return apply.SubmissionResult{}, ErrConversationActive
	}

	if !s.engine.State().Complete {
		return apply.SubmissionResult{}, ErrNotComplete
	}

	result, err := s.backend.Submit(ctx, s.engine.Record())
	if err != nil {
		return result, err
	}

	s.events.Publish(Event{Type: "submitted", Reference: result.ReferenceNumber})

	if s.drafts != nil {
		if err := s.drafts.Delete(ctx, s.ID); err != nil {
			slog.Warn("failed to delete submitted draft", "session", s.ID, "err", err)
		}
	}

	return result, nil
}

func (s *Session) Stop() {
	s.engine.Reset()
	s.events.Stop()
}

func (s *Session) saveDraft(ctx context.Context) {
	if s.drafts == nil {
		return
	}

	if err := s.drafts.Save(ctx, s.ID, s.engine.Record()); err != nil {
		slog.Warn("failed to persist draft", "session", s.ID, "err", err)
	}
}

func fieldByKey(schema *form.Schema, key string) (form.FieldDescriptor, bool) {
	for _, f := range schema.Fields() {
		if !f.Placeholder && f.Key == key {
			return f, true
		}
	}

	return form.FieldDescriptor{}, false
}

// eventSpeaker delivers prompts as events instead of playing them
// locally. TTS failures degrade to text-only prompts.
type eventSpeaker struct {
	loc    model.Locale
	tts    Synthesizer
	events *pubsub.PubSub[Event]
}

func (s *eventSpeaker) Speak(ctx context.Context, text string) error {
	evt := Event{Type: "prompt", Prompt: text}

	if s.tts != nil {
		wav, err := s.tts.GenerateAudio(ctx, text, s.loc)
		if err != nil {
			slog.Warn("prompt synthesis failed, sending text only", "err", err)
		} else {
			evt.PromptWAV = wav
		}
	}

	s.events.Publish(evt)

	return nil
}
