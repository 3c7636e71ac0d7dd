package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/intent"
	"github.com/hazwanhalim/suaraform/internal/locale"
	"github.com/hazwanhalim/suaraform/internal/model"
)

// Mode is the conversation's single state discriminator.
type Mode string

const (
	ModeIdle                   Mode = "idle"
	ModeAwaitingValue          Mode = "awaiting_value"
	ModeAwaitingConfirmation   Mode = "awaiting_confirmation"
	ModeAwaitingChangeDecision Mode = "awaiting_change_decision"
	ModeAwaitingChildrenCount  Mode = "awaiting_children_count"
)

var (
	// ErrNotActive is returned when a transcript arrives while no
	// conversation is running.
	ErrNotActive = errors.New("conversation is not active")
	// ErrSubmitted is returned when a conversation is started on an
	// already submitted application.
	ErrSubmitted = errors.New("application was already submitted")
)

// Speaker voices a prompt and returns once it has been delivered.
// Implementations must cancel any still-playing utterance first so at
// most one utterance is ever active.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Extractor pulls a clean field value out of a raw transcript.
type Extractor interface {
	Extract(ctx context.Context, transcript, fieldName string, kind form.Kind) (string, error)
}

// State is a snapshot of the conversation for UI consumption.
type State struct {
	Mode     Mode   `json:"mode"`
	Step     int    `json:"step"`
	Total    int    `json:"total"`
	Prompt   string `json:"prompt"`
	Pending  string `json:"pending,omitempty"`
	Complete bool   `json:"complete"`
}

type Config struct {
	Locale    model.Locale
	Speaker   Speaker
	Extractor Extractor
	Record    *model.ApplicationRecord

	// OnComplete fires once all questions are answered, signalling the
	// review step.
	OnComplete func(*model.ApplicationRecord)
	// OnState fires after every state transition.
	OnState func(State)
}

// Engine drives the voice conversation over the form schema, mutating
// the application record as answers are confirmed.
//
// All methods are safe for concurrent use; the internal lock also makes
// speaking and listening mutually exclusive, since prompts are spoken
// while the state transition that produced them still holds the lock.
type Engine struct {
	mutex sync.Mutex

	loc       model.Locale
	table     locale.Table
	speaker   Speaker
	extractor Extractor
	record    *model.ApplicationRecord
	schema    *form.Schema

	cursor   int
	mode     Mode
	pending  string
	prompt   string
	complete bool

	onComplete func(*model.ApplicationRecord)
	onState    func(State)
}

func New(cfg Config) *Engine {
	record := cfg.Record
	if record == nil {
		record = &model.ApplicationRecord{}
	}

	return &Engine{
		loc:        cfg.Locale,
		table:      locale.For(cfg.Locale),
		speaker:    cfg.Speaker,
		extractor:  cfg.Extractor,
		record:     record,
		schema:     form.NewSchema(),
		cursor:     -1,
		mode:       ModeIdle,
		onComplete: cfg.OnComplete,
		onState:    cfg.OnState,
	}
}

// Record returns the application record the engine mutates.
func (e *Engine) Record() *model.ApplicationRecord {
	return e.record
}

func (e *Engine) State() State {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.state()
}

// Active reports whether a voice conversation is in progress. Manual
// field edits are only allowed while inactive.
func (e *Engine) Active() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.mode != ModeIdle
}

// Start begins (or resumes) the conversation at the first unanswered
// applicable field.
func (e *Engine) Start(ctx context.Context) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.record.Submitted {
		return ErrSubmitted
	}

	e.complete = false

	return e.advance(ctx, 0)
}

// Reset aborts the conversation, returning to idle without touching
// recorded answers.
func (e *Engine) Reset() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.mode = ModeIdle
	e.cursor = -1
	e.pending = ""
	e.notify()
}

// HandleTranscript feeds one recognized utterance into the state
// machine, dispatched by the current mode.
func (e *Engine) HandleTranscript(ctx context.Context, text string) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.record.Submitted {
		return ErrSubmitted
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return e.say(ctx, e.table.Retry)
	}

	slog.Debug("transcript received", "mode", e.mode, "cursor", e.cursor, "text", text)

	switch e.mode {
	case ModeAwaitingChildrenCount:
		return e.handleChildrenCount(ctx, text)
	case ModeAwaitingChangeDecision:
		return e.handleChangeDecision(ctx, text)
	case ModeAwaitingConfirmation:
		return e.handleConfirmation(ctx, text)
	case ModeAwaitingValue:
		return e.handleValue(ctx, text)
	}

	return ErrNotActive
}

// advance scans forward from the given index for the next question to
// ask, skipping conditional fields whose predicate does not hold and
// fields answered in change-decision "keep" branches.
func (e *Engine) advance(ctx context.Context, from int) error {
	fields := e.schema.Fields()

	for i := from; i < len(fields); i++ {
		f := fields[i]

		if f.Placeholder {
			if e.schema.Materialized() {
				continue
			}

			e.cursor = i
			e.mode = ModeAwaitingChildrenCount

			return e.say(ctx, e.table.ChildrenCount)
		}

		if !form.Asked(e.record, f) {
			continue
		}

		value, recorded := form.Value(e.record, f)

		if f.Kind == form.KindBoolean {
			e.cursor = i

			if recorded {
				b, _ := strconv.ParseBool(value)
				e.mode = ModeAwaitingChangeDecision

				return e.say(ctx, e.table.ChangePrompt(e.table.BoolWord(b)))
			}

			// Boolean questions are their own confirmation: the yes/no
			// answer IS the value.
			e.mode = ModeAwaitingConfirmation
			e.pending = ""

			return e.say(ctx, e.question(f))
		}

		if recorded {
			e.cursor = i
			e.mode = ModeAwaitingChangeDecision

			if f.Kind == form.KindSelect {
				value = e.table.MaritalWord(model.MaritalStatus(value))
			}

			return e.say(ctx, e.table.ChangePrompt(value))
		}

		e.cursor = i
		e.mode = ModeAwaitingValue
		step, total := e.progress(i)

		return e.say(ctx, e.table.ProgressQuestion(step, total, e.question(f)))
	}

	e.cursor = -1
	e.mode = ModeIdle
	e.complete = true

	err := e.say(ctx, e.table.Completed)

	if e.onComplete != nil {
		e.onComplete(e.record)
	}

	return err
}

func (e *Engine) handleChildrenCount(ctx context.Context, text string) error {
	n, ok := intent.ChildCount(text, e.loc)
	if !ok {
		// No count signal at all is treated as "no children".
		n = 0
	}

	if n < 0 {
		n = 0
	}
	if n > model.MaxChildren {
		n = model.MaxChildren
	}

	e.record.SetChildren(n)

	from := e.cursor
	e.schema.Materialize(n)

	return e.advance(ctx, from)
}

func (e *Engine) handleChangeDecision(ctx context.Context, text string) error {
	yes, ok := intent.YesNo(text, e.loc)
	if !ok {
		return e.say(ctx, e.table.Retry)
	}

	if yes {
		f := e.schema.Fields()[e.cursor]

		if f.Kind == form.KindBoolean {
			e.mode = ModeAwaitingConfirmation
			e.pending = ""
		} else {
			e.mode = ModeAwaitingValue
			e.pending = ""
		}

		return e.say(ctx, e.question(f))
	}

	return e.advance(ctx, e.cursor+1)
}

func (e *Engine) handleConfirmation(ctx context.Context, text string) error {
	f := e.schema.Fields()[e.cursor]

	yes, ok := intent.YesNo(text, e.loc)
	if !ok {
		return e.say(ctx, e.table.Retry)
	}

	if f.Kind == form.KindBoolean {
		if err := form.SetBool(e.record, f, yes); err != nil {
			return fmt.Errorf("record boolean answer: %w", err)
		}

		return e.advance(ctx, e.cursor+1)
	}

	if !yes {
		e.pending = ""
		e.mode = ModeAwaitingValue

		return e.say(ctx, e.question(f))
	}

	value := e.pending
	if f.Kind == form.KindSelect {
		value = string(intent.MaritalStatus(value))
	}

	if err := form.SetValue(e.record, f, value); err != nil {
		slog.Warn("rejected answer value", "field", f.Key, "err", err)
		e.pending = ""
		e.mode = ModeAwaitingValue

		return e.say(ctx, e.table.Retry)
	}

	e.pending = ""

	return e.advance(ctx, e.cursor+1)
}

func (e *Engine) handleValue(ctx context.Context, text string) error {
	f := e.schema.Fields()[e.cursor]

	if intent.Classify(text, e.loc) == intent.Skip {
		return e.advance(ctx, e.cursor+1)
	}

	value, err := e.extractor.Extract(ctx, text, f.Field, f.Kind)
	if err != nil || strings.TrimSpace(value) == "" {
		if err != nil {
			slog.Warn("field extraction failed, falling back to raw transcript", "field", f.Key, "err", err)
		}

		value = text
	}

	e.pending = strings.TrimSpace(value)
	e.mode = ModeAwaitingConfirmation

	return e.say(ctx, e.table.ConfirmPrompt(e.pending))
}

func (e *Engine) question(f form.FieldDescriptor) string {
	if f.Section == form.SectionChildren {
		if f.Field == "name" {
			return e.table.ChildNameQuestion(f.ChildIndex + 1)
		}

		return e.table.ChildICQuestion(f.ChildIndex + 1)
	}

	return e.table.FieldQuestion(f.Key)
}

// progress numbers the current question among all currently applicable
// questions. The unmaterialized children placeholder counts as one.
func (e *Engine) progress(idx int) (step, total int) {
	for i, f := range e.schema.Fields() {
		if !f.Placeholder && !form.Asked(e.record, f) {
			continue
		}

		total++

		if i <= idx {
			step++
		}
	}

	return step, total
}

// say records the prompt for UI echo, notifies observers and then
// speaks. Speaking happens under the engine lock, which is what keeps
// speech output and transcript intake mutually exclusive.
func (e *Engine) say(ctx context.Context, text string) error {
	e.prompt = text
	e.notify()

	if e.speaker == nil {
		return nil
	}

	if err := e.speaker.Speak(ctx, text); err != nil {
		return fmt.Errorf("speak prompt: %w", err)
	}

	return nil
}

func (e *Engine) state() State {
	step, total := 0, 0
	if e.cursor >= 0 {
		step, total = e.progress(e.cursor)
	}

	return State{
		Mode:     e.mode,
		Step:     step,
		Total:    total,
		Prompt:   e.prompt,
		Pending:  e.pending,
		Complete: e.complete,
	}
}

func (e *Engine) notify() {
	if e.onState != nil {
		e.onState(e.state())
	}
}
