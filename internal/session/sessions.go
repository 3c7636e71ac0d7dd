package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/hazwanhalim/suaraform/internal/apply"
	"github.com/hazwanhalim/suaraform/internal/engine"
	"github.com/hazwanhalim/suaraform/internal/metrics"
	"github.com/hazwanhalim/suaraform/internal/model"
	"github.com/hazwanhalim/suaraform/internal/store"
)

// Dependencies are the shared collaborators every session is built
// from. Drafts and Synthesizer may be nil.
type Dependencies struct {
	Locale      model.Locale
	Transcriber Transcriber
	Synthesizer Synthesizer
	Extractor   engine.Extractor
	Backend     *apply.Client
	Drafts      *store.DraftStore
}

// Sessions is the registry of live conversations, keyed by session id.
type Sessions struct {
	mutex    sync.Mutex
	sessions map[string]*Session
	deps     Dependencies
}

func NewSessions(deps Dependencies) *Sessions {
	return &Sessions{
		sessions: map[string]*Session{},
		deps:     deps,
	}
}

// GetOrCreate returns the session with the given id, creating it on
// first use. A previously persisted draft is restored into the new
// session's record. An empty id allocates a fresh one.
func (r *Sessions) GetOrCreate(ctx context.Context, id string) (*Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if id == "" {
		id = uuid.NewString()
	}

	s, ok := r.sessions[id]
	if ok {
		return s, nil
	}

	record, err := r.loadDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	s = newSession(id, r.deps, record)
	r.sessions[id] = s
	metrics.SessionsActive.Inc()

	return s, nil
}

// Get returns an existing session or false.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	s, ok := r.sessions[id]

	return s, ok
}

// Remove stops a session and drops it from the registry.
func (r *Sessions) Remove(id string) {
	r.mutex.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mutex.Unlock()

	if ok {
		s.Stop()
		metrics.SessionsActive.Dec()
	}
}

// Stop tears down all sessions.
func (r *Sessions) Stop() {
	r.mutex.Lock()
	sessions := r.sessions
	r.sessions = map[string]*Session{}
	r.mutex.Unlock()

	for range sessions {
		metrics.SessionsActive.Dec()
	}
	for _, s := range sessions {
		s.Stop()
	}
}

func (r *Sessions) loadDraft(ctx context.Context, id string) (*model.ApplicationRecord, error) {
	if r.deps.Drafts == nil {
		return &model.ApplicationRecord{}, nil
	}

	record, err := r.deps.Drafts.Load(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &model.ApplicationRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}
