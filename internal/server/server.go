package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-audio/wav"

	"github.com/hazwanhalim/suaraform/internal/apply"
	"github.com/hazwanhalim/suaraform/internal/engine"
	"github.com/hazwanhalim/suaraform/internal/session"
)

const maxAudioBytes = 10 << 20

// AddRoutes wires the session API and the static web UI into the mux.
func AddRoutes(sessions *session.Sessions, webDir string, mux *http.ServeMux) {
	mux.Handle("/", http.FileServer(http.Dir(webDir)))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /sessions/{sessionId}/start", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		if err := s.Start(req.Context()); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stateResponse{SessionID: s.ID, State: s.State()})
	})

	mux.HandleFunc("POST /sessions/{sessionId}/reset", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		s.Reset()
		writeJSON(w, http.StatusOK, stateResponse{SessionID: s.ID, State: s.State()})
	})

	mux.HandleFunc("POST /sessions/{sessionId}/audio", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		defer req.Body.Close()

		wavData, err := readWaveAudio(io.LimitReader(req.Body, maxAudioBytes))
		if err != nil {
			slog.Warn("rejected audio upload", "session", s.ID, "err", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		transcript, err := s.HandleAudio(req.Context(), wavData)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stateResponse{SessionID: s.ID, Transcript: transcript, State: s.State()})
	})

	mux.HandleFunc("POST /sessions/{sessionId}/transcript", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, fmt.Sprintf("decode request body: %s", err), http.StatusBadRequest)
			return
		}

		if err := s.HandleTranscript(req.Context(), body.Text); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stateResponse{SessionID: s.ID, Transcript: body.Text, State: s.State()})
	})

	mux.HandleFunc("POST /sessions/{sessionId}/fields", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		var values map[string]string
		if err := json.NewDecoder(req.Body).Decode(&values); err != nil {
			http.Error(w, fmt.Sprintf("decode request body: %s", err), http.StatusBadRequest)
			return
		}

		if err := s.SetFields(req.Context(), values); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, s.Record())
	})

	mux.HandleFunc("GET /sessions/{sessionId}/record", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		writeJSON(w, http.StatusOK, reviewResponse{
			Record:      s.Record(),
			Eligibility: apply.EstimateEligibility(s.Record()),
			Documents:   apply.DocumentChecklist(s.Record()),
		})
	})

	mux.HandleFunc("POST /sessions/{sessionId}/submit", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		result, err := s.Submit(req.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})

	mux.HandleFunc("GET /sessions/{sessionId}/events", func(w http.ResponseWriter, req *http.Request) {
		s, err := getSession(sessions, w, req)
		if err != nil {
			return
		}

		serveEvents(s, w, req)
	})
}

type stateResponse struct {
	SessionID  string       `json:"session_id"`
	Transcript string       `json:"transcript,omitempty"`
	State      engine.State `json:"state"`
}

type reviewResponse struct {
	Record      any               `json:"record"`
	Eligibility apply.Eligibility `json:"eligibility"`
	Documents   []apply.DocumentItem `json:"documents"`
}

func getSession(sessions *session.Sessions, w http.ResponseWriter, req *http.Request) (*session.Session, error) {
	id := req.PathValue("sessionId")

	s, err := sessions.GetOrCreate(req.Context(), id)
	if err != nil {
		slog.Error("failed to open session", "session", id, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, err
	}

	return s, nil
}

// serveEvents streams session events over a websocket until the client
// disconnects or the session stops.
func serveEvents(s *session.Session, w http.ResponseWriter, req *http.Request) {
	conn, err := websocket.Accept(w, req, nil)
	if err != nil {
		slog.Warn("accept websocket connection", "session", s.ID, "err", err)
		return
	}
	defer conn.CloseNow()

	ctx := req.Context()
	sub := s.Subscribe(ctx)
	defer sub.Stop()

	writer := &eventWriter{ctx: ctx, conn: conn}

	// Send the current state first so a reconnecting client can render
	// immediately.
	state := s.State()
	if err := writer.WriteEvent(session.Event{Type: "state", State: &state}); err != nil {
		return
	}

	for evt := range sub.ResultChan() {
		if err := writer.WriteEvent(evt); err != nil {
			slog.Debug("websocket subscriber gone", "session", s.ID, "err", err)
			return
		}
	}

	_ = conn.Close(websocket.StatusNormalClosure, "session stopped")
}

// readWaveAudio validates that the request body is 16 bit WAV audio and
// returns the raw bytes for transcription.
func readWaveAudio(reader io.Reader) ([]byte, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	decoder := wav.NewDecoder(bytes.NewReader(b))

	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return nil, fmt.Errorf("read wave file headers: %w", err)
	}

	if decoder.SampleBitDepth() != 16 {
		return nil, fmt.Errorf("wave data with unsupported bit depth of %d provided, expected 16", decoder.SampleBitDepth())
	}

	return b, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *apply.ValidationFailedError

	switch {
	case errors.Is(err, session.ErrConversationActive), errors.Is(err, engine.ErrSubmitted):
		status = http.StatusConflict
	case errors.Is(err, session.ErrNotComplete), errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrNotActive), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusBadRequest
	}

	if validationErr != nil {
		writeJSON(w, status, map[string]any{
			"error":  err.Error(),
			"fields": validationErr.Errors,
		})
		return
	}

	http.Error(w, err.Error(), status)
}
