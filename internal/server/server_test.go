package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/apply"
	"github.com/hazwanhalim/suaraform/internal/engine"
	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/model"
	"github.com/hazwanhalim/suaraform/internal/session"
)

type stubTranscriber struct{}

func (stubTranscriber) Transcribe(context.Context, []byte, model.Locale) (string, error) {
	return "Ahmad bin Ali", nil
}

type echoExtractor struct{}

func (echoExtractor) Extract(_ context.Context, transcript, _ string, _ form.Kind) (string, error) {
	return transcript, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(apply.SubmissionResult{Success: true, ReferenceNumber: "STR-1", Status: "pending_review"})
	}))
	t.Cleanup(backend.Close)

	sessions := session.NewSessions(session.Dependencies{
		Locale:      model.LocaleEnglish,
		Transcriber: stubTranscriber{},
		Extractor:   echoExtractor{},
		Backend: &apply.Client{
			URL:    backend.URL,
			Locale: model.LocaleEnglish,
			Client: backend.Client(),
		},
	})
	t.Cleanup(sessions.Stop)

	mux := http.NewServeMux()
	AddRoutes(sessions, t.TempDir(), mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := client.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)

	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTranscriptRoute(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	resp, err := client.Post(srv.URL+"/sessions/s1/start", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, client, srv.URL+"/sessions/s1/transcript", map[string]string{"text": "Ahmad bin Ali"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body stateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "s1", body.SessionID)
	require.Equal(t, engine.ModeAwaitingConfirmation, body.State.Mode)
	require.Equal(t, "Ahmad bin Ali", body.State.Pending)
}

func TestTranscriptRouteWhileIdle(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.Client(), srv.URL+"/sessions/s2/transcript", map[string]string{"text": "hello"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode, "transcript without an active conversation")
}

func TestFieldsRouteConflictsWhileActive(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	resp, err := client.Post(srv.URL+"/sessions/s3/start", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	resp = postJSON(t, client, srv.URL+"/sessions/s3/fields", map[string]string{"applicant.name": "Ahmad"})
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode, "manual edit while conversation active")

	resp, err = client.Post(srv.URL+"/sessions/s3/reset", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	resp = postJSON(t, client, srv.URL+"/sessions/s3/fields", map[string]string{"applicant.name": "Ahmad"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "manual edit after reset")

	var record model.ApplicationRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	require.Equal(t, "Ahmad", record.Applicant.Name)
}

func TestSubmitRouteRejectsIncompleteApplication(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/sessions/s4/submit", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRecordRoute(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	resp := postJSON(t, client, srv.URL+"/sessions/s5/fields", map[string]string{
		"applicant.name":           "Ahmad",
		"applicant.monthly_income": "1500",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err := client.Get(srv.URL + "/sessions/s5/record")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var review struct {
		Record      model.ApplicationRecord `json:"record"`
		Eligibility apply.Eligibility       `json:"eligibility"`
		Documents   []apply.DocumentItem    `json:"documents"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&review))
	require.Equal(t, "Ahmad", review.Record.Applicant.Name)
	require.True(t, review.Eligibility.Eligible, "eligibility estimate for low income")
	require.NotEmpty(t, review.Documents, "document checklist")
}

func TestAudioRouteRejectsNonWavBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/sessions/s6/audio", "audio/wav", bytes.NewReader([]byte("not a wav file")))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
