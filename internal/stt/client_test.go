package stt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/model"
)

func TestClientTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, "/voice/transcribe", req.URL.Path)

		err := req.ParseMultipartForm(1 << 20)
		require.NoError(t, err)
		require.Equal(t, "ms", req.FormValue("language"))

		file, _, err := req.FormFile("audio")
		require.NoError(t, err)
		defer file.Close()

		b, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte("fake wav data"), b, "uploaded audio")

		json.NewEncoder(w).Encode(transcribeResponse{
			Success:       true,
			Transcription: "Ahmad bin Ali",
		})
	}))
	defer srv.Close()

	testee := &Client{URL: srv.URL, Client: srv.Client()}

	text, err := testee.Transcribe(context.Background(), []byte("fake wav data"), model.LocaleMalay)
	require.NoError(t, err)
	require.Equal(t, "Ahmad bin Ali", text)
}

func TestClientTranscribeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(transcribeResponse{Success: false, Error: "model not loaded"})
	}))
	defer srv.Close()

	testee := &Client{URL: srv.URL, Client: srv.Client()}

	_, err := testee.Transcribe(context.Background(), []byte("fake wav data"), model.LocaleEnglish)
	require.ErrorContains(t, err, "model not loaded")
}
