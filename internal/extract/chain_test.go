package extract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/model"
)

type stubExtractor struct {
	value string
	err   error
	calls int
}

func (e *stubExtractor) Extract(context.Context, string, string, form.Kind) (string, error) {
	e.calls++
	return e.value, e.err
}

func TestChainPrefersFirstUsableResult(t *testing.T) {
	first := &stubExtractor{value: "Ahmad bin Ali"}
	second := &stubExtractor{value: "unused"}

	testee := &Chain{Extractors: []Extractor{first, second}}

	value, err := testee.Extract(context.Background(), "my name is Ahmad bin Ali", "name", form.KindText)
	require.NoError(t, err)
	require.Equal(t, "Ahmad bin Ali", value)
	require.Zero(t, second.calls, "second extractor should not be called")
}

func TestChainSkipsFailingExtractor(t *testing.T) {
	first := &stubExtractor{err: errors.New("service unavailable")}
	second := &stubExtractor{value: "900101145678"}

	testee := &Chain{Extractors: []Extractor{first, second}}

	value, err := testee.Extract(context.Background(), "nine zero zero ...", "ic_number", form.KindText)
	require.NoError(t, err)
	require.Equal(t, "900101145678", value)
}

func TestChainFallsBackToTranscript(t *testing.T) {
	testee := &Chain{Extractors: []Extractor{
		&stubExtractor{err: errors.New("down")},
		&stubExtractor{value: ""},
	}}

	value, err := testee.Extract(context.Background(), "Ahmad bin Ali", "name", form.KindText)
	require.NoError(t, err)
	require.Equal(t, "Ahmad bin Ali", value, "raw transcript fallback")
}

func TestClientExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/voice/extract-field", req.URL.Path)

		var body extractRequest
		err := json.NewDecoder(req.Body).Decode(&body)
		require.NoError(t, err)
		require.Equal(t, "my name is Ahmad bin Ali", body.Transcript)
		require.Equal(t, "name", body.FieldName)
		require.Equal(t, "text", body.FieldType)
		require.Equal(t, "en", body.Language)

		json.NewEncoder(w).Encode(extractResponse{Success: true, Extracted: "Ahmad bin Ali"})
	}))
	defer srv.Close()

	testee := &Client{URL: srv.URL, Locale: model.LocaleEnglish, Client: srv.Client()}

	value, err := testee.Extract(context.Background(), "my name is Ahmad bin Ali", "name", form.KindText)
	require.NoError(t, err)
	require.Equal(t, "Ahmad bin Ali", value)
}
