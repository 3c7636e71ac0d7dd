package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/model"
)

type extractRequest struct {
	Transcript string `json:"transcript"`
	FieldName  string `json:"field_name"`
	FieldType  string `json:"field_type"`
	Language   string `json:"language"`
}

type extractResponse struct {
	Success   bool   `json:"success"`
	Extracted string `json:"extracted"`
	Error     string `json:"error,omitempty"`
}

// Client pulls a clean field value out of a raw transcript via the aid
// portal's NLU endpoint.
type Client struct {
	URL    string
	Locale model.Locale
	Client *http.Client
}

func (c *Client) Extract(ctx context.Context, transcript, fieldName string, kind form.Kind) (string, error) {
	body, err := json.Marshal(extractRequest{
		Transcript: transcript,
		FieldName:  fieldName,
		FieldType:  string(kind),
		Language:   string(c.Locale),
	})
	if err != nil {
		return "", fmt.Errorf("marshal extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL+"/voice/extract-field", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extract field: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction server responded with status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read extraction response body: %w", err)
	}

	var result extractResponse
	err = json.Unmarshal(b, &result)
	if err != nil {
		return "", fmt.Errorf("unmarshal extraction response: %w", err)
	}

	if !result.Success {
		return "", fmt.Errorf("extraction failed: %s", result.Error)
	}

	return result.Extracted, nil
}
