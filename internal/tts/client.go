package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hazwanhalim/suaraform/internal/model"
)

// Client synthesizes speech via an OpenAI-compatible audio endpoint,
// returning 16-bit WAV data.
type Client struct {
	URL    string
	Model  string
	Voice  string
	APIKey string
	Client *http.Client
}

func (c *Client) GenerateAudio(ctx context.Context, msg string, loc model.Locale) ([]byte, error) {
	params := map[string]interface{}{
		"input":    msg,
		"model":    c.Model,
		"language": string(loc),
	}

	if c.Voice != "" {
		params["voice"] = c.Voice
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal speech generation params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build speech generation request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate speech: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("generate speech: server responded with %d", resp.StatusCode)
	}

	wavData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read speech generation response body: %w", err)
	}

	return wavData, nil
}
