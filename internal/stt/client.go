package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/hazwanhalim/suaraform/internal/model"
)

type transcribeResponse struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
	Error         string `json:"error,omitempty"`
}

// Client transcribes WAV speech via the aid portal's transcription
// endpoint.
type Client struct {
	URL    string
	Client *http.Client
}

// Transcribe uploads mono 16kHz linear PCM WAV data and returns the
// recognized text.
func (c *Client) Transcribe(ctx context.Context, wavData []byte, loc model.Locale) (string, error) {
	var b bytes.Buffer
	multipartWriter := multipart.NewWriter(&b)

	part, err := multipartWriter.CreateFormFile("audio", "input.wav")
	if err != nil {
		return "", fmt.Errorf("creating multipart form file: %w", err)
	}

	_, err = part.Write(wavData)
	if err != nil {
		return "", fmt.Errorf("write data to multipart writer: %w", err)
	}

	err = multipartWriter.WriteField("language", string(loc))
	if err != nil {
		return "", fmt.Errorf("write multipart request field: %w", err)
	}

	err = multipartWriter.Close()
	if err != nil {
		return "", fmt.Errorf("multipart writer close: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL+"/voice/transcribe", &b)
	if err != nil {
		return "", fmt.Errorf("new transcription request: %w", err)
	}
	req.Header.Set("Content-Type", multipartWriter.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription server responded with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var result transcribeResponse
	err = json.Unmarshal(body, &result)
	if err != nil {
		return "", fmt.Errorf("unmarshal body: %w", err)
	}

	if !result.Success {
		return "", fmt.Errorf("transcription failed: %s", result.Error)
	}

	return result.Transcription, nil
}
