package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/model"
)

const extractionPromptTpl = `You clean up voice transcripts for a government aid application form.
The user was asked for the field %q (type: %s, language: %s) and answered: %q
Respond with ONLY the cleaned field value, nothing else.
For names, return the properly capitalized name.
For numbers and IC numbers, return digits only.
If the answer contains no usable value, respond with an empty string.`

// LLMExtractor extracts field values using an OpenAI-compatible chat
// model. It serves as a stand-in when the portal's extraction endpoint
// is unavailable, e.g. in self-hosted deployments.
type LLMExtractor struct {
	ServerURL   string
	APIKey      string
	Model       string
	Temperature float64
	Locale      model.Locale
	HTTPClient  *http.Client

	llm *openai.LLM
}

func (e *LLMExtractor) Extract(ctx context.Context, transcript, fieldName string, kind form.Kind) (string, error) {
	if e.llm == nil {
		llm, err := openai.New(
			openai.WithHTTPClient(e.HTTPClient),
			openai.WithBaseURL(e.ServerURL+"/v1"),
			openai.WithToken(e.APIKey),
			openai.WithModel(e.Model),
		)
		if err != nil {
			return "", err
		}

		e.llm = llm
	}

	prompt := fmt.Sprintf(extractionPromptTpl, fieldName, kind, e.Locale, transcript)

	result, err := e.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithTemperature(e.Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("llm field extraction: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("llm field extraction: empty response")
	}

	return strings.TrimSpace(result.Choices[0].Content), nil
}
