package provider

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITranslator implements Translator using OpenAI's chat completion API.
type OpenAITranslator struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI translator.
type OpenAIConfig struct {
	APIKey      string
	Model       string  // default: "gpt-4o-mini"
	Temperature float32 // default: 0.2
	BaseURL     string  // optional custom endpoint
}

// NewOpenAITranslator creates a new OpenAI-backed translator.
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAITranslator{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates search keywords into the target language.
func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(targetLang)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: t.temperature,
	})
	if err != nil {
		return "", &Error{Message: "OpenAI API call failed", Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Message: "no response from OpenAI"}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &Error{Message: "empty translation from OpenAI"}
	}

	return translated, nil
}

func buildSystemPrompt(targetLang string) string {
	return fmt.Sprintf(`You translate search keywords into the language with ISO 639-1 code %q.
Reply with the translated keywords only: no quotes, no explanations, no punctuation beyond what the keywords themselves require.
If the keywords are already in the target language, return them unchanged.`, targetLang)
}

var _ Translator = (*OpenAITranslator)(nil)
