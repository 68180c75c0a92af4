package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/med_translator/internal/language"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAITranslator struct {
	client  *openai.Client
	catalog *language.Catalog
}

func NewOpenAITranslator(apiKey string, catalog *language.Catalog) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set: %w", ErrNotConfigured)
	}
	return &OpenAITranslator{
		client:  openai.NewClient(apiKey),
		catalog: catalog,
	}, nil
}

// Промпт фиксированный: медицинский перевод, ничего от себя.
func (t *OpenAITranslator) buildPrompt(source, target string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a medical translation engine. Translate the user's message into %s.", t.catalog.Name(target))
	if source != "" && source != "auto" {
		fmt.Fprintf(&b, " The source language is %s.", t.catalog.Name(source))
	}
	b.WriteString(" Preserve clinical meaning, medication names, dosages and units exactly.")
	b.WriteString(" Reply with the translation only, no explanations.")
	return b.String()
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: t.buildPrompt(source, target)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %s", describeOpenAIError(err))
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("openai: empty completion")
	}
	return translated, nil
}

// диагностика ошибок GPT
func describeOpenAIError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "invalid API key"
	case strings.Contains(msg, "status code: 404"):
		return "model not found"
	case strings.Contains(msg, "status code: 429"):
		return "rate limit exceeded"
	case strings.Contains(msg, "status code: 400"):
		return "bad request"
	case strings.Contains(msg, "status code: 500"):
		return "provider internal error"
	}
	return err.Error()
}
