package translate

import (
	"context"
	"fmt"
	"html"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type GoogleTranslator struct {
	client *gtranslate.Client
}

func NewGoogleTranslator(ctx context.Context, credentialsFile string) (*GoogleTranslator, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS not set: %w", ErrNotConfigured)
	}

	client, err := gtranslate.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleTranslator{client: client}, nil
}

func (t *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %v", target, err)
	}

	var opts *gtranslate.Options
	if source != "" && source != "auto" {
		sourceTag, err := language.Parse(source)
		if err != nil {
			return "", fmt.Errorf("invalid source language %q: %v", source, err)
		}
		opts = &gtranslate.Options{Source: sourceTag}
	}

	translations, err := t.client.Translate(ctx, []string{text}, targetTag, opts)
	if err != nil {
		return "", fmt.Errorf("translation failed: %v", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	// API отдаёт текст с html-сущностями
	return html.UnescapeString(translations[0].Text), nil
}

func (t *GoogleTranslator) Close() error {
	return t.client.Close()
}
