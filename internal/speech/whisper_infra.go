package speech

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type WhisperClient struct {
	client *openai.Client
}

func NewWhisperClient(apiKey string) (*WhisperClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return &WhisperClient{client: openai.NewClient(apiKey)}, nil
}

func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
	})
	if err != nil {
		return "", fmt.Errorf("whisper request: %w", err)
	}
	return resp.Text, nil
}
