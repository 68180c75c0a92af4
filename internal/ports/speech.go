package ports

import "context"

type TTSClient interface {
	Synthesize(ctx context.Context, ttsCode, text, outPath string) error // текст → голос (сохраняет файл)
}

type STTClient interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // голос → текст
}
