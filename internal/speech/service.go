package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/med_translator/internal/ports"
	"github.com/Vovarama1992/med_translator/internal/translate"
	"github.com/google/uuid"
)

const sttTimeout = 60 * time.Second

// Service заворачивает STT: загруженный буфер → временный файл → провайдер.
type Service struct {
	stt ports.STTClient
}

func NewService(stt ports.STTClient) *Service {
	return &Service{stt: stt}
}

// TranscribeUpload пишет загруженное аудио во временный файл, отдаёт его
// провайдеру и подчищает файл на любом исходе.
func (s *Service) TranscribeUpload(ctx context.Context, audio io.Reader, ext string) (string, error) {
	if s.stt == nil {
		return "", fmt.Errorf("stt %w", translate.ErrNotConfigured)
	}

	if ext == "" {
		ext = ".mp3"
	}
	tmpPath := filepath.Join(os.TempDir(), "upload-"+uuid.NewString()+ext)

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	_, copyErr := io.Copy(f, audio)
	closeErr := f.Close()
	defer os.Remove(tmpPath)

	if copyErr != nil {
		return "", fmt.Errorf("write temp file: %w", copyErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close temp file: %w", closeErr)
	}

	sttCtx, cancel := context.WithTimeout(ctx, sttTimeout)
	defer cancel()

	text, err := s.stt.Transcribe(sttCtx, tmpPath)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %v: %w", err, translate.ErrUpstream)
	}

	return text, nil
}
