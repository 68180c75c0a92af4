package speech

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Vovarama1992/med_translator/internal/translate"
)

type fakeSTT struct {
	text string
	err  error

	gotPath string
	gotData []byte
}

func (f *fakeSTT) Transcribe(_ context.Context, filePath string) (string, error) {
	f.gotPath = filePath
	f.gotData, _ = os.ReadFile(filePath)
	return f.text, f.err
}

func TestTranscribeUpload_Success(t *testing.T) {
	stt := &fakeSTT{text: "take two tablets daily"}
	svc := NewService(stt)

	got, err := svc.TranscribeUpload(context.Background(), strings.NewReader("audio-bytes"), ".ogg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "take two tablets daily" {
		t.Errorf("text = %q", got)
	}

	// провайдер видел именно загруженные байты
	if string(stt.gotData) != "audio-bytes" {
		t.Errorf("stt got %q", stt.gotData)
	}
	if !strings.HasSuffix(stt.gotPath, ".ogg") {
		t.Errorf("temp path %q lost extension", stt.gotPath)
	}

	// временный файл подчищен
	if _, err := os.Stat(stt.gotPath); !os.IsNotExist(err) {
		t.Errorf("temp file %q not removed", stt.gotPath)
	}
}

func TestTranscribeUpload_CleansUpOnProviderError(t *testing.T) {
	stt := &fakeSTT{err: errors.New("boom")}
	svc := NewService(stt)

	_, err := svc.TranscribeUpload(context.Background(), strings.NewReader("audio"), "")
	if !errors.Is(err, translate.ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}

	if _, err := os.Stat(stt.gotPath); !os.IsNotExist(err) {
		t.Errorf("temp file %q not removed after failure", stt.gotPath)
	}
}

func TestTranscribeUpload_NotConfigured(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.TranscribeUpload(context.Background(), strings.NewReader("audio"), ".mp3")
	if !errors.Is(err, translate.ErrNotConfigured) {
		t.Fatalf("got %v, want ErrNotConfigured", err)
	}
}
