package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/med_translator/internal/audiostore"
	"github.com/Vovarama1992/med_translator/internal/language"
	"github.com/Vovarama1992/med_translator/internal/ports"
	"github.com/Vovarama1992/med_translator/internal/speech"
	"github.com/Vovarama1992/med_translator/internal/translate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeTranslator struct {
	out string
	err error
}

func (f *fakeTranslator) Translate(_ context.Context, _, _, _ string) (string, error) {
	return f.out, f.err
}

type fakeTTS struct {
	err error
}

func (f *fakeTTS) Synthesize(_ context.Context, _, _, outPath string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("mp3-bytes"), 0644)
}

type fakeSTT struct {
	text string
	err  error
}

func (f *fakeSTT) Transcribe(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func newTestRouter(t *testing.T, tr ports.Translator, tts ports.TTSClient, stt ports.STTClient) chi.Router {
	t.Helper()

	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	catalog := language.NewCatalog()

	store, err := audiostore.New(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	translateService := translate.NewService(tr, tts, store, nil, catalog, zl)
	speechService := speech.NewService(stt)

	r := chi.NewRouter()
	RegisterRoutes(
		r,
		NewTranslateHandler(translateService, catalog, zl),
		NewAudioHandler(store, zl),
		NewTranscribeHandler(speechService, zl),
	)
	return r
}

func postJSON(t *testing.T, r chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestRoot(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, &fakeSTT{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg, _ := decodeBody(t, rec)["message"].(string); msg == "" {
		t.Error("empty liveness message")
	}
}

func TestLanguages(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, &fakeSTT{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/languages", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Languages []language.Entry `json:"languages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Languages) == 0 {
		t.Fatal("empty language list")
	}

	found := false
	for _, e := range body.Languages {
		if e.Code == "es" && e.Name == "Spanish" {
			found = true
		}
	}
	if !found {
		t.Error("es/Spanish missing from /languages")
	}
}

func TestTranslateTTS_EmptyText(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{out: "hola"}, &fakeTTS{}, &fakeSTT{})

	rec := postJSON(t, r, "/translate_tts", map[string]string{
		"text":        "   ",
		"target_lang": "es",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if decodeBody(t, rec)["error"] == "" {
		t.Error("missing error message")
	}
}

func TestTranslateTTS_UnsupportedTarget(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{out: "hola"}, &fakeTTS{}, &fakeSTT{})

	rec := postJSON(t, r, "/translate_tts", map[string]string{
		"text":        "Take two tablets daily",
		"target_lang": "xx",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	hint, _ := decodeBody(t, rec)["hint"].(string)
	if !strings.Contains(hint, "/languages") {
		t.Errorf("hint %q does not reference /languages", hint)
	}
}

func TestTranslateTTS_SuccessAndAudioRetrievable(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{out: "Tome dos tabletas al día"}, &fakeTTS{}, &fakeSTT{})

	rec := postJSON(t, r, "/translate_tts", map[string]string{
		"text":        "Take two tablets daily",
		"target_lang": "es",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["original_text"] != "Take two tablets daily" {
		t.Errorf("original_text = %v", body["original_text"])
	}
	translated, _ := body["translated_text"].(string)
	if translated == "" || translated == "Take two tablets daily" {
		t.Errorf("translated_text = %q", translated)
	}
	if body["target_lang"] != "es" {
		t.Errorf("target_lang = %v", body["target_lang"])
	}

	audioURL, _ := body["audio_url"].(string)
	if !strings.HasPrefix(audioURL, "/get_audio/") {
		t.Fatalf("audio_url = %q", audioURL)
	}

	audioRec := httptest.NewRecorder()
	r.ServeHTTP(audioRec, httptest.NewRequest(http.MethodGet, audioURL, nil))

	if audioRec.Code != http.StatusOK {
		t.Fatalf("GET %s: status = %d", audioURL, audioRec.Code)
	}
	if ct := audioRec.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("content-type = %q, want audio/mpeg", ct)
	}
	if audioRec.Body.String() != "mp3-bytes" {
		t.Errorf("audio body = %q", audioRec.Body.String())
	}
}

func TestTranslateTTS_UpstreamFailure(t *testing.T) {
	tests := []struct {
		name string
		tr   *fakeTranslator
		tts  *fakeTTS
	}{
		{"translator down", &fakeTranslator{err: errors.New("boom")}, &fakeTTS{}},
		{"tts down", &fakeTranslator{out: "hola"}, &fakeTTS{err: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, tt.tr, tt.tts, &fakeSTT{})

			rec := postJSON(t, r, "/translate_tts", map[string]string{
				"text":        "hello",
				"target_lang": "es",
			})

			if rec.Code != http.StatusBadGateway {
				t.Fatalf("status = %d, want 502", rec.Code)
			}
			body := decodeBody(t, rec)
			if _, ok := body["audio_url"]; ok {
				t.Error("failed request must not reference audio")
			}
		})
	}
}

func TestTranslateTTS_NotConfigured(t *testing.T) {
	r := newTestRouter(t, nil, &fakeTTS{}, &fakeSTT{})

	rec := postJSON(t, r, "/translate_tts", map[string]string{
		"text":        "hello",
		"target_lang": "es",
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestGetAudio_NotFound(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, &fakeSTT{})

	for _, name := range []string{
		"d2f1c9a0-0000-0000-0000-000000000000.mp3", // валидное имя, файла нет
		"..%2F..%2Fetc%2Fpasswd",                   // трэверсал
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_audio/"+name, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET /get_audio/%s: status = %d, want 404", name, rec.Code)
		}
	}
}

func TestTranscribe_Success(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, &fakeSTT{text: "take two tablets daily"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "note.mp3")
	_, _ = part.Write([]byte("audio-bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["text"] != "take two tablets daily" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, &fakeSTT{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("other", "value")
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTranscribe_UpstreamFailure(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, &fakeSTT{err: errors.New("boom")})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "note.mp3")
	_, _ = part.Write([]byte("audio"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestTranscribe_NotConfigured(t *testing.T) {
	r := newTestRouter(t, &fakeTranslator{}, &fakeTTS{}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "note.mp3")
	_, _ = part.Write([]byte("audio"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/transcribe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
