package translate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/med_translator/internal/language"
	"github.com/Vovarama1992/med_translator/internal/ports"
)

const providerTimeout = 60 * time.Second

type Result struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	TargetLang     string `json:"target_lang"`
	AudioURL       string `json:"audio_url"`
}

// Service гоняет пайплайн /translate_tts: перевод → озвучка → локальный
// файл (+ best-effort выгрузка в S3).
type Service struct {
	translator ports.Translator
	tts        ports.TTSClient
	store      ports.AudioStore
	archive    ports.AudioArchive // может быть nil
	catalog    *language.Catalog
	log        *logger.ZapLogger
}

func NewService(
	translator ports.Translator,
	tts ports.TTSClient,
	store ports.AudioStore,
	archive ports.AudioArchive,
	catalog *language.Catalog,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		translator: translator,
		tts:        tts,
		store:      store,
		archive:    archive,
		catalog:    catalog,
		log:        log,
	}
}

func (s *Service) TranslateTTS(ctx context.Context, text, target, source string) (*Result, error) {
	if s.translator == nil {
		return nil, fmt.Errorf("translation %w", ErrNotConfigured)
	}
	if s.tts == nil {
		return nil, fmt.Errorf("tts %w", ErrNotConfigured)
	}

	ttsCode, ok := s.catalog.TTSCode(target)
	if !ok {
		return nil, fmt.Errorf("unsupported target language %q", target)
	}

	trCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	translated, err := s.translator.Translate(
		trCtx,
		text,
		s.catalog.TranslationCode(source),
		s.catalog.TranslationCode(target),
	)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %v: %w", err, ErrUpstream)
	}

	filename, outPath := s.store.NewPath()

	ttsCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	if err := s.tts.Synthesize(ttsCtx, ttsCode, translated, outPath); err != nil {
		// не оставляем огрызок, на который никто не ссылается
		_ = s.store.Remove(filename)
		return nil, fmt.Errorf("tts failed: %v: %w", err, ErrUpstream)
	}

	s.archiveAudio(ctx, filename, outPath)

	return &Result{
		OriginalText:   text,
		TranslatedText: translated,
		TargetLang:     target,
		AudioURL:       "/get_audio/" + filename,
	}, nil
}

// archiveAudio — выгрузка в S3, если архив настроен. Ошибка не валит запрос.
func (s *Service) archiveAudio(ctx context.Context, filename, path string) {
	if s.archive == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		s.logWarn("archive: open "+filename, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.logWarn("archive: stat "+filename, err)
		return
	}

	if _, err := s.archive.PutObject(ctx, filename, f, info.Size(), "audio/mpeg"); err != nil {
		s.logWarn("archive: upload "+filename, err)
	}
}

func (s *Service) logWarn(msg string, err error) {
	if s.log == nil {
		return
	}
	s.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Service: "med_translator",
		Error:   err,
	})
}
