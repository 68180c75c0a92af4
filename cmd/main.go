package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/med_translator/internal/audiostore"
	"github.com/Vovarama1992/med_translator/internal/config"
	"github.com/Vovarama1992/med_translator/internal/delivery"
	"github.com/Vovarama1992/med_translator/internal/language"
	"github.com/Vovarama1992/med_translator/internal/ports"
	"github.com/Vovarama1992/med_translator/internal/speech"
	"github.com/Vovarama1992/med_translator/internal/translate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()
	cfg := config.FromEnv()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// STATIC DATA / STORAGE
	// =========================================================================

	catalog := language.NewCatalog()

	store, err := audiostore.New(cfg.AudioDir)
	if err != nil {
		log.Fatalf("failed to init audio store: %v", err)
	}

	archive, err := audiostore.NewS3Archive(cfg)
	if err != nil {
		// архив — опциональный, живём без него
		log.Printf("s3 archive disabled: %v", err)
		archive = nil
	}

	// =========================================================================
	// CLIENTS (translation / TTS / STT)
	// =========================================================================
	// Отсутствующий ключ не валит процесс: соответствующая ручка вернёт 500.

	var translator ports.Translator
	switch cfg.TranslateProvider {
	case "google":
		t, err := translate.NewGoogleTranslator(context.Background(), cfg.GoogleCredentials)
		if err != nil {
			log.Printf("google translator disabled: %v", err)
		} else {
			defer t.Close()
			translator = t
		}
	default:
		t, err := translate.NewOpenAITranslator(cfg.OpenAIKey, catalog)
		if err != nil {
			log.Printf("openai translator disabled: %v", err)
		} else {
			translator = t
		}
	}

	var tts ports.TTSClient
	if c, err := speech.NewElevenLabsClient(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID); err != nil {
		log.Printf("tts disabled: %v", err)
	} else {
		tts = c
	}

	var stt ports.STTClient
	switch cfg.STTProvider {
	case "deepgram":
		c, err := speech.NewDeepgramClient(cfg.DeepgramKey)
		if err != nil {
			log.Printf("stt disabled: %v", err)
		} else {
			stt = c
		}
	default:
		c, err := speech.NewWhisperClient(cfg.OpenAIKey)
		if err != nil {
			log.Printf("stt disabled: %v", err)
		} else {
			stt = c
		}
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	translateService := translate.NewService(translator, tts, store, archive, catalog, zl)
	speechService := speech.NewService(stt)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	translateHandler := delivery.NewTranslateHandler(translateService, catalog, zl)
	audioHandler := delivery.NewAudioHandler(store, zl)
	transcribeHandler := delivery.NewTranscribeHandler(speechService, zl)

	// ROUTES
	delivery.RegisterRoutes(r, translateHandler, audioHandler, transcribeHandler)

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	if cfg.AudioTTL > 0 {
		go func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()

			for range ticker.C {
				if n, err := store.Sweep(cfg.AudioTTL); err != nil {
					log.Printf("[audio-sweep] error: %v", err)
				} else if n > 0 {
					log.Printf("[audio-sweep] removed %d stale files", n)
				}
			}
		}()
	}

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "med_translator",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
