package config

import (
	"os"
	"time"
)

type Config struct {
	Port     string
	AudioDir string
	AudioTTL time.Duration

	TranslateProvider string // "openai" | "google"
	OpenAIKey         string
	GoogleCredentials string

	ElevenLabsKey     string
	ElevenLabsVoiceID string

	STTProvider string // "whisper" | "deepgram"
	DeepgramKey string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Region    string
}

// FromEnv собирает конфиг из окружения. Отсутствующие ключи провайдеров
// не фатальны: соответствующие эндпоинты просто вернут 500.
func FromEnv() Config {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		AudioDir:          getenv("AUDIO_DIR", "temp"),
		AudioTTL:          24 * time.Hour,
		TranslateProvider: getenv("TRANSLATE_PROVIDER", "openai"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		GoogleCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		ElevenLabsKey:     os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: getenv("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"), // Rachel
		STTProvider:       getenv("STT_PROVIDER", "whisper"),
		DeepgramKey:       os.Getenv("DEEPGRAM_API_KEY"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKey:       os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:       os.Getenv("S3_SECRET_KEY"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          os.Getenv("S3_REGION"),
	}

	if raw := os.Getenv("AUDIO_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.AudioTTL = d
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
