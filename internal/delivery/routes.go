package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hTranslate *TranslateHandler,
	hAudio *AudioHandler,
	hTranscribe *TranscribeHandler,
) {
	r.With(httputil.RecoverMiddleware).Get("/", hTranslate.Root)
	r.With(httputil.RecoverMiddleware).Get("/languages", hTranslate.Languages)
	r.With(httputil.RecoverMiddleware).Get("/get_audio/{filename}", hAudio.GetAudio)

	// провайдерские ручки — с лимитом по IP, чтобы не палить ключи впустую
	r.Group(func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(30, time.Minute),
		)

		pr.Post("/translate_tts", hTranslate.TranslateTTS)
		pr.Post("/transcribe", hTranscribe.Transcribe)
	})
}
