package delivery

import (
	"io"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/med_translator/internal/ports"
	"github.com/go-chi/chi/v5"
)

type AudioHandler struct {
	store ports.AudioStore
	log   *logger.ZapLogger
}

func NewAudioHandler(store ports.AudioStore, log *logger.ZapLogger) *AudioHandler {
	return &AudioHandler{store: store, log: log}
}

func (h *AudioHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	// store сам отбрасывает имена, не похожие на наши uuid.mp3
	f, err := h.store.Open(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			h.log.Log(logger.LogEntry{Level: "error", Message: "open audio " + filename, Error: err})
		}
		writeError(w, http.StatusNotFound, "File not found.")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	_, _ = io.Copy(w, f)
}
