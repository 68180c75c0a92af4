package delivery

import (
	"net/http"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/med_translator/internal/speech"
)

type TranscribeHandler struct {
	speechService *speech.Service
	log           *logger.ZapLogger
}

func NewTranscribeHandler(speechService *speech.Service, log *logger.ZapLogger) *TranscribeHandler {
	return &TranscribeHandler{speechService: speechService, log: log}
}

func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	text, err := h.speechService.TranscribeUpload(r.Context(), file, filepath.Ext(header.Filename))
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcribe failed", Error: err})
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
