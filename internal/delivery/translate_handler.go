package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/med_translator/internal/language"
	"github.com/Vovarama1992/med_translator/internal/translate"
)

type TranslateHandler struct {
	translateService *translate.Service
	catalog          *language.Catalog
	log              *logger.ZapLogger
}

func NewTranslateHandler(translateService *translate.Service, catalog *language.Catalog, log *logger.ZapLogger) *TranslateHandler {
	return &TranslateHandler{
		translateService: translateService,
		catalog:          catalog,
		log:              log,
	}
}

func (h *TranslateHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Healthcare Translation API is running",
	})
}

func (h *TranslateHandler) Languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": h.catalog.Entries(),
	})
}

func (h *TranslateHandler) TranslateTTS(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
		return
	}

	var req struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
		SourceLang string `json:"source_lang"`
	}

	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	target := strings.ToLower(strings.TrimSpace(req.TargetLang))
	source := strings.ToLower(strings.TrimSpace(req.SourceLang))
	if source == "" {
		source = "auto"
	}

	if text == "" {
		writeError(w, http.StatusBadRequest, "Text is empty.")
		return
	}

	if !h.catalog.Supported(target) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Target language %q not supported for TTS.", target),
			"hint":  "Check /languages for supported codes.",
		})
		return
	}

	result, err := h.translateService.TranslateTTS(r.Context(), text, target, source)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "translate_tts failed", Error: err})
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// маппинг типизированных ошибок в HTTP-статусы
func statusFor(err error) int {
	switch {
	case errors.Is(err, translate.ErrNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, translate.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
