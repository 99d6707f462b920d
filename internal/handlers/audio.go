package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"askai-gateway/internal/repository"
)

type AudioHandler struct {
	audio  repository.AudioStore
	strict bool
}

func NewAudioHandler(audio repository.AudioStore, strict bool) *AudioHandler {
	return &AudioHandler{audio: audio, strict: strict}
}

func (h *AudioHandler) Get(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	rc, err := h.audio.Open(r.Context(), filename)
	if err != nil {
		if errors.Is(err, repository.ErrAudioNotFound) {
			writeJSON(w, inBandStatus(h.strict, http.StatusNotFound), errorResp("File not found"))
			return
		}
		log.Printf("audio: failed to open %s: %v", filename, err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to read audio file"))
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", repository.AudioContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("audio: failed to stream %s: %v", filename, err)
	}
}
