package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"askai-gateway/internal/models"
	"askai-gateway/internal/services"
)

type AskHandler struct {
	askService      *services.AskService
	publicBaseURL   string
	trustForwarded  bool
	strict          bool
	providerTimeout time.Duration
}

// NewAskHandler builds the POST / handler. publicBaseURL overrides the base
// derived from the request when building audio URLs. X-Forwarded-Proto and
// X-Forwarded-Host are only read when trustForwarded is set, i.e. behind a
// proxy that overwrites them. A zero providerTimeout leaves provider calls
// unbounded.
func NewAskHandler(askService *services.AskService, publicBaseURL string, trustForwarded, strict bool, providerTimeout time.Duration) *AskHandler {
	return &AskHandler{
		askService:      askService,
		publicBaseURL:   strings.TrimRight(publicBaseURL, "/"),
		trustForwarded:  trustForwarded,
		strict:          strict,
		providerTimeout: providerTimeout,
	}
}

func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(err.Error()))
		return
	}

	ctx := r.Context()
	if h.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.providerTimeout)
		defer cancel()
	}

	text, err := h.askService.Answer(ctx, &req)
	if err != nil {
		log.Printf("ask: chat provider failed: %v", err)
		writeJSON(w, inBandStatus(h.strict, http.StatusBadGateway), errorResp(err.Error()))
		return
	}

	resp := models.AskResponse{Response: text}
	if req.Audio {
		filename, err := h.askService.Speak(ctx, text, req.Language)
		if err != nil {
			log.Printf("ask: speech synthesis failed: %v", err)
			resp.AudioURL = models.AudioErrorSentinel
		} else {
			resp.AudioURL = h.baseURL(r) + "/audio/" + filename
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AskHandler) baseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if h.trustForwarded {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}
		if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
			host = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}

	return scheme + "://" + host
}
