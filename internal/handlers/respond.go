package handlers

import (
	"encoding/json"
	"net/http"

	"askai-gateway/internal/models"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// inBandStatus is 200 unless strict status codes are enabled, in which case
// the given failure status is used.
func inBandStatus(strict bool, failure int) int {
	if strict {
		return failure
	}
	return http.StatusOK
}
