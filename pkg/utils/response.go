package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the body returned with every non-2xx status.
type Response struct {
	Error string `json:"error"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Error: message})
}
