package utils

import (
	"encoding/json"
	"net/http"

	"github.com/Arnesh-pal/random-ranking/internal/logger"
)

// JSON écrit la réponse avec le bon Content-Type et le status donné
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Error répond {"message": ...} — jamais de détail interne côté client
func Error(w http.ResponseWriter, status int, message string) {
	logger.Error("[%d] %s", status, message)
	JSON(w, status, map[string]string{"message": message})
}

// Message répond {"message": ...} avec un status 200
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, map[string]string{"message": message})
}
