package handler

import (
	"context"
	"net/http"

	"github.com/Arnesh-pal/random-ranking/internal/store"
	"github.com/Arnesh-pal/random-ranking/internal/utils"
)

// Broadcaster pousse le classement recalculé à tous les clients temps réel
type Broadcaster interface {
	Publish(ctx context.Context)
}

// Handler porte les dépendances injectées des handlers HTTP
type Handler struct {
	store       store.Store
	broadcaster Broadcaster
}

func New(s store.Store, b Broadcaster) *Handler {
	return &Handler{store: s, broadcaster: b}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "Leaderboard API is running")
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "UP"})
}
