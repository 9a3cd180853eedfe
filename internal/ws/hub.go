package ws

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Arnesh-pal/random-ranking/internal/logger"
	model "github.com/Arnesh-pal/random-ranking/internal/models"
)

// Source calcule le classement courant au moment de l'envoi
type Source func(ctx context.Context) ([]model.LeaderboardEntry, error)

type leaderboardEvent struct {
	Event string                   `json:"event"`
	Data  []model.LeaderboardEntry `json:"data"`
}

// Hub tient le registre des clients temps réel connectés. L'état vit avec
// le process : rien n'est persisté, une déconnexion retire juste l'entrée.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	source   Source
	upgrader websocket.Upgrader
}

func NewHub(source Source, checkOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		source:  source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// HandleConnection upgrade la requête puis envoie immédiatement l'état
// courant au nouveau client, sans toucher aux autres
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// L'upgrader a déjà répondu au client
		logger.Warning("websocket upgrade failed: %v", err)
		return
	}

	entries, err := h.source(r.Context())
	if err != nil {
		logger.Error("could not compute leaderboard snapshot: %v", err)
		conn.Close()
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	err = conn.WriteJSON(leaderboardEvent{Event: "leaderboardUpdate", Data: entries})
	h.mu.Unlock()

	if err != nil {
		h.remove(conn)
		return
	}

	logger.Info("realtime client connected (%d online)", h.ClientCount())

	// Le canal est push-only : on lit uniquement pour détecter la déconnexion
	go h.readLoop(conn)
}

// Publish recalcule le classement et le pousse à tous les clients connectés.
// Aucune garantie de livraison : un client injoignable est simplement retiré.
func (h *Hub) Publish(ctx context.Context) {
	entries, err := h.source(ctx)
	if err != nil {
		logger.Error("could not compute leaderboard for broadcast: %v", err)
		return
	}

	event := leaderboardEvent{Event: "leaderboardUpdate", Data: entries}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount retourne le nombre de clients connectés
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	conn.Close()
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}
