package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Arnesh-pal/random-ranking/internal/handler"
	"github.com/Arnesh-pal/random-ranking/internal/logger"
	"github.com/Arnesh-pal/random-ranking/internal/middleware"
	"github.com/Arnesh-pal/random-ranking/internal/utils"
	"github.com/Arnesh-pal/random-ranking/internal/ws"
)

func SetupRouter(h *handler.Handler, hub *ws.Hub) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/api/users", h.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/api/users", h.CreateUser).Methods(http.MethodPost)

	// Claims
	r.HandleFunc("/api/claim", h.Claim).Methods(http.MethodPost)

	// Canal temps réel
	r.HandleFunc("/ws", hub.HandleConnection)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "route not found")
	})

	return r
}
