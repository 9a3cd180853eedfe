package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Arnesh-pal/random-ranking/internal/api"
	"github.com/Arnesh-pal/random-ranking/internal/config"
	"github.com/Arnesh-pal/random-ranking/internal/database"
	"github.com/Arnesh-pal/random-ranking/internal/handler"
	"github.com/Arnesh-pal/random-ranking/internal/leaderboard"
	"github.com/Arnesh-pal/random-ranking/internal/logger"
	"github.com/Arnesh-pal/random-ranking/internal/middleware"
	model "github.com/Arnesh-pal/random-ranking/internal/models"
	"github.com/Arnesh-pal/random-ranking/internal/store"
	"github.com/Arnesh-pal/random-ranking/internal/ws"
)

// Origine du client de développement local, toujours autorisée
const localDevOrigin = "http://localhost:5173"

// Utilisateurs insérés au premier démarrage, sur base vide uniquement
var seedNames = []string{
	"Rahul", "Kamal", "Sanak", "Priya", "Amit",
	"Sunita", "Vikram", "Anjali", "Deepak", "Meera",
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	pool, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Success("Connected to PostgreSQL")

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Schema setup failed: %v", err)
		os.Exit(1)
	}

	st := store.NewPostgresStore(pool)

	// L'échec du seeding n'empêche pas le serveur de démarrer
	if err := seedUsers(ctx, st); err != nil {
		logger.Warning("Seeding failed: %v", err)
	}

	allowedOrigins := []string{localDevOrigin, cfg.ClientOrigin}

	hub := ws.NewHub(func(ctx context.Context) ([]model.LeaderboardEntry, error) {
		return leaderboard.Snapshot(ctx, st)
	}, middleware.OriginChecker(allowedOrigins))

	h := handler.New(st, hub)

	// Initialize routes
	router := api.SetupRouter(h, hub)

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(allowedOrigins)(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}

// seedUsers insère le jeu d'utilisateurs initial si la table est vide
func seedUsers(ctx context.Context, st store.Store) error {
	count, err := st.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := st.SeedUsers(ctx, seedNames); err != nil {
		return err
	}

	logger.Info("Seeded %d users", len(seedNames))
	return nil
}
