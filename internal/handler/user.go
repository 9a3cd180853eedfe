package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Arnesh-pal/random-ranking/internal/logger"
	model "github.com/Arnesh-pal/random-ranking/internal/models"
	"github.com/Arnesh-pal/random-ranking/internal/store"
	"github.com/Arnesh-pal/random-ranking/internal/utils"
)

// CreateUser enregistre un nouvel utilisateur et diffuse le classement mis à jour
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	// Pas de pré-vérification du doublon : on laisse la contrainte UNIQUE trancher
	user, err := h.store.CreateUser(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			utils.Error(w, http.StatusConflict, "user name already taken")
			return
		}
		logger.Error("could not create user: %v", err)
		utils.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.broadcaster.Publish(r.Context())

	utils.JSON(w, http.StatusCreated, user)
}

// GetUsers renvoie tous les utilisateurs, tels que stockés (ni triés ni classés)
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		logger.Error("could not list users: %v", err)
		utils.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if users == nil {
		users = []model.User{}
	}

	utils.JSON(w, http.StatusOK, users)
}
