package handler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/Arnesh-pal/random-ranking/internal/logger"
	model "github.com/Arnesh-pal/random-ranking/internal/models"
	"github.com/Arnesh-pal/random-ranking/internal/store"
	"github.com/Arnesh-pal/random-ranking/internal/utils"
)

// Gain maximum d'un claim, tiré uniformément dans [1, maxAward]
const maxAward = 10

type claimResponse struct {
	Message       string     `json:"message"`
	PointsAwarded int        `json:"pointsAwarded"`
	User          model.User `json:"user"`
}

// Claim attribue un nombre de points aléatoire à l'utilisateur, trace le
// claim dans l'historique et diffuse le classement mis à jour
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "userId is required")
		return
	}

	if _, err := h.store.GetUser(r.Context(), payload.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("could not look up user %s: %v", payload.UserID, err)
		utils.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	points := rand.IntN(maxAward) + 1

	user, err := h.store.AddPoints(r.Context(), payload.UserID, points)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("could not add points to user %s: %v", payload.UserID, err)
		utils.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Pas de rollback si l'insertion échoue : les points restent acquis,
	// l'historique manque — incohérence assumée
	if err := h.store.InsertClaim(r.Context(), payload.UserID, points); err != nil {
		logger.Error("could not record claim for user %s: %v", payload.UserID, err)
		utils.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.broadcaster.Publish(r.Context())

	utils.JSON(w, http.StatusOK, claimResponse{
		Message:       fmt.Sprintf("You claimed %d points!", points),
		PointsAwarded: points,
		User:          *user,
	})
}
