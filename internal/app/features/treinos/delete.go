// internal/app/features/treinos/delete.go
package treinos

import (
	"context"
	"net/http"

	treinostore "github.com/GymAppCB/FinalApp/internal/app/store/treinos"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type deletedResponse struct {
	Message string `json:"message"`
}

// HandleDelete handles DELETE /api/treinos/{id}. Owner-only, same as
// update.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "exercise not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := treinostore.New(h.DB).DeleteForTrainer(ctx, trainerID, id)
	if err != nil {
		h.Log.Error("delete treino failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if deleted == 0 {
		respond.Error(w, http.StatusNotFound, "exercise not found")
		return
	}

	respond.JSON(w, http.StatusOK, deletedResponse{Message: "Exercise deleted"})
}
