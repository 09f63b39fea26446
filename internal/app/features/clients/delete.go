// internal/app/features/clients/delete.go
package clients

import (
	"context"
	"net/http"

	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
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

// HandleDelete handles DELETE /api/clients/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "client not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := clientstore.New(h.DB).DeleteForTrainer(ctx, trainerID, id)
	if err != nil {
		h.Log.Error("delete client failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if deleted == 0 {
		respond.Error(w, http.StatusNotFound, "client not found")
		return
	}

	respond.JSON(w, http.StatusOK, deletedResponse{Message: "Client deleted"})
}
