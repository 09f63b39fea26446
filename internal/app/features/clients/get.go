// internal/app/features/clients/get.go
package clients

import (
	"context"
	"errors"
	"net/http"

	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGet handles GET /api/clients/{id}. A client owned by another
// trainer reports 404, not 403, so the response does not reveal whether
// the id exists at all.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := clientstore.New(h.DB).GetForTrainer(ctx, trainerID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "client not found")
			return
		}
		h.Log.Error("get client failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, c)
}
