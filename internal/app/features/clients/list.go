// internal/app/features/clients/list.go
package clients

import (
	"context"
	"net/http"

	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"

	"go.uber.org/zap"
)

// HandleList handles GET /api/clients. Only the authenticated trainer's
// own clients are returned.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := clientstore.New(h.DB).ListByTrainer(ctx, trainerID)
	if err != nil {
		h.Log.Error("list clients failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}
