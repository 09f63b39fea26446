// internal/app/features/activities/recent.go
package activities

import (
	"context"
	"net/http"

	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"

	"go.uber.org/zap"
)

// HandleRecent handles GET /api/activities/recent: the trainer's newest
// feed entries, capped at the configured limit.
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := activitystore.New(h.DB).RecentByTrainer(ctx, trainerID, h.RecentLimit)
	if err != nil {
		h.Log.Error("recent activities failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}
