// internal/app/features/activities/stats.go
package activities

import (
	"context"
	"net/http"
	"time"

	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	assessmentstore "github.com/GymAppCB/FinalApp/internal/app/store/assessments"
	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
	planstore "github.com/GymAppCB/FinalApp/internal/app/store/workoutplans"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.uber.org/zap"
)

type statsResponse struct {
	TotalClients       int64 `json:"totalClients"`
	ActiveWorkouts     int64 `json:"activeWorkouts"`
	CompletedToday     int64 `json:"completedToday"`
	PendingAssessments int64 `json:"pendingAssessments"`
}

// HandleStats handles GET /api/activities/stats: the dashboard counters,
// all scoped to the authenticated trainer.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var resp statsResponse
	var err error

	resp.TotalClients, err = clientstore.New(h.DB).CountByTrainer(ctx, trainerID)
	if err != nil {
		h.Log.Error("stats: count clients failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	resp.ActiveWorkouts, err = planstore.New(h.DB).CountActiveByTrainer(ctx, trainerID)
	if err != nil {
		h.Log.Error("stats: count active plans failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	resp.CompletedToday, err = activitystore.New(h.DB).CountByTrainerTypeSince(ctx, trainerID, models.ActivityWorkout, startOfDay)
	if err != nil {
		h.Log.Error("stats: count workouts today failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	resp.PendingAssessments, err = assessmentstore.New(h.DB).CountPendingByTrainer(ctx, trainerID)
	if err != nil {
		h.Log.Error("stats: count pending assessments failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}
