// internal/app/features/assessments/list.go
package assessments

import (
	"context"
	"errors"
	"net/http"

	assessmentstore "github.com/GymAppCB/FinalApp/internal/app/store/assessments"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleList handles GET /api/assessments, most recent date first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := assessmentstore.New(h.DB).ListByTrainer(ctx, trainerID)
	if err != nil {
		h.Log.Error("list assessments failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}

// HandleListPending handles GET /api/assessments/pending. Pending and
// scheduled assessments, soonest first.
func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := assessmentstore.New(h.DB).ListPendingByTrainer(ctx, trainerID)
	if err != nil {
		h.Log.Error("list pending assessments failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}

// HandleGet handles GET /api/assessments/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "assessment not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := assessmentstore.New(h.DB).GetForTrainer(ctx, trainerID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "assessment not found")
			return
		}
		h.Log.Error("get assessment failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, a)
}
