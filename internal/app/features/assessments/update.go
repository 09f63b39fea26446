// internal/app/features/assessments/update.go
package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	assessmentstore "github.com/GymAppCB/FinalApp/internal/app/store/assessments"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/htmlsanitize"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type updateAssessmentRequest struct {
	Date           *time.Time                `json:"date"`
	Measurements   *models.Measurements      `json:"measurements"`
	Photos         *[]models.AssessmentPhoto `json:"photos"`
	Notes          *string                   `json:"notes"`
	Goals          *[]string                 `json:"goals"`
	Status         *string                   `json:"status"`
	NextAssessment *time.Time                `json:"nextAssessment"`
}

func (req *updateAssessmentRequest) set() bson.M {
	set := bson.M{}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.Measurements != nil {
		set["measurements"] = *req.Measurements
	}
	if req.Photos != nil {
		set["photos"] = *req.Photos
	}
	if req.Notes != nil {
		set["notes"] = htmlsanitize.Clean(*req.Notes)
	}
	if req.Goals != nil {
		set["goals"] = htmlsanitize.CleanAll(*req.Goals)
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.NextAssessment != nil {
		set["next_assessment"] = *req.NextAssessment
	}
	return set
}

// HandleUpdate handles PUT /api/assessments/{id}. Status changes move
// only forward through the pending/scheduled/completed workflow; an
// illegal transition reports 400 and leaves the record untouched.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != nil && !models.ValidAssessmentStatus(*req.Status) {
		respond.Error(w, http.StatusBadRequest, "unknown status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := assessmentstore.New(h.DB)
	set := req.set()
	if len(set) == 0 {
		a, err := store.GetForTrainer(ctx, trainerID, id)
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
		return
	}

	a, err := store.UpdateForTrainer(ctx, trainerID, id, set)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			respond.Error(w, http.StatusNotFound, "assessment not found")
		case errors.Is(err, assessmentstore.ErrInvalidTransition):
			respond.Error(w, http.StatusBadRequest, "invalid status transition")
		default:
			h.Log.Error("update assessment failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

type deletedResponse struct {
	Message string `json:"message"`
}

// HandleDelete handles DELETE /api/assessments/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := assessmentstore.New(h.DB).DeleteForTrainer(ctx, trainerID, id)
	if err != nil {
		h.Log.Error("delete assessment failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if deleted == 0 {
		respond.Error(w, http.StatusNotFound, "assessment not found")
		return
	}

	respond.JSON(w, http.StatusOK, deletedResponse{Message: "Assessment deleted"})
}
