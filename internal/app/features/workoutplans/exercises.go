// internal/app/features/workoutplans/exercises.go
package workoutplans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	planstore "github.com/GymAppCB/FinalApp/internal/app/store/workoutplans"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/htmlsanitize"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// planIDs pulls and validates the {id} and optional {exerciseId} route
// params. A malformed id is reported the same way as a missing document.
func planIDs(r *http.Request) (planID, exerciseID primitive.ObjectID, err error) {
	planID, err = primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return
	}
	if raw := chi.URLParam(r, "exerciseId"); raw != "" {
		exerciseID, err = primitive.ObjectIDFromHex(raw)
	}
	return
}

// HandleAddExercise handles POST /api/workout-plans/{id}/exercises.
func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	planID, _, err := planIDs(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "workout plan not found")
		return
	}

	var req planExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respond.Error(w, http.StatusBadRequest, "exercise name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := planstore.New(h.DB).AddExercise(ctx, trainerID, planID, req.model())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "workout plan not found")
			return
		}
		h.Log.Error("add plan exercise failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusCreated, p)
}

// updateExerciseRequest is a partial patch for one embedded entry.
type updateExerciseRequest struct {
	Name     *string  `json:"name"`
	Sets     *int     `json:"sets"`
	Reps     *string  `json:"reps"`
	Weight   *float64 `json:"weight"`
	RestTime *int     `json:"restTime"`
	Notes    *string  `json:"notes"`
	VideoURL *string  `json:"videoUrl"`
	ImageURL *string  `json:"imageUrl"`
}

func (req *updateExerciseRequest) set() bson.M {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = htmlsanitize.Clean(strings.TrimSpace(*req.Name))
	}
	if req.Sets != nil {
		set["sets"] = *req.Sets
	}
	if req.Reps != nil {
		set["reps"] = *req.Reps
	}
	if req.Weight != nil {
		set["weight"] = *req.Weight
	}
	if req.RestTime != nil {
		set["rest_time"] = *req.RestTime
	}
	if req.Notes != nil {
		set["notes"] = htmlsanitize.Clean(*req.Notes)
	}
	if req.VideoURL != nil {
		set["video_url"] = *req.VideoURL
	}
	if req.ImageURL != nil {
		set["image_url"] = *req.ImageURL
	}
	return set
}

// HandleUpdateExercise handles PUT /api/workout-plans/{id}/exercises/{exerciseId}.
// The not-found bodies distinguish a missing plan from a missing entry in
// an existing plan.
func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	planID, exerciseID, err := planIDs(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "workout plan not found")
		return
	}

	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	set := req.set()
	if name, ok := set["name"].(string); ok && name == "" {
		respond.Error(w, http.StatusBadRequest, "exercise name cannot be empty")
		return
	}
	if len(set) == 0 {
		respond.Error(w, http.StatusBadRequest, "nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := planstore.New(h.DB).UpdateExercise(ctx, trainerID, planID, exerciseID, set)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			respond.Error(w, http.StatusNotFound, "workout plan not found")
		case errors.Is(err, planstore.ErrExerciseNotFound):
			respond.Error(w, http.StatusNotFound, "exercise not found")
		default:
			h.Log.Error("update plan exercise failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// HandleRemoveExercise handles DELETE /api/workout-plans/{id}/exercises/{exerciseId}.
func (h *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	planID, exerciseID, err := planIDs(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "workout plan not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := planstore.New(h.DB).RemoveExercise(ctx, trainerID, planID, exerciseID)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			respond.Error(w, http.StatusNotFound, "workout plan not found")
		case errors.Is(err, planstore.ErrExerciseNotFound):
			respond.Error(w, http.StatusNotFound, "exercise not found")
		default:
			h.Log.Error("remove plan exercise failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respond.JSON(w, http.StatusOK, p)
}
