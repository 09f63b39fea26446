// internal/app/features/workoutplans/update.go
package workoutplans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	planstore "github.com/GymAppCB/FinalApp/internal/app/store/workoutplans"
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

// updatePlanRequest is a partial patch. Replacing the exercises list
// wholesale goes through here; individual entries go through the
// exercises sub-resource.
type updatePlanRequest struct {
	Client            *string                `json:"client"`
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	Exercises         *[]planExerciseRequest `json:"exercises"`
	IsActive          *bool                  `json:"isActive"`
	Difficulty        *string                `json:"difficulty"`
	EstimatedDuration *int                   `json:"estimatedDuration"`
	LastExecuted      *time.Time             `json:"lastExecuted"`
}

// HandleUpdate handles PUT /api/workout-plans/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "workout plan not found")
		return
	}

	var req updatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set := bson.M{}
	if req.Client != nil {
		clientID, err := primitive.ObjectIDFromHex(*req.Client)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid client id")
			return
		}
		set["client"] = clientID
	}
	if req.Name != nil {
		name := htmlsanitize.Clean(strings.TrimSpace(*req.Name))
		if name == "" {
			respond.Error(w, http.StatusBadRequest, "name cannot be empty")
			return
		}
		set["name"] = name
	}
	if req.Description != nil {
		set["description"] = htmlsanitize.Clean(*req.Description)
	}
	if req.Exercises != nil {
		exercises := make([]models.PlanExercise, 0, len(*req.Exercises))
		for _, e := range *req.Exercises {
			m := e.model()
			m.ID = primitive.NewObjectID()
			exercises = append(exercises, m)
		}
		set["exercises"] = exercises
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.Difficulty != nil {
		set["difficulty"] = *req.Difficulty
	}
	if req.EstimatedDuration != nil {
		set["estimated_duration"] = *req.EstimatedDuration
	}
	if req.LastExecuted != nil {
		set["last_executed"] = *req.LastExecuted
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := planstore.New(h.DB)
	if len(set) == 0 {
		p, err := store.GetForTrainer(ctx, trainerID, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				respond.Error(w, http.StatusNotFound, "workout plan not found")
				return
			}
			h.Log.Error("get workout plan failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "server error")
			return
		}
		respond.JSON(w, http.StatusOK, p)
		return
	}

	p, err := store.UpdateForTrainer(ctx, trainerID, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "workout plan not found")
			return
		}
		h.Log.Error("update workout plan failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /api/workout-plans/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "workout plan not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := planstore.New(h.DB).DeleteForTrainer(ctx, trainerID, id)
	if err != nil {
		h.Log.Error("delete workout plan failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}
	if deleted == 0 {
		respond.Error(w, http.StatusNotFound, "workout plan not found")
		return
	}

	respond.JSON(w, http.StatusOK, deletedResponse{Message: "Workout plan deleted"})
}

type deletedResponse struct {
	Message string `json:"message"`
}
