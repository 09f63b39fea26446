// internal/app/features/treinos/update.go
package treinos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	treinostore "github.com/GymAppCB/FinalApp/internal/app/store/treinos"
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

// updateTreinoRequest is a partial patch. Updating is owner-only even for
// public exercises: seeing someone's shared exercise does not grant edit
// rights, and the attempt reports 404.
type updateTreinoRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	MuscleGroups    *[]string `json:"muscleGroups"`
	Difficulty      *string   `json:"difficulty"`
	Equipment       *[]string `json:"equipment"`
	Instructions    *[]string `json:"instructions"`
	Tips            *[]string `json:"tips"`
	ImageURL        *string   `json:"imageUrl"`
	VideoURL        *string   `json:"videoUrl"`
	Duration        *int      `json:"duration"`
	Calories        *int      `json:"calories"`
	DefaultSets     *int      `json:"defaultSets"`
	DefaultReps     *string   `json:"defaultReps"`
	DefaultWeight   *float64  `json:"defaultWeight"`
	DefaultRestTime *int      `json:"defaultRestTime"`
	IsPublic        *bool     `json:"isPublic"`
}

func (req *updateTreinoRequest) set() bson.M {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = htmlsanitize.Clean(strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		set["description"] = htmlsanitize.Clean(*req.Description)
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.MuscleGroups != nil {
		set["muscle_groups"] = *req.MuscleGroups
	}
	if req.Difficulty != nil {
		set["difficulty"] = *req.Difficulty
	}
	if req.Equipment != nil {
		set["equipment"] = *req.Equipment
	}
	if req.Instructions != nil {
		set["instructions"] = htmlsanitize.CleanAll(*req.Instructions)
	}
	if req.Tips != nil {
		set["tips"] = htmlsanitize.CleanAll(*req.Tips)
	}
	if req.ImageURL != nil {
		set["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		set["video_url"] = *req.VideoURL
	}
	if req.Duration != nil {
		set["duration"] = *req.Duration
	}
	if req.Calories != nil {
		set["calories"] = *req.Calories
	}
	if req.DefaultSets != nil {
		set["default_sets"] = *req.DefaultSets
	}
	if req.DefaultReps != nil {
		set["default_reps"] = *req.DefaultReps
	}
	if req.DefaultWeight != nil {
		set["default_weight"] = *req.DefaultWeight
	}
	if req.DefaultRestTime != nil {
		set["default_rest_time"] = *req.DefaultRestTime
	}
	if req.IsPublic != nil {
		set["is_public"] = *req.IsPublic
	}
	return set
}

// HandleUpdate handles PUT /api/treinos/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateTreinoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set := req.set()
	if name, ok := set["name"].(string); ok && name == "" {
		respond.Error(w, http.StatusBadRequest, "name cannot be empty")
		return
	}
	if cat, ok := set["category"].(string); ok && cat != "" && !validCategory(cat) {
		respond.Error(w, http.StatusBadRequest, "unknown category")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := treinostore.New(h.DB)
	if len(set) == 0 {
		t, err := store.GetVisibleTo(ctx, trainerID, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				respond.Error(w, http.StatusNotFound, "exercise not found")
				return
			}
			h.Log.Error("get treino failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "server error")
			return
		}
		respond.JSON(w, http.StatusOK, t)
		return
	}

	t, err := store.UpdateForTrainer(ctx, trainerID, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "exercise not found")
			return
		}
		h.Log.Error("update treino failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, t)
}
