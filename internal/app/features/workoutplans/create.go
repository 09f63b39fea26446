// internal/app/features/workoutplans/create.go
package workoutplans

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	planstore "github.com/GymAppCB/FinalApp/internal/app/store/workoutplans"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/htmlsanitize"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type planExerciseRequest struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     string  `json:"reps"`
	Weight   float64 `json:"weight"`
	RestTime int     `json:"restTime"`
	Notes    string  `json:"notes"`
	VideoURL string  `json:"videoUrl"`
	ImageURL string  `json:"imageUrl"`
}

func (e planExerciseRequest) model() models.PlanExercise {
	return models.PlanExercise{
		Name:     htmlsanitize.Clean(strings.TrimSpace(e.Name)),
		Sets:     e.Sets,
		Reps:     e.Reps,
		Weight:   e.Weight,
		RestTime: e.RestTime,
		Notes:    htmlsanitize.Clean(e.Notes),
		VideoURL: e.VideoURL,
		ImageURL: e.ImageURL,
	}
}

type createPlanRequest struct {
	Client            string                `json:"client"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	Exercises         []planExerciseRequest `json:"exercises"`
	IsActive          *bool                 `json:"isActive"`
	Difficulty        string                `json:"difficulty"`
	EstimatedDuration int                   `json:"estimatedDuration"`
}

// HandleCreate handles POST /api/workout-plans. Creating a plan for a
// client also records exactly one feed entry; a plan without a client
// records nothing.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	var clientID primitive.ObjectID
	if req.Client != "" {
		var err error
		clientID, err = primitive.ObjectIDFromHex(req.Client)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid client id")
			return
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	exercises := make([]models.PlanExercise, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		exercises = append(exercises, e.model())
	}

	p := models.WorkoutPlan{
		ClientID:          clientID,
		Name:              htmlsanitize.Clean(req.Name),
		Description:       htmlsanitize.Clean(req.Description),
		Exercises:         exercises,
		TrainerID:         trainerID,
		IsActive:          isActive,
		Difficulty:        req.Difficulty,
		EstimatedDuration: req.EstimatedDuration,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := planstore.New(h.DB).Create(ctx, p)
	if err != nil {
		h.Log.Error("create workout plan failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	if !created.ClientID.IsZero() {
		h.Rec.WorkoutPlanCreated(ctx, created.ClientID, trainerID, created.ID, created.Name)
	}

	respond.JSON(w, http.StatusCreated, created)
}
