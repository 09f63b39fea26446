// internal/app/features/treinos/create.go
package treinos

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	treinostore "github.com/GymAppCB/FinalApp/internal/app/store/treinos"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/htmlsanitize"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.uber.org/zap"
)

type createTreinoRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	MuscleGroups    []string `json:"muscleGroups"`
	Difficulty      string   `json:"difficulty"`
	Equipment       []string `json:"equipment"`
	Instructions    []string `json:"instructions"`
	Tips            []string `json:"tips"`
	ImageURL        string   `json:"imageUrl"`
	VideoURL        string   `json:"videoUrl"`
	Duration        int      `json:"duration"`
	Calories        int      `json:"calories"`
	DefaultSets     int      `json:"defaultSets"`
	DefaultReps     string   `json:"defaultReps"`
	DefaultWeight   float64  `json:"defaultWeight"`
	DefaultRestTime int      `json:"defaultRestTime"`
	IsPublic        bool     `json:"isPublic"`
}

func validCategory(c string) bool {
	for _, known := range models.TreinoCategories {
		if c == known {
			return true
		}
	}
	return false
}

// HandleCreate handles POST /api/treinos.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createTreinoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Category != "" && !validCategory(req.Category) {
		respond.Error(w, http.StatusBadRequest, "unknown category")
		return
	}

	t := models.Treino{
		Name:            htmlsanitize.Clean(req.Name),
		Description:     htmlsanitize.Clean(req.Description),
		Category:        req.Category,
		MuscleGroups:    req.MuscleGroups,
		Difficulty:      req.Difficulty,
		Equipment:       req.Equipment,
		Instructions:    htmlsanitize.CleanAll(req.Instructions),
		Tips:            htmlsanitize.CleanAll(req.Tips),
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
		Duration:        req.Duration,
		Calories:        req.Calories,
		DefaultSets:     req.DefaultSets,
		DefaultReps:     req.DefaultReps,
		DefaultWeight:   req.DefaultWeight,
		DefaultRestTime: req.DefaultRestTime,
		TrainerID:       trainerID,
		IsPublic:        req.IsPublic,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := treinostore.New(h.DB).Create(ctx, t)
	if err != nil {
		h.Log.Error("create treino failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}
