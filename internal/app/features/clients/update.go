// internal/app/features/clients/update.go
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
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

// updateClientRequest is a partial patch: only fields present in the body
// are written, and the trainer field can never be touched.
type updateClientRequest struct {
	Name                *string                     `json:"name"`
	Email               *string                     `json:"email"`
	Phone               *string                     `json:"phone"`
	DateOfBirth         *time.Time                  `json:"dateOfBirth"`
	Gender              *string                     `json:"gender"`
	HealthQuestionnaire *models.HealthQuestionnaire `json:"healthQuestionnaire"`
	EmergencyContact    *models.EmergencyContact    `json:"emergencyContact"`
	IsActive            *bool                       `json:"isActive"`
	LastWorkout         *time.Time                  `json:"lastWorkout"`
}

func (req *updateClientRequest) set() bson.M {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = htmlsanitize.Clean(strings.TrimSpace(*req.Name))
	}
	if req.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		set["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.DateOfBirth != nil {
		set["date_of_birth"] = *req.DateOfBirth
	}
	if req.Gender != nil {
		set["gender"] = *req.Gender
	}
	if req.HealthQuestionnaire != nil {
		hq := *req.HealthQuestionnaire
		hq.MedicalConditions = htmlsanitize.CleanAll(hq.MedicalConditions)
		hq.Medications = htmlsanitize.CleanAll(hq.Medications)
		hq.Injuries = htmlsanitize.CleanAll(hq.Injuries)
		hq.Goals = htmlsanitize.CleanAll(hq.Goals)
		set["health_questionnaire"] = hq
	}
	if req.EmergencyContact != nil {
		set["emergency_contact"] = *req.EmergencyContact
	}
	if req.IsActive != nil {
		set["is_active"] = *req.IsActive
	}
	if req.LastWorkout != nil {
		set["last_workout"] = *req.LastWorkout
	}
	return set
}

// HandleUpdate handles PUT /api/clients/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "client not found")
		return
	}

	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set := req.set()
	if name, ok := set["name"].(string); ok && name == "" {
		respond.Error(w, http.StatusBadRequest, "name cannot be empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := clientstore.New(h.DB)
	if len(set) == 0 {
		c, err := store.GetForTrainer(ctx, trainerID, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				respond.Error(w, http.StatusNotFound, "client not found")
				return
			}
			h.Log.Error("get client failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "server error")
			return
		}
		respond.JSON(w, http.StatusOK, c)
		return
	}

	c, err := store.UpdateForTrainer(ctx, trainerID, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "client not found")
			return
		}
		h.Log.Error("update client failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusOK, c)
}
