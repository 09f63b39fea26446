// internal/app/features/clients/create.go
package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/htmlsanitize"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.uber.org/zap"
)

type createClientRequest struct {
	Name                string                     `json:"name"`
	Email               string                     `json:"email"`
	Phone               string                     `json:"phone"`
	DateOfBirth         *time.Time                 `json:"dateOfBirth"`
	Gender              string                     `json:"gender"`
	HealthQuestionnaire models.HealthQuestionnaire `json:"healthQuestionnaire"`
	EmergencyContact    models.EmergencyContact    `json:"emergencyContact"`
	IsActive            *bool                      `json:"isActive"`
}

// HandleCreate handles POST /api/clients. Ownership is taken from the
// token, never from the body: whatever trainer field a client sends is
// ignored.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		respond.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c := models.Client{
		Name:        htmlsanitize.Clean(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		HealthQuestionnaire: models.HealthQuestionnaire{
			MedicalConditions: htmlsanitize.CleanAll(req.HealthQuestionnaire.MedicalConditions),
			Medications:       htmlsanitize.CleanAll(req.HealthQuestionnaire.Medications),
			Injuries:          htmlsanitize.CleanAll(req.HealthQuestionnaire.Injuries),
			FitnessLevel:      req.HealthQuestionnaire.FitnessLevel,
			Goals:             htmlsanitize.CleanAll(req.HealthQuestionnaire.Goals),
		},
		EmergencyContact: req.EmergencyContact,
		TrainerID:        trainerID,
		IsActive:         isActive,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := clientstore.New(h.DB).Create(ctx, c)
	if err != nil {
		h.Log.Error("create client failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}
