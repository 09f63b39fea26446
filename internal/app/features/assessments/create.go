// internal/app/features/assessments/create.go
package assessments

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	assessmentstore "github.com/GymAppCB/FinalApp/internal/app/store/assessments"
	"github.com/GymAppCB/FinalApp/internal/app/system/auth"
	"github.com/GymAppCB/FinalApp/internal/app/system/htmlsanitize"
	"github.com/GymAppCB/FinalApp/internal/app/system/respond"
	"github.com/GymAppCB/FinalApp/internal/app/system/timeouts"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createAssessmentRequest struct {
	Client         string                   `json:"client"`
	Date           *time.Time               `json:"date"`
	Measurements   models.Measurements      `json:"measurements"`
	Photos         []models.AssessmentPhoto `json:"photos"`
	Notes          string                   `json:"notes"`
	Goals          []string                 `json:"goals"`
	Status         string                   `json:"status"`
	NextAssessment *time.Time               `json:"nextAssessment"`
}

// HandleCreate handles POST /api/assessments. Creating an assessment also
// records exactly one feed entry.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	trainerID, ok := auth.TrainerID(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Client == "" {
		respond.Error(w, http.StatusBadRequest, "client is required")
		return
	}
	clientID, err := primitive.ObjectIDFromHex(req.Client)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid client id")
		return
	}
	if req.Status != "" && !models.ValidAssessmentStatus(req.Status) {
		respond.Error(w, http.StatusBadRequest, "unknown status")
		return
	}

	a := models.Assessment{
		ClientID:       clientID,
		TrainerID:      trainerID,
		Measurements:   req.Measurements,
		Photos:         req.Photos,
		Notes:          htmlsanitize.Clean(req.Notes),
		Goals:          htmlsanitize.CleanAll(req.Goals),
		Status:         req.Status,
		NextAssessment: req.NextAssessment,
	}
	if req.Date != nil {
		a.Date = *req.Date
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := assessmentstore.New(h.DB).Create(ctx, a)
	if err != nil {
		h.Log.Error("create assessment failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "server error")
		return
	}

	h.Rec.AssessmentRecorded(ctx, created.ClientID, trainerID, created.ID)

	respond.JSON(w, http.StatusCreated, created)
}
