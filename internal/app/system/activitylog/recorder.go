// internal/app/system/activitylog/recorder.go
package activitylog

import (
	"context"

	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Recorder writes activity feed entries as a side effect of other
// operations. Recording never fails the triggering operation: store
// errors are logged and dropped.
type Recorder struct {
	store  *activitystore.Store
	zapLog *zap.Logger
}

// New creates a Recorder. Store failures are reported through zapLog.
func New(store *activitystore.Store, zapLog *zap.Logger) *Recorder {
	return &Recorder{store: store, zapLog: zapLog}
}

// Record persists one activity. A nil receiver is a no-op, which lets
// tests pass a nil recorder.
func (r *Recorder) Record(ctx context.Context, a models.Activity) {
	if r == nil {
		return
	}
	if _, err := r.store.Insert(ctx, a); err != nil {
		r.zapLog.Error("failed to record activity",
			zap.Error(err),
			zap.String("type", a.Type),
			zap.String("trainer_id", a.TrainerID.Hex()),
		)
	}
}

// WorkoutPlanCreated records the feed entry for a new plan. The action
// text is what the web client displays, so it stays in Portuguese.
func (r *Recorder) WorkoutPlanCreated(ctx context.Context, clientID, trainerID, planID primitive.ObjectID, planName string) {
	r.Record(ctx, models.Activity{
		Type:      models.ActivityWorkout,
		ClientID:  clientID,
		TrainerID: trainerID,
		Action:    "Novo plano de treino criado: " + planName,
		Details: models.ActivityDetails{
			WorkoutPlanID: &planID,
		},
	})
}

// AssessmentRecorded records the feed entry for a new assessment.
func (r *Recorder) AssessmentRecorded(ctx context.Context, clientID, trainerID, assessmentID primitive.ObjectID) {
	r.Record(ctx, models.Activity{
		Type:      models.ActivityAssessment,
		ClientID:  clientID,
		TrainerID: trainerID,
		Action:    "Nova avaliação física realizada",
		Details: models.ActivityDetails{
			AssessmentID: &assessmentID,
		},
	})
}
