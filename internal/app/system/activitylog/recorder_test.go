package activitylog_test

import (
	"context"
	"testing"

	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	"github.com/GymAppCB/FinalApp/internal/app/system/activitylog"
	"github.com/GymAppCB/FinalApp/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *activitylog.Recorder
	// Must not panic.
	rec.WorkoutPlanCreated(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), "Plano A")
	rec.AssessmentRecorded(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID())
}

func TestRecorder_WorkoutPlanCreated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := activitystore.New(db)
	rec := activitylog.New(store, zap.NewNop())

	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	planID := primitive.NewObjectID()

	rec.WorkoutPlanCreated(ctx, clientID, trainerID, planID, "Hipertrofia A")

	list, err := store.RecentByTrainer(ctx, trainerID, 10)
	if err != nil {
		t.Fatalf("RecentByTrainer failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(list))
	}
	a := list[0]
	if a.Type != "workout" {
		t.Errorf("type: got %q, want workout", a.Type)
	}
	if a.Action != "Novo plano de treino criado: Hipertrofia A" {
		t.Errorf("unexpected action %q", a.Action)
	}
	if a.Details.WorkoutPlanID == nil || *a.Details.WorkoutPlanID != planID {
		t.Error("details should reference the plan")
	}
}

func TestRecorder_SwallowsStoreFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	rec := activitylog.New(activitystore.New(db), zap.NewNop())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	// The insert fails on the canceled context; Record must not panic or
	// propagate the error.
	rec.AssessmentRecorded(canceled, primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID())
}
