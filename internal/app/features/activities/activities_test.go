package activities_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GymAppCB/FinalApp/internal/app/features/activities"
	activitystore "github.com/GymAppCB/FinalApp/internal/app/store/activities"
	"github.com/GymAppCB/FinalApp/internal/domain/models"
	"github.com/GymAppCB/FinalApp/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestHandleRecent_CapsAtConfiguredLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	trainerID := primitive.NewObjectID()
	store := activitystore.New(db)
	for i := 0; i < 4; i++ {
		if _, err := store.Insert(ctx, models.Activity{
			ClientID:  primitive.NewObjectID(),
			TrainerID: trainerID,
			Type:      models.ActivityWorkout,
			Action:    "treino",
		}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	h := activities.NewHandler(db, 2, zap.NewNop())
	req := testutil.WithTrainer(httptest.NewRequest(http.MethodGet, "/recent", nil), trainerID)
	rec := testutil.NewRecorder()
	h.HandleRecent(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var list []models.Activity
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 entries, got %d", len(list))
	}
}

func TestNewHandler_DefaultsNonPositiveLimit(t *testing.T) {
	h := activities.NewHandler(nil, 0, zap.NewNop())
	if h.RecentLimit != activities.DefaultRecentLimit {
		t.Errorf("limit: got %d, want %d", h.RecentLimit, activities.DefaultRecentLimit)
	}
}

func TestHandleStats_CountersScopedToTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	otherTrainer := primitive.NewObjectID()
	clientID := primitive.NewObjectID()

	f.CreateClient(ctx, trainerID, "Cliente Um")
	f.CreateClient(ctx, trainerID, "Cliente Dois")
	f.CreateClient(ctx, otherTrainer, "Alheio")

	f.CreateWorkoutPlan(ctx, trainerID, clientID, "Plano ativo")
	insertInactivePlan(t, ctx, db, trainerID)

	f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentPending, time.Now().UTC())
	f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentCompleted, time.Now().UTC())

	if _, err := activitystore.New(db).Insert(ctx, models.Activity{
		ClientID:  clientID,
		TrainerID: trainerID,
		Type:      models.ActivityWorkout,
		Action:    "treino",
	}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	h := activities.NewHandler(db, 10, zap.NewNop())
	req := testutil.WithTrainer(httptest.NewRequest(http.MethodGet, "/stats", nil), trainerID)
	rec := testutil.NewRecorder()
	h.HandleStats(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var stats struct {
		TotalClients       int64 `json:"totalClients"`
		ActiveWorkouts     int64 `json:"activeWorkouts"`
		CompletedToday     int64 `json:"completedToday"`
		PendingAssessments int64 `json:"pendingAssessments"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalClients != 2 {
		t.Errorf("totalClients: got %d, want 2", stats.TotalClients)
	}
	if stats.ActiveWorkouts != 1 {
		t.Errorf("activeWorkouts: got %d, want 1", stats.ActiveWorkouts)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("completedToday: got %d, want 1", stats.CompletedToday)
	}
	if stats.PendingAssessments != 1 {
		t.Errorf("pendingAssessments: got %d, want 1", stats.PendingAssessments)
	}
}

func insertInactivePlan(t *testing.T, ctx context.Context, db *mongo.Database, trainerID primitive.ObjectID) {
	t.Helper()
	p := models.WorkoutPlan{
		ID:        primitive.NewObjectID(),
		Name:      "Plano encerrado",
		TrainerID: trainerID,
		IsActive:  false,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := db.Collection("workoutplans").InsertOne(ctx, p); err != nil {
		t.Fatalf("failed to insert inactive plan: %v", err)
	}
}
