package planstore_test

import (
	"errors"
	"testing"

	planstore "github.com/GymAppCB/FinalApp/internal/app/store/workoutplans"
	"github.com/GymAppCB/FinalApp/internal/domain/models"
	"github.com/GymAppCB/FinalApp/internal/testutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_AssignsExerciseIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := planstore.New(db)
	p, err := store.Create(ctx, models.WorkoutPlan{
		Name:      "Plano A",
		TrainerID: primitive.NewObjectID(),
		Exercises: []models.PlanExercise{
			{Name: "Supino", Sets: 4},
			{Name: "Crucifixo", Sets: 3},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for i, e := range p.Exercises {
		if e.ID.IsZero() {
			t.Errorf("exercise %d should have an ID", i)
		}
	}
}

func TestAddExercise(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	plan := f.CreateWorkoutPlan(ctx, trainerID, primitive.NewObjectID(), "Plano A")

	store := planstore.New(db)
	updated, err := store.AddExercise(ctx, trainerID, plan.ID, models.PlanExercise{Name: "Remada", Sets: 3})
	if err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	if len(updated.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(updated.Exercises))
	}

	// Plan of another trainer is unreachable.
	_, err = store.AddExercise(ctx, primitive.NewObjectID(), plan.ID, models.PlanExercise{Name: "x", Sets: 1})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("cross-trainer add: got %v, want ErrNoDocuments", err)
	}
}

func TestUpdateExercise_DistinguishesMissingPlanFromMissingEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	plan := f.CreateWorkoutPlan(ctx, trainerID, primitive.NewObjectID(), "Plano A")
	entry := plan.Exercises[0]

	store := planstore.New(db)

	updated, err := store.UpdateExercise(ctx, trainerID, plan.ID, entry.ID, bson.M{"sets": 5, "notes": "subir carga"})
	if err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}
	if updated.Exercises[0].Sets != 5 || updated.Exercises[0].Notes != "subir carga" {
		t.Errorf("patch not applied: %+v", updated.Exercises[0])
	}

	// Missing entry in an existing plan.
	_, err = store.UpdateExercise(ctx, trainerID, plan.ID, primitive.NewObjectID(), bson.M{"sets": 1})
	if !errors.Is(err, planstore.ErrExerciseNotFound) {
		t.Errorf("missing entry: got %v, want ErrExerciseNotFound", err)
	}

	// Missing plan.
	_, err = store.UpdateExercise(ctx, trainerID, primitive.NewObjectID(), entry.ID, bson.M{"sets": 1})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("missing plan: got %v, want ErrNoDocuments", err)
	}

	// Plan owned by someone else looks like a missing plan.
	_, err = store.UpdateExercise(ctx, primitive.NewObjectID(), plan.ID, entry.ID, bson.M{"sets": 1})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("cross-trainer plan: got %v, want ErrNoDocuments", err)
	}
}

func TestRemoveExercise(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	plan := f.CreateWorkoutPlan(ctx, trainerID, primitive.NewObjectID(), "Plano A")
	entry := plan.Exercises[0]

	store := planstore.New(db)

	_, err := store.RemoveExercise(ctx, trainerID, plan.ID, primitive.NewObjectID())
	if !errors.Is(err, planstore.ErrExerciseNotFound) {
		t.Errorf("missing entry: got %v, want ErrExerciseNotFound", err)
	}

	updated, err := store.RemoveExercise(ctx, trainerID, plan.ID, entry.ID)
	if err != nil {
		t.Fatalf("RemoveExercise failed: %v", err)
	}
	if len(updated.Exercises) != 0 {
		t.Errorf("expected empty exercise list, got %d entries", len(updated.Exercises))
	}
}

func TestCountActiveByTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := planstore.New(db)
	trainerID := primitive.NewObjectID()

	if _, err := store.Create(ctx, models.WorkoutPlan{Name: "active", TrainerID: trainerID, IsActive: true}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.WorkoutPlan{Name: "inactive", TrainerID: trainerID, IsActive: false}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.WorkoutPlan{Name: "other", TrainerID: primitive.NewObjectID(), IsActive: true}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.CountActiveByTrainer(ctx, trainerID)
	if err != nil {
		t.Fatalf("CountActiveByTrainer failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count: got %d, want 1", n)
	}
}
