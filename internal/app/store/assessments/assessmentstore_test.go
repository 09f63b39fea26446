package assessmentstore_test

import (
	"errors"
	"testing"
	"time"

	assessmentstore "github.com/GymAppCB/FinalApp/internal/app/store/assessments"
	"github.com/GymAppCB/FinalApp/internal/domain/models"
	"github.com/GymAppCB/FinalApp/internal/testutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := assessmentstore.New(db)
	a, err := store.Create(ctx, models.Assessment{
		ClientID:  primitive.NewObjectID(),
		TrainerID: primitive.NewObjectID(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.ID.IsZero() {
		t.Error("ID should be assigned")
	}
	if a.Date.IsZero() {
		t.Error("Date should default to now")
	}
	if a.Status != models.AssessmentCompleted {
		t.Errorf("default status: got %q, want %q", a.Status, models.AssessmentCompleted)
	}
}

func TestListPendingByTrainer_FiltersAndSortsAscending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	now := time.Now().UTC()

	later := f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentScheduled, now.Add(48*time.Hour))
	soon := f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentPending, now.Add(24*time.Hour))
	f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentCompleted, now)
	f.CreateAssessment(ctx, primitive.NewObjectID(), clientID, models.AssessmentPending, now)

	store := assessmentstore.New(db)
	pending, err := store.ListPendingByTrainer(ctx, trainerID)
	if err != nil {
		t.Fatalf("ListPendingByTrainer failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending assessments, got %d", len(pending))
	}
	if pending[0].ID != soon.ID || pending[1].ID != later.ID {
		t.Errorf("expected soonest first, got %v then %v", pending[0].ID, pending[1].ID)
	}
}

func TestUpdateForTrainer_StatusTransitions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	store := assessmentstore.New(db)

	pending := f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentPending, time.Now().UTC())
	updated, err := store.UpdateForTrainer(ctx, trainerID, pending.ID, bson.M{"status": models.AssessmentScheduled})
	if err != nil {
		t.Fatalf("pending to scheduled failed: %v", err)
	}
	if updated.Status != models.AssessmentScheduled {
		t.Errorf("status: got %q, want %q", updated.Status, models.AssessmentScheduled)
	}

	completed := f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentCompleted, time.Now().UTC())
	_, err = store.UpdateForTrainer(ctx, trainerID, completed.ID, bson.M{"status": models.AssessmentPending})
	if !errors.Is(err, assessmentstore.ErrInvalidTransition) {
		t.Errorf("completed to pending: got %v, want ErrInvalidTransition", err)
	}

	// Non-status patches skip the transition check.
	patched, err := store.UpdateForTrainer(ctx, trainerID, completed.ID, bson.M{"notes": "melhora na postura"})
	if err != nil {
		t.Fatalf("notes patch failed: %v", err)
	}
	if patched.Notes != "melhora na postura" {
		t.Errorf("notes: got %q", patched.Notes)
	}
}

func TestUpdateForTrainer_CrossTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	a := f.CreateAssessment(ctx, primitive.NewObjectID(), primitive.NewObjectID(), models.AssessmentPending, time.Now().UTC())

	store := assessmentstore.New(db)
	_, err := store.UpdateForTrainer(ctx, primitive.NewObjectID(), a.ID, bson.M{"notes": "x"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("cross-trainer update: got %v, want ErrNoDocuments", err)
	}
}

func TestCountPendingByTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	clientID := primitive.NewObjectID()
	now := time.Now().UTC()

	f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentPending, now)
	f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentScheduled, now)
	f.CreateAssessment(ctx, trainerID, clientID, models.AssessmentCompleted, now)

	store := assessmentstore.New(db)
	n, err := store.CountPendingByTrainer(ctx, trainerID)
	if err != nil {
		t.Fatalf("CountPendingByTrainer failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}
