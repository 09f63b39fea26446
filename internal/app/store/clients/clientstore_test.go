package clientstore_test

import (
	"errors"
	"testing"

	clientstore "github.com/GymAppCB/FinalApp/internal/app/store/clients"
	"github.com/GymAppCB/FinalApp/internal/domain/models"
	"github.com/GymAppCB/FinalApp/internal/testutil"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := clientstore.New(db)
	trainerID := primitive.NewObjectID()

	created, err := store.Create(ctx, models.Client{
		Name:      "Maria Silva",
		Email:     "maria@test.com",
		TrainerID: trainerID,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("Create should assign an ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("Create should set CreatedAt")
	}

	got, err := store.GetForTrainer(ctx, trainerID, created.ID)
	if err != nil {
		t.Fatalf("GetForTrainer failed: %v", err)
	}
	if got.Name != "Maria Silva" {
		t.Errorf("name: got %q", got.Name)
	}
}

func TestGetForTrainer_OtherTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	c := f.CreateClient(ctx, owner, "owned")

	_, err := clientstore.New(db).GetForTrainer(ctx, primitive.NewObjectID(), c.ID)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("cross-trainer get: got %v, want ErrNoDocuments", err)
	}
}

func TestListByTrainer_ScopedAndOrdered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := clientstore.New(db)
	trainerA := primitive.NewObjectID()
	trainerB := primitive.NewObjectID()

	first, _ := store.Create(ctx, models.Client{Name: "first", TrainerID: trainerA})
	second, _ := store.Create(ctx, models.Client{Name: "second", TrainerID: trainerA})
	if _, err := store.Create(ctx, models.Client{Name: "other", TrainerID: trainerB}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.ListByTrainer(ctx, trainerA)
	if err != nil {
		t.Fatalf("ListByTrainer failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(list))
	}
	// Newest first.
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Errorf("expected newest first, got %v then %v", list[0].CreatedAt, list[1].CreatedAt)
	}
	for _, c := range list {
		if c.ID != first.ID && c.ID != second.ID {
			t.Errorf("unexpected client %s in list", c.ID.Hex())
		}
	}
}

func TestUpdateForTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	store := clientstore.New(db)
	trainerID := primitive.NewObjectID()
	c := f.CreateClient(ctx, trainerID, "before")

	updated, err := store.UpdateForTrainer(ctx, trainerID, c.ID, bson.M{"name": "after", "is_active": false})
	if err != nil {
		t.Fatalf("UpdateForTrainer failed: %v", err)
	}
	if updated.Name != "after" || updated.IsActive {
		t.Errorf("update not applied: %+v", updated)
	}

	_, err = store.UpdateForTrainer(ctx, primitive.NewObjectID(), c.ID, bson.M{"name": "x"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("cross-trainer update: got %v, want ErrNoDocuments", err)
	}
}

func TestDeleteForTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	store := clientstore.New(db)
	trainerID := primitive.NewObjectID()
	c := f.CreateClient(ctx, trainerID, "victim")

	n, err := store.DeleteForTrainer(ctx, primitive.NewObjectID(), c.ID)
	if err != nil {
		t.Fatalf("DeleteForTrainer failed: %v", err)
	}
	if n != 0 {
		t.Error("cross-trainer delete should remove nothing")
	}

	n, err = store.DeleteForTrainer(ctx, trainerID, c.ID)
	if err != nil {
		t.Fatalf("DeleteForTrainer failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deletion, got %d", n)
	}
}

func TestCountByTrainer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	trainerID := primitive.NewObjectID()
	f.CreateClient(ctx, trainerID, "a")
	f.CreateClient(ctx, trainerID, "b")
	f.CreateClient(ctx, primitive.NewObjectID(), "someone else")

	n, err := clientstore.New(db).CountByTrainer(ctx, trainerID)
	if err != nil {
		t.Fatalf("CountByTrainer failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}
