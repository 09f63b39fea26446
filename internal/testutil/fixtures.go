package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTrainer inserts a trainer with a bcrypt hash of the given
// password. MinCost keeps test runs fast.
func (f *Fixtures) CreateTrainer(ctx context.Context, name, email, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	u := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleTrainer,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test trainer: %v", err)
	}
	return u
}

// CreateClient inserts a client owned by the given trainer.
func (f *Fixtures) CreateClient(ctx context.Context, trainerID primitive.ObjectID, name string) models.Client {
	f.t.Helper()

	c := models.Client{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     name + "@test.com",
		TrainerID: trainerID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("clients").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test client: %v", err)
	}
	return c
}

// CreateTreino inserts an exercise owned by the given trainer.
func (f *Fixtures) CreateTreino(ctx context.Context, trainerID primitive.ObjectID, name string, public bool) models.Treino {
	f.t.Helper()

	tr := models.Treino{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Category:  "Peito",
		TrainerID: trainerID,
		IsPublic:  public,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("treinos").InsertOne(ctx, tr); err != nil {
		f.t.Fatalf("failed to create test treino: %v", err)
	}
	return tr
}

// CreateWorkoutPlan inserts a plan for the given trainer and client with
// one exercise entry.
func (f *Fixtures) CreateWorkoutPlan(ctx context.Context, trainerID, clientID primitive.ObjectID, name string) models.WorkoutPlan {
	f.t.Helper()

	p := models.WorkoutPlan{
		ID:       primitive.NewObjectID(),
		ClientID: clientID,
		Name:     name,
		Exercises: []models.PlanExercise{
			{
				ID:   primitive.NewObjectID(),
				Name: "Supino reto",
				Sets: 4,
				Reps: "10-12",
			},
		},
		TrainerID: trainerID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("workoutplans").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test workout plan: %v", err)
	}
	return p
}

// CreateAssessment inserts an assessment with the given status.
func (f *Fixtures) CreateAssessment(ctx context.Context, trainerID, clientID primitive.ObjectID, status string, date time.Time) models.Assessment {
	f.t.Helper()

	a := models.Assessment{
		ID:        primitive.NewObjectID(),
		ClientID:  clientID,
		TrainerID: trainerID,
		Date:      date,
		Status:    status,
		Measurements: models.Measurements{
			Weight: 80,
			Height: 180,
		},
	}
	if _, err := f.db.Collection("assessments").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test assessment: %v", err)
	}
	return a
}
