package planstore

import (
	"context"
	"errors"
	"time"

	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrExerciseNotFound reports that a plan exists and is owned by the
// caller but does not contain the requested exercise entry.
var ErrExerciseNotFound = errors.New("exercise not found in plan")

// Store manages workout plans and their embedded exercise entries. All
// access is scoped to the owning trainer.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("workoutplans")}
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_workoutplans_trainer_created"),
		},
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("idx_workoutplans_trainer_active"),
		},
	})
	return err
}

func (s *Store) Create(ctx context.Context, p models.WorkoutPlan) (models.WorkoutPlan, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	for i := range p.Exercises {
		if p.Exercises[i].ID.IsZero() {
			p.Exercises[i].ID = primitive.NewObjectID()
		}
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.WorkoutPlan{}, err
	}
	return p, nil
}

func (s *Store) ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]models.WorkoutPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"trainer": trainerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	plans := []models.WorkoutPlan{}
	if err := cur.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *Store) GetForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (models.WorkoutPlan, error) {
	var p models.WorkoutPlan
	err := s.c.FindOne(ctx, bson.M{"_id": id, "trainer": trainerID}).Decode(&p)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	return p, nil
}

func (s *Store) UpdateForTrainer(ctx context.Context, trainerID, id primitive.ObjectID, set bson.M) (models.WorkoutPlan, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.WorkoutPlan
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "trainer": trainerID},
		bson.M{"$set": set},
		opts,
	).Decode(&p)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	return p, nil
}

func (s *Store) DeleteForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "trainer": trainerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddExercise appends an entry to the plan's exercise list and returns the
// updated plan. mongo.ErrNoDocuments means the plan itself does not
// resolve under this trainer.
func (s *Store) AddExercise(ctx context.Context, trainerID, planID primitive.ObjectID, e models.PlanExercise) (models.WorkoutPlan, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.WorkoutPlan
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": planID, "trainer": trainerID},
		bson.M{"$push": bson.M{"exercises": e}},
		opts,
	).Decode(&p)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	return p, nil
}

// UpdateExercise applies a partial $set to one embedded entry. The two
// failure modes stay distinct: mongo.ErrNoDocuments when the plan does not
// resolve under this trainer, ErrExerciseNotFound when the plan does but
// the entry is absent.
func (s *Store) UpdateExercise(ctx context.Context, trainerID, planID, exerciseID primitive.ObjectID, set bson.M) (models.WorkoutPlan, error) {
	if _, err := s.GetForTrainer(ctx, trainerID, planID); err != nil {
		return models.WorkoutPlan{}, err
	}

	positional := bson.M{}
	for k, v := range set {
		positional["exercises.$."+k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.WorkoutPlan
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": planID, "trainer": trainerID, "exercises._id": exerciseID},
		bson.M{"$set": positional},
		opts,
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.WorkoutPlan{}, ErrExerciseNotFound
	}
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	return p, nil
}

// RemoveExercise pulls one entry from the plan's exercise list, with the
// same plan-vs-entry error distinction as UpdateExercise.
func (s *Store) RemoveExercise(ctx context.Context, trainerID, planID, exerciseID primitive.ObjectID) (models.WorkoutPlan, error) {
	var existing models.WorkoutPlan
	err := s.c.FindOne(ctx, bson.M{"_id": planID, "trainer": trainerID}).Decode(&existing)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	found := false
	for _, e := range existing.Exercises {
		if e.ID == exerciseID {
			found = true
			break
		}
	}
	if !found {
		return models.WorkoutPlan{}, ErrExerciseNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.WorkoutPlan
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": planID, "trainer": trainerID},
		bson.M{"$pull": bson.M{"exercises": bson.M{"_id": exerciseID}}},
		opts,
	).Decode(&p)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	return p, nil
}

// CountActiveByTrainer returns the trainer's active plan count, used by
// the dashboard stats endpoint.
func (s *Store) CountActiveByTrainer(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"trainer": trainerID, "is_active": true})
}
