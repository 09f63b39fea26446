package assessmentstore

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

// ErrInvalidTransition reports a status change the workflow does not
// allow, such as reopening a completed assessment.
var ErrInvalidTransition = errors.New("invalid assessment status transition")

// Store manages physical assessments, scoped to the owning trainer.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assessments")}
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_assessments_trainer_date"),
		},
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "status", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("idx_assessments_trainer_status"),
		},
	})
	return err
}

func (s *Store) Create(ctx context.Context, a models.Assessment) (models.Assessment, error) {
	a.ID = primitive.NewObjectID()
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = models.AssessmentCompleted
	}
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Assessment{}, err
	}
	return a, nil
}

// ListByTrainer returns the trainer's assessments, most recent date first.
func (s *Store) ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]models.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"trainer": trainerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	assessments := []models.Assessment{}
	if err := cur.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// ListPendingByTrainer returns not-yet-completed assessments ordered by
// date ascending, soonest first.
func (s *Store) ListPendingByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]models.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	filter := bson.M{
		"trainer": trainerID,
		"status":  bson.M{"$in": bson.A{models.AssessmentPending, models.AssessmentScheduled}},
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	assessments := []models.Assessment{}
	if err := cur.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (s *Store) GetForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (models.Assessment, error) {
	var a models.Assessment
	err := s.c.FindOne(ctx, bson.M{"_id": id, "trainer": trainerID}).Decode(&a)
	if err != nil {
		return models.Assessment{}, err
	}
	return a, nil
}

// UpdateForTrainer applies a partial $set under the owner filter. When the
// patch carries a status change, the transition is checked against the
// current document first; an illegal one reports ErrInvalidTransition
// without touching the record.
func (s *Store) UpdateForTrainer(ctx context.Context, trainerID, id primitive.ObjectID, set bson.M) (models.Assessment, error) {
	if next, ok := set["status"].(string); ok {
		current, err := s.GetForTrainer(ctx, trainerID, id)
		if err != nil {
			return models.Assessment{}, err
		}
		if !models.ValidStatusTransition(current.Status, next) {
			return models.Assessment{}, ErrInvalidTransition
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Assessment
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "trainer": trainerID},
		bson.M{"$set": set},
		opts,
	).Decode(&a)
	if err != nil {
		return models.Assessment{}, err
	}
	return a, nil
}

func (s *Store) DeleteForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "trainer": trainerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountPendingByTrainer counts not-yet-completed assessments for the
// dashboard stats endpoint.
func (s *Store) CountPendingByTrainer(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"trainer": trainerID,
		"status":  bson.M{"$in": bson.A{models.AssessmentPending, models.AssessmentScheduled}},
	})
}
