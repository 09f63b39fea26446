package activitystore

import (
	"context"
	"time"

	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists the activity feed written as a side effect of other
// operations.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("activities")}
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_activities_trainer_date"),
		},
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "type", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_activities_trainer_type"),
		},
	})
	return err
}

func (s *Store) Insert(ctx context.Context, a models.Activity) (models.Activity, error) {
	a.ID = primitive.NewObjectID()
	a.Date = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

// RecentByTrainer returns the trainer's newest activities, capped at
// limit.
func (s *Store) RecentByTrainer(ctx context.Context, trainerID primitive.ObjectID, limit int64) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"trainer": trainerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	activities := []models.Activity{}
	if err := cur.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CountByTrainerTypeSince counts activities of one type recorded at or
// after the cutoff, used for the completed-today stat.
func (s *Store) CountByTrainerTypeSince(ctx context.Context, trainerID primitive.ObjectID, typ string, since time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"trainer": trainerID,
		"type":    typ,
		"date":    bson.M{"$gte": since},
	})
}
