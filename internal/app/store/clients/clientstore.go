package clientstore

import (
	"context"
	"time"

	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages client records. Every read and write path below filters on
// the owning trainer's ID; there is deliberately no way to reach a client
// document without one.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clients")}
}

// EnsureIndexes creates the owner-scoped listing index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_clients_trainer_created"),
	})
	return err
}

// Create inserts a client. The caller must already have set TrainerID to
// the authenticated trainer; the store only fills in ID and CreatedAt.
func (s *Store) Create(ctx context.Context, c models.Client) (models.Client, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// ListByTrainer returns all clients owned by the trainer, newest first.
func (s *Store) ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]models.Client, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"trainer": trainerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []models.Client{}
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetForTrainer returns the client only when it is owned by the trainer;
// a client owned by someone else yields mongo.ErrNoDocuments, same as one
// that does not exist.
func (s *Store) GetForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (models.Client, error) {
	var c models.Client
	err := s.c.FindOne(ctx, bson.M{"_id": id, "trainer": trainerID}).Decode(&c)
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// UpdateForTrainer applies a partial $set under the owner filter and
// returns the updated document. mongo.ErrNoDocuments means the id does not
// resolve under this trainer's ownership.
func (s *Store) UpdateForTrainer(ctx context.Context, trainerID, id primitive.ObjectID, set bson.M) (models.Client, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c models.Client
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "trainer": trainerID},
		bson.M{"$set": set},
		opts,
	).Decode(&c)
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// DeleteForTrainer removes an owned client. The returned count is 0 when
// the id was absent or owned by another trainer, which callers translate
// to the same not-found outcome.
func (s *Store) DeleteForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "trainer": trainerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByTrainer returns the number of clients owned by the trainer.
func (s *Store) CountByTrainer(ctx context.Context, trainerID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"trainer": trainerID})
}
