package treinostore

import (
	"context"
	"time"

	"github.com/GymAppCB/FinalApp/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the exercise library. Reads are visible to the owner and,
// for public entries, to every trainer; writes remain owner-only.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("treinos")}
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainer", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_treinos_trainer_created"),
		},
		{
			Keys:    bson.D{{Key: "is_public", Value: 1}},
			Options: options.Index().SetName("idx_treinos_public"),
		},
	})
	return err
}

// visibleTo matches documents the trainer may read: their own plus any
// marked public.
func visibleTo(trainerID primitive.ObjectID) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"trainer": trainerID},
		bson.M{"is_public": true},
	}}
}

func (s *Store) Create(ctx context.Context, t models.Treino) (models.Treino, error) {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Treino{}, err
	}
	return t, nil
}

// ListVisibleTo returns the trainer's own exercises together with public
// ones from other trainers, newest first.
func (s *Store) ListVisibleTo(ctx context.Context, trainerID primitive.ObjectID) ([]models.Treino, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, visibleTo(trainerID), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	treinos := []models.Treino{}
	if err := cur.All(ctx, &treinos); err != nil {
		return nil, err
	}
	return treinos, nil
}

func (s *Store) GetVisibleTo(ctx context.Context, trainerID, id primitive.ObjectID) (models.Treino, error) {
	filter := visibleTo(trainerID)
	filter["_id"] = id
	var t models.Treino
	if err := s.c.FindOne(ctx, filter).Decode(&t); err != nil {
		return models.Treino{}, err
	}
	return t, nil
}

// UpdateForTrainer is owner-only: a public exercise owned by another
// trainer cannot be modified and reports mongo.ErrNoDocuments.
func (s *Store) UpdateForTrainer(ctx context.Context, trainerID, id primitive.ObjectID, set bson.M) (models.Treino, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.Treino
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "trainer": trainerID},
		bson.M{"$set": set},
		opts,
	).Decode(&t)
	if err != nil {
		return models.Treino{}, err
	}
	return t, nil
}

func (s *Store) DeleteForTrainer(ctx context.Context, trainerID, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "trainer": trainerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
