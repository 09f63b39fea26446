package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trainer roles.
const (
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User is a trainer (or admin) account. Trainers own every other document
// in the database: clients, treinos, workout plans, assessments, and
// activity entries are all partitioned by the trainer's ID.
type User struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Specialties  []string           `bson:"specialties,omitempty" json:"specialties,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
