package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TreinoCategories is the canonical list of exercise categories.
var TreinoCategories = []string{
	"Peito", "Costas", "Pernas", "Ombros", "Braços", "Cardio", "Funcional", "Core",
}

// Treino is an exercise in the trainer's library ("treino" is what the app
// calls a single exercise definition). A treino belongs to one trainer, or
// is shared with every trainer when IsPublic is set. Workout plans copy the
// fields they need instead of referencing treino documents, so editing a
// treino never changes existing plans.
type Treino struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Category     string             `bson:"category" json:"category"`
	MuscleGroups []string           `bson:"muscle_groups,omitempty" json:"muscleGroups,omitempty"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	Equipment    []string           `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Instructions []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Tips         []string           `bson:"tips,omitempty" json:"tips,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	VideoURL     string             `bson:"video_url,omitempty" json:"videoUrl,omitempty"`

	// Estimates shown in the library list.
	Duration int `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Calories int `bson:"calories,omitempty" json:"calories,omitempty"`

	// Defaults copied into a plan when the treino is added to it.
	DefaultSets     int     `bson:"default_sets,omitempty" json:"defaultSets,omitempty"`
	DefaultReps     string  `bson:"default_reps,omitempty" json:"defaultReps,omitempty"` // "12" or "12-15"
	DefaultWeight   float64 `bson:"default_weight,omitempty" json:"defaultWeight,omitempty"`
	DefaultRestTime int     `bson:"default_rest_time,omitempty" json:"defaultRestTime,omitempty"` // seconds

	TrainerID primitive.ObjectID `bson:"trainer" json:"trainer"`
	IsPublic  bool               `bson:"is_public" json:"isPublic"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
