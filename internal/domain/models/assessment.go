package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment lifecycle states. The only forward transitions are
// pending -> scheduled, pending -> completed, and scheduled -> completed;
// nothing moves a completed assessment back.
const (
	AssessmentPending   = "pending"
	AssessmentScheduled = "scheduled"
	AssessmentCompleted = "completed"
)

// ValidAssessmentStatus reports whether s is one of the known states.
func ValidAssessmentStatus(s string) bool {
	return s == AssessmentPending || s == AssessmentScheduled || s == AssessmentCompleted
}

// ValidStatusTransition reports whether an assessment may move from one
// status to another. Keeping the same status is always allowed.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case AssessmentPending:
		return to == AssessmentScheduled || to == AssessmentCompleted
	case AssessmentScheduled:
		return to == AssessmentCompleted
	}
	return false
}

// Measurements is the point-in-time body snapshot taken during an assessment.
// All values are optional; weight/height in kg/cm, the rest in cm except
// body fat and muscle mass which are percentages.
type Measurements struct {
	Weight     float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Height     float64 `bson:"height,omitempty" json:"height,omitempty"`
	BodyFat    float64 `bson:"body_fat,omitempty" json:"bodyFat,omitempty"`
	MuscleMass float64 `bson:"muscle_mass,omitempty" json:"muscleMass,omitempty"`
	Chest      float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist      float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hip        float64 `bson:"hip,omitempty" json:"hip,omitempty"`
	Arm        float64 `bson:"arm,omitempty" json:"arm,omitempty"`
	Thigh      float64 `bson:"thigh,omitempty" json:"thigh,omitempty"`
	Neck       float64 `bson:"neck,omitempty" json:"neck,omitempty"`
}

// AssessmentPhoto is metadata for a progress photo. Upload mechanics live
// outside this service; only the resulting URL is stored here.
type AssessmentPhoto struct {
	URL        string    `bson:"url" json:"url"`
	Type       string    `bson:"type,omitempty" json:"type,omitempty"` // front | side | back
	UploadedAt time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// Assessment is a physical evaluation of a client by its owning trainer.
type Assessment struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	ClientID       primitive.ObjectID `bson:"client" json:"client"`
	TrainerID      primitive.ObjectID `bson:"trainer" json:"trainer"`
	Date           time.Time          `bson:"date" json:"date"`
	Measurements   Measurements       `bson:"measurements,omitempty" json:"measurements,omitempty"`
	Photos         []AssessmentPhoto  `bson:"photos,omitempty" json:"photos,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Goals          []string           `bson:"goals,omitempty" json:"goals,omitempty"`
	Status         string             `bson:"status" json:"status"`
	NextAssessment *time.Time         `bson:"next_assessment,omitempty" json:"nextAssessment,omitempty"`
}
