package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fitness levels used by the health questionnaire and by treino difficulty.
const (
	LevelBeginner     = "Iniciante"
	LevelIntermediate = "Intermédio"
	LevelAdvanced     = "Avançado"
)

// HealthQuestionnaire captures the intake answers a trainer records when
// registering a new client.
type HealthQuestionnaire struct {
	MedicalConditions []string `bson:"medical_conditions,omitempty" json:"medicalConditions,omitempty"`
	Medications       []string `bson:"medications,omitempty" json:"medications,omitempty"`
	Injuries          []string `bson:"injuries,omitempty" json:"injuries,omitempty"`
	FitnessLevel      string   `bson:"fitness_level,omitempty" json:"fitnessLevel,omitempty"`
	Goals             []string `bson:"goals,omitempty" json:"goals,omitempty"`
}

// EmergencyContact is the person to call if something happens during a session.
type EmergencyContact struct {
	Name         string `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
}

// Client is a gym member managed by exactly one trainer. Ownership is fixed
// at creation and never reassigned; every query path filters on TrainerID.
type Client struct {
	ID                  primitive.ObjectID  `bson:"_id" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Email               string              `bson:"email" json:"email"`
	Phone               string              `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth         *time.Time          `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	Gender              string              `bson:"gender,omitempty" json:"gender,omitempty"`
	HealthQuestionnaire HealthQuestionnaire `bson:"health_questionnaire,omitempty" json:"healthQuestionnaire,omitempty"`
	EmergencyContact    EmergencyContact    `bson:"emergency_contact,omitempty" json:"emergencyContact,omitempty"`
	TrainerID           primitive.ObjectID  `bson:"trainer" json:"trainer"`
	IsActive            bool                `bson:"is_active" json:"isActive"`
	CreatedAt           time.Time           `bson:"created_at" json:"createdAt"`
	LastWorkout         *time.Time          `bson:"last_workout,omitempty" json:"lastWorkout,omitempty"`
}
