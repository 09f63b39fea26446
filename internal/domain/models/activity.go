package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity types.
const (
	ActivityWorkout      = "workout"
	ActivityAssessment   = "assessment"
	ActivityRecord       = "record"
	ActivityRegistration = "registration"
	ActivityGoalAchieved = "goal_achieved"
)

// ActivityDetails carries type-specific context for an activity entry.
type ActivityDetails struct {
	WorkoutPlanID  *primitive.ObjectID `bson:"workout_plan,omitempty" json:"workoutPlan,omitempty"`
	AssessmentID   *primitive.ObjectID `bson:"assessment,omitempty" json:"assessment,omitempty"`
	ExerciseName   string              `bson:"exercise_name,omitempty" json:"exerciseName,omitempty"`
	PreviousRecord float64             `bson:"previous_record,omitempty" json:"previousRecord,omitempty"`
	NewRecord      float64             `bson:"new_record,omitempty" json:"newRecord,omitempty"`
	AdditionalInfo string              `bson:"additional_info,omitempty" json:"additionalInfo,omitempty"`
}

// Activity is an append-only timeline entry describing something that
// happened to a client: a new plan, an assessment, a personal record.
// Entries are written by the activity recorder as a side effect of domain
// mutations and are never updated or deleted by normal flow.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ClientID  primitive.ObjectID `bson:"client" json:"client"`
	TrainerID primitive.ObjectID `bson:"trainer" json:"trainer"`
	Type      string             `bson:"type" json:"type"`
	Action    string             `bson:"action" json:"action"`
	Details   ActivityDetails    `bson:"details,omitempty" json:"details,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
}
