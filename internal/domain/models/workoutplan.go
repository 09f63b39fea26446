package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalBest is the best recorded set for one exercise entry of a plan.
type PersonalBest struct {
	Weight float64   `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps   int       `bson:"reps,omitempty" json:"reps,omitempty"`
	Date   time.Time `bson:"date,omitempty" json:"date,omitempty"`
}

// PlanExercise is an exercise entry embedded in a workout plan. Entries are
// copies of treino fields, not references, and carry their own ID so the
// sub-resource routes can address them individually.
type PlanExercise struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Sets         int                `bson:"sets" json:"sets"`
	Reps         string             `bson:"reps,omitempty" json:"reps,omitempty"` // "12" or "12-15"
	Weight       float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	RestTime     int                `bson:"rest_time,omitempty" json:"restTime,omitempty"` // seconds
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	VideoURL     string             `bson:"video_url,omitempty" json:"videoUrl,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	PersonalBest PersonalBest       `bson:"personal_best,omitempty" json:"personalBest,omitempty"`
}

// WorkoutPlan is an ordered exercise program assigned to one client by its
// owning trainer.
type WorkoutPlan struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	ClientID          primitive.ObjectID `bson:"client" json:"client"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Exercises         []PlanExercise     `bson:"exercises" json:"exercises"`
	TrainerID         primitive.ObjectID `bson:"trainer" json:"trainer"`
	IsActive          bool               `bson:"is_active" json:"isActive"`
	Difficulty        string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	EstimatedDuration int                `bson:"estimated_duration,omitempty" json:"estimatedDuration,omitempty"` // minutes
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	LastExecuted      *time.Time         `bson:"last_executed,omitempty" json:"lastExecuted,omitempty"`
}
