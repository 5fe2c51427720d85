package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workout is a single exercise-log record owned by exactly one user. The
// owner is stamped at creation and never changes.
type Workout struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkoutDate  string         `gorm:"size:20" json:"date"`
	CalorieCount int            `json:"calorie_count"`
	Exercises    datatypes.JSON `gorm:"type:jsonb" json:"exercises"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ExerciseEntry is one row of the workout's exercise list, stored inside the
// Exercises JSONB column. Values stay strings, exactly as submitted.
type ExerciseEntry struct {
	ExerciseName string `json:"exercise_name"`
	Reps         string `json:"reps"`
	TimeHours    string `json:"time_hours"`
	TimeMinutes  string `json:"time_minutes"`
	Weight       string `json:"weight"`
}
