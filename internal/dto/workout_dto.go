package dto

import "github.com/nolimit0410/fitlog-backend/internal/models"

// WorkoutRequest carries the create/update payload. The five exercise lists
// are parallel: entry i is built from index i of each list, and all five
// must have the same length.
type WorkoutRequest struct {
	Date          string   `json:"date"`
	CalorieCount  int      `json:"calorie_count"`
	ExerciseNames []string `json:"exercise_names"`
	Reps          []string `json:"reps"`
	TimeHours     []string `json:"time_hours"`
	TimeMinutes   []string `json:"time_minutes"`
	Weights       []string `json:"weights"`
}

type WorkoutListResponse struct {
	Workouts []models.Workout `json:"workouts"`
	Total    int              `json:"total"`
}

type DeleteWorkoutResponse struct {
	Message string `json:"message"`
}
