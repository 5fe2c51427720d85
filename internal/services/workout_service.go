package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nolimit0410/fitlog-backend/internal/dto"
	"github.com/nolimit0410/fitlog-backend/internal/identity"
	"github.com/nolimit0410/fitlog-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrWorkoutNotFound covers both "no such record" and "not your record".
	// The two cases are deliberately indistinguishable so the API never leaks
	// whether another user's record exists.
	ErrWorkoutNotFound = errors.New("workout not found")

	ErrEntryListMismatch = errors.New("exercise entry lists must have the same length")
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// List returns the caller's workouts, most recent first.
func (s *WorkoutService) List(userID uuid.UUID) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.Scopes(identity.ForOwner(userID)).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

// Create builds the exercise list from the parallel payload lists, stamps
// the owner, and inserts the record.
func (s *WorkoutService) Create(userID uuid.UUID, req dto.WorkoutRequest) (*models.Workout, error) {
	exercises, err := buildExercises(req)
	if err != nil {
		return nil, err
	}

	workout := models.Workout{
		ID:           uuid.New(),
		UserID:       userID,
		WorkoutDate:  req.Date,
		CalorieCount: req.CalorieCount,
		Exercises:    exercises,
	}

	if err := s.db.Create(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	return &workout, nil
}

// Get fetches a single workout, owner-scoped like update and delete.
func (s *WorkoutService) Get(userID uuid.UUID, workoutID uuid.UUID) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.Scopes(identity.ForOwner(userID)).
		Where("id = ?", workoutID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Update replaces the record's fields in a single UPDATE whose predicate
// carries the ownership condition. Zero matched rows means the record is
// absent or owned by someone else; either way the caller gets the same
// rejection and nothing is modified.
func (s *WorkoutService) Update(userID uuid.UUID, workoutID uuid.UUID, req dto.WorkoutRequest) error {
	exercises, err := buildExercises(req)
	if err != nil {
		return err
	}

	result := s.db.Model(&models.Workout{}).
		Scopes(identity.ForOwner(userID)).
		Where("id = ?", workoutID).
		Updates(map[string]interface{}{
			"workout_date":  req.Date,
			"calorie_count": req.CalorieCount,
			"exercises":     exercises,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Delete removes the record with the same predicate-side ownership scoping
// as Update.
func (s *WorkoutService) Delete(userID uuid.UUID, workoutID uuid.UUID) error {
	result := s.db.Scopes(identity.ForOwner(userID)).
		Where("id = ?", workoutID).
		Delete(&models.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// buildExercises pairs the five parallel lists positionally. A length
// mismatch is rejected instead of silently truncating to the shortest list.
func buildExercises(req dto.WorkoutRequest) (datatypes.JSON, error) {
	n := len(req.ExerciseNames)
	if len(req.Reps) != n || len(req.TimeHours) != n ||
		len(req.TimeMinutes) != n || len(req.Weights) != n {
		return nil, ErrEntryListMismatch
	}

	entries := make([]models.ExerciseEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.ExerciseEntry{
			ExerciseName: req.ExerciseNames[i],
			Reps:         req.Reps[i],
			TimeHours:    req.TimeHours[i],
			TimeMinutes:  req.TimeMinutes[i],
			Weight:       req.Weights[i],
		})
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode exercises: %w", err)
	}
	return datatypes.JSON(b), nil
}
