package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/nolimit0410/fitlog-backend/internal/dto"
	"github.com/nolimit0410/fitlog-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workoutColumns() []string {
	return []string{"id", "user_id", "workout_date", "calorie_count", "exercises", "created_at", "updated_at"}
}

func squatRequest() dto.WorkoutRequest {
	return dto.WorkoutRequest{
		Date:          "2024-01-01",
		CalorieCount:  500,
		ExerciseNames: []string{"squat"},
		Reps:          []string{"10"},
		TimeHours:     []string{"0"},
		TimeMinutes:   []string{"30"},
		Weights:       []string{"135"},
	}
}

func TestCreateStampsOwner(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	owner := uuid.New()

	mock.ExpectQuery(`INSERT INTO "workouts" .+ RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	workout, err := svc.Create(owner, squatRequest())
	require.NoError(t, err)
	assert.Equal(t, owner, workout.UserID)
	assert.Equal(t, "2024-01-01", workout.WorkoutDate)
	assert.Equal(t, 500, workout.CalorieCount)

	var entries []models.ExerciseEntry
	require.NoError(t, json.Unmarshal(workout.Exercises, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, models.ExerciseEntry{
		ExerciseName: "squat",
		Reps:         "10",
		TimeHours:    "0",
		TimeMinutes:  "30",
		Weight:       "135",
	}, entries[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsMismatchedLists(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewWorkoutService(db)

	req := squatRequest()
	req.Reps = []string{"10", "12"}

	_, err := svc.Create(uuid.New(), req)
	assert.ErrorIs(t, err, ErrEntryListMismatch)
}

func TestListIsOwnerScoped(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	owner := uuid.New()

	exercises, err := json.Marshal([]models.ExerciseEntry{{ExerciseName: "squat", Reps: "10", TimeHours: "0", TimeMinutes: "30", Weight: "135"}})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows(workoutColumns()).
			AddRow(uuid.New(), owner, "2024-01-01", 500, exercises, time.Now(), time.Now()))

	workouts, err := svc.List(owner)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, owner, workouts[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoundTrip(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	owner := uuid.New()
	workoutID := uuid.New()

	exercises, err := json.Marshal([]models.ExerciseEntry{{ExerciseName: "squat", Reps: "10", TimeHours: "0", TimeMinutes: "30", Weight: "135"}})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE user_id = \$1 AND id = \$2`).
		WithArgs(owner, workoutID, 1).
		WillReturnRows(sqlmock.NewRows(workoutColumns()).
			AddRow(workoutID, owner, "2024-01-01", 500, exercises, time.Now(), time.Now()))

	workout, err := svc.Get(owner, workoutID)
	require.NoError(t, err)
	assert.Equal(t, workoutID, workout.ID)
	assert.Equal(t, owner, workout.UserID)
	assert.Equal(t, "2024-01-01", workout.WorkoutDate)
	assert.Equal(t, 500, workout.CalorieCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForeignRecordRejected(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	stranger := uuid.New()
	workoutID := uuid.New()

	// The predicate carries the ownership condition, so someone else's
	// record simply does not match.
	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE user_id = \$1 AND id = \$2`).
		WithArgs(stranger, workoutID, 1).
		WillReturnRows(sqlmock.NewRows(workoutColumns()))

	_, err := svc.Get(stranger, workoutID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateForeignRecordRejected(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	stranger := uuid.New()
	workoutID := uuid.New()

	mock.ExpectExec(`UPDATE "workouts" SET .+ WHERE user_id = \$\d+ AND id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Update(stranger, workoutID, squatRequest())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOwnedRecord(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	owner := uuid.New()
	workoutID := uuid.New()

	mock.ExpectExec(`UPDATE "workouts" SET .+ WHERE user_id = \$\d+ AND id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.Update(owner, workoutID, squatRequest()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRejectsMismatchedLists(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewWorkoutService(db)

	req := squatRequest()
	req.Weights = nil

	err := svc.Update(uuid.New(), uuid.New(), req)
	assert.ErrorIs(t, err, ErrEntryListMismatch)
}

func TestDeleteScenario(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewWorkoutService(db)
	owner := uuid.New()
	stranger := uuid.New()
	workoutID := uuid.New()

	// Another user's delete matches zero rows and is rejected.
	mock.ExpectExec(`DELETE FROM "workouts" WHERE user_id = \$1 AND id = \$2`).
		WithArgs(stranger, workoutID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, svc.Delete(stranger, workoutID), ErrWorkoutNotFound)

	// The owner's delete succeeds.
	mock.ExpectExec(`DELETE FROM "workouts" WHERE user_id = \$1 AND id = \$2`).
		WithArgs(owner, workoutID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.Delete(owner, workoutID))

	// And the owner's list is empty afterwards.
	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows(workoutColumns()))

	workouts, err := svc.List(owner)
	require.NoError(t, err)
	assert.Empty(t, workouts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
