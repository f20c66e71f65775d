package workouts

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var _ workoutsRepo = (*MemoryRepo)(nil)

// MemoryRepo keeps finished workouts in process memory, for local development without postgres.
type MemoryRepo struct {
	mutex        sync.Mutex
	lastID       int
	lastExercise int
	workouts     []FinishedWorkout
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Add(_ context.Context, workout FinishedWorkout) (*FinishedWorkout, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lastID++
	workout.ID = r.lastID
	exercises := make([]ExerciseLog, len(workout.Exercises))
	for i, ex := range workout.Exercises {
		r.lastExercise++
		ex.ID = r.lastExercise
		ex.Sets = slices.Clone(ex.Sets)
		exercises[i] = ex
	}
	workout.Exercises = exercises

	r.workouts = append(r.workouts, workout)
	return &workout, nil
}

func (r *MemoryRepo) List(_ context.Context, userID uuid.UUID, page, size int) ([]FinishedWorkout, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var userWorkouts []FinishedWorkout
	// newest first
	for i := len(r.workouts) - 1; i >= 0; i-- {
		w := r.workouts[i]
		if w.UserID != userID {
			continue
		}
		exercises := make([]ExerciseLog, len(w.Exercises))
		for j, ex := range w.Exercises {
			ex.Sets = nil
			exercises[j] = ex
		}
		w.Exercises = exercises
		userWorkouts = append(userWorkouts, w)
	}
	slices.SortStableFunc(userWorkouts, func(a, b FinishedWorkout) int {
		return b.FinishedAt.Compare(a.FinishedAt)
	})

	from := (page - 1) * size
	if from < 0 || from >= len(userWorkouts) {
		return []FinishedWorkout{}, nil
	}
	return userWorkouts[from:min(from+size, len(userWorkouts))], nil
}

func (r *MemoryRepo) Count(_ context.Context, userID uuid.UUID) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	count := 0
	for _, w := range r.workouts {
		if w.UserID == userID {
			count++
		}
	}
	return count, nil
}
