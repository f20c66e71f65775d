package workouts

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid workout")
	ErrProgressNotSaved = errors.New("workout saved, daily progress not updated")
)

type SetLog struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps" validate:"gte=0,lte=1000"`
	Load      float64 `json:"load" validate:"gte=0,lte=2000"`
	RPE       float64 `json:"rpe" validate:"gte=0,lte=10"`
}

type ExerciseLog struct {
	ID         int      `json:"id"`
	ExerciseID int      `json:"exerciseId" validate:"required,gt=0"`
	SetsDone   int      `json:"setsDone" validate:"gte=0"`
	RepsDone   int      `json:"repsDone" validate:"gte=0"`
	MaxLoad    float64  `json:"maxLoad" validate:"gte=0"`
	Sets       []SetLog `json:"sets,omitempty" validate:"dive"`
}

// FinishedWorkout is one completed training session with what was done in it.
type FinishedWorkout struct {
	ID              int           `json:"id"`
	UserID          uuid.UUID     `json:"userId"`
	BaseWorkoutID   *int          `json:"baseWorkoutId"`
	Name            string        `json:"name"`
	DurationSeconds int           `json:"durationSeconds"`
	Volume          float64       `json:"volume"`
	StartedAt       time.Time     `json:"startedAt"`
	FinishedAt      time.Time     `json:"finishedAt"`
	Exercises       []ExerciseLog `json:"exercises"`
}

// FinishRequest is what the app sends when a workout ends. Volume is the client
// computed total, when missing it is computed from the sets.
type FinishRequest struct {
	BaseWorkoutID   *int          `json:"baseWorkoutId" validate:"omitempty,gt=0"`
	Name            string        `json:"name" validate:"required,max=120"`
	DurationSeconds int           `json:"durationSeconds" validate:"gte=0,lte=86400"`
	Volume          *float64      `json:"volume" validate:"omitempty,gte=0"`
	StartedAt       *time.Time    `json:"startedAt"`
	Exercises       []ExerciseLog `json:"exercises" validate:"max=100,dive"`
}

type FinishResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

type HistoryResponse struct {
	Workouts []FinishedWorkout `json:"workouts"`
	Total    int               `json:"total"`
}

// Volume sums reps times load over all sets.
func Volume(exercises []ExerciseLog) float64 {
	volume := 0.0
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			volume += float64(set.Reps) * set.Load
		}
	}
	return volume
}

// normalize numbers sets from 1 and fills exercise totals the client left out.
func normalize(exercises []ExerciseLog) []ExerciseLog {
	normalized := make([]ExerciseLog, 0, len(exercises))
	for _, ex := range exercises {
		sets := make([]SetLog, len(ex.Sets))
		reps, maxLoad := 0, 0.0
		for i, set := range ex.Sets {
			set.SetNumber = i + 1
			sets[i] = set
			reps += set.Reps
			maxLoad = max(maxLoad, set.Load)
		}
		ex.Sets = sets
		if ex.SetsDone == 0 {
			ex.SetsDone = len(sets)
		}
		if ex.RepsDone == 0 {
			ex.RepsDone = reps
		}
		if ex.MaxLoad == 0 {
			ex.MaxLoad = maxLoad
		}
		normalized = append(normalized, ex)
	}
	return normalized
}
