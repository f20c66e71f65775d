package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ workoutsRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the workout with its exercises and sets in one transaction.
func (r *Repo) Add(ctx context.Context, workout FinishedWorkout) (_ *FinishedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = tx.QueryRow(ctx, `
		INSERT INTO workout_history (user_id, base_workout_id, name, duration_seconds, volume, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`,
		workout.UserID, workout.BaseWorkoutID, workout.Name, workout.DurationSeconds,
		workout.Volume, workout.StartedAt, workout.FinishedAt,
	).Scan(&workout.ID); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	for i := range workout.Exercises {
		ex := &workout.Exercises[i]
		if err = tx.QueryRow(ctx, `
			INSERT INTO workout_history_exercise (workout_history_id, exercise_id, sets_done, reps_done, max_load)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
		`,
			workout.ID, ex.ExerciseID, ex.SetsDone, ex.RepsDone, ex.MaxLoad,
		).Scan(&ex.ID); err != nil {
			return nil, fmt.Errorf("insert exercise %d: %w", ex.ExerciseID, err)
		}

		if len(ex.Sets) == 0 {
			continue
		}
		batch := &pgx.Batch{}
		for _, set := range ex.Sets {
			batch.Queue(`
				INSERT INTO workout_history_set (workout_history_exercise_id, set_number, reps, load, rpe)
				VALUES ($1, $2, $3, $4, $5);
			`, ex.ID, set.SetNumber, set.Reps, set.Load, set.RPE)
		}
		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, fmt.Errorf("insert sets of exercise %d: %w", ex.ExerciseID, err)
		}
	}

	return &workout, nil
}

// List returns the user's workouts, most recently finished first, with their exercises (no sets).
func (r *Repo) List(ctx context.Context, userID uuid.UUID, page, size int) (_ []FinishedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("size", size))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, base_workout_id, name, duration_seconds, volume, started_at, finished_at
		FROM workout_history
		WHERE user_id = $1
		ORDER BY finished_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`, userID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]FinishedWorkout, 0, size)
	byID := make(map[int]int)
	var ids []int
	for rows.Next() {
		var w FinishedWorkout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.BaseWorkoutID, &w.Name, &w.DurationSeconds,
			&w.Volume, &w.StartedAt, &w.FinishedAt,
		); err != nil {
			return nil, err
		}
		w.Exercises = []ExerciseLog{}
		byID[w.ID] = len(workouts)
		ids = append(ids, w.ID)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return workouts, nil
	}

	exRows, err := r.db.Query(ctx, `
		SELECT id, workout_history_id, exercise_id, sets_done, reps_done, max_load
		FROM workout_history_exercise
		WHERE workout_history_id = ANY($1)
		ORDER BY id;
	`, ids)
	if err != nil {
		return nil, err
	}
	defer exRows.Close()

	for exRows.Next() {
		var ex ExerciseLog
		var workoutID int
		if err := exRows.Scan(&ex.ID, &workoutID, &ex.ExerciseID, &ex.SetsDone, &ex.RepsDone, &ex.MaxLoad); err != nil {
			return nil, err
		}
		idx := byID[workoutID]
		workouts[idx].Exercises = append(workouts[idx].Exercises, ex)
	}
	if err := exRows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_history WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}
