package workouts

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout FinishedWorkout) (*FinishedWorkout, error)
	List(ctx context.Context, userID uuid.UUID, page, size int) ([]FinishedWorkout, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type progressReconciler interface {
	ApplyWorkoutVolume(ctx context.Context, userID uuid.UUID, volumeDelta float64) error
}

type Service struct {
	repo     workoutsRepo
	progress progressReconciler
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo workoutsRepo, progress progressReconciler) *Service {
	return &Service{
		repo:     repo,
		progress: progress,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Finish saves a finished workout and adds its volume to today's progress.
// When the workout is saved but the progress update fails, the returned workout
// is not nil and the error matches ErrProgressNotSaved.
func (s *Service) Finish(ctx context.Context, userID uuid.UUID, req FinishRequest) (_ *FinishedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidInput)
	}

	exercises := normalize(req.Exercises)
	volume := Volume(exercises)
	if req.Volume != nil {
		volume = *req.Volume
	}

	finishedAt := s.now()
	startedAt := finishedAt.Add(-time.Duration(req.DurationSeconds) * time.Second)
	if req.StartedAt != nil {
		if req.StartedAt.After(finishedAt) {
			return nil, fmt.Errorf("%w: workout starts in the future", ErrInvalidInput)
		}
		startedAt = *req.StartedAt
	}

	workout, err := s.repo.Add(ctx, FinishedWorkout{
		UserID:          userID,
		BaseWorkoutID:   req.BaseWorkoutID,
		Name:            name,
		DurationSeconds: req.DurationSeconds,
		Volume:          volume,
		StartedAt:       startedAt,
		FinishedAt:      finishedAt,
		Exercises:       exercises,
	})
	if err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}
	span.SetAttributes(
		attribute.Int("workout.id", workout.ID),
		attribute.Float64("workout.volume", volume),
	)

	if err := s.progress.ApplyWorkoutVolume(ctx, userID, volume); err != nil {
		return workout, fmt.Errorf("%w: workout %d: %w", ErrProgressNotSaved, workout.ID, err)
	}

	return workout, nil
}

// History lists the user's finished workouts, newest first. Pages start at 1.
func (s *Service) History(ctx context.Context, userID uuid.UUID, page, size int) (_ []FinishedWorkout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 || size < 1 {
		return nil, 0, fmt.Errorf("%w: page and size must be positive", ErrInvalidInput)
	}
	if page > math.MaxInt/size {
		return nil, 0, fmt.Errorf("%w: page out of range", ErrInvalidInput)
	}

	workouts, err := s.repo.List(ctx, userID, page, size)
	if err != nil {
		return nil, 0, fmt.Errorf("list workouts: %w", err)
	}
	total, err = s.repo.Count(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count workouts: %w", err)
	}

	return workouts, total, nil
}
