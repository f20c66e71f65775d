package progress

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// a lost insert race is followed by a re-fetch; more than one retry means the
// winning row keeps disappearing (concurrent deletes), give up then
const maxCreateAttempts = 3

// MaxWaterDeltaMl bounds a single water update in either direction.
const MaxWaterDeltaMl = 20000

// Reconciler keeps exactly one progress record per user and calendar day,
// creating it lazily and applying workout volume, water and weight updates to it.
type Reconciler struct {
	store Store
	days  *DayProvider
}

func NewReconciler(store Store, days *DayProvider) *Reconciler {
	return &Reconciler{
		store: store,
		days:  days,
	}
}

// GetOrCreateToday returns the user's record for the current day, creating it
// (with body weight carried forward from the latest earlier record) when missing.
func (r *Reconciler) GetOrCreateToday(ctx context.Context, userID uuid.UUID) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.progress.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}

	today := r.days.Today()
	span.SetAttributes(attribute.String("day", today.Format(DateLayout)))

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		record, err := r.store.FindByDay(ctx, userID, today)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, ErrRecordNotFound) {
			return nil, persistenceErr("find today's record", err)
		}

		seedWeight := 0.0
		latest, err := r.store.FindLatestBefore(ctx, userID, today)
		switch {
		case err == nil:
			seedWeight = latest.BodyWeight
		case !errors.Is(err, ErrRecordNotFound):
			return nil, persistenceErr("find latest record", err)
		}

		created, err := r.store.Insert(ctx, Record{
			UserID:         userID,
			Day:            today,
			BodyWeight:     seedWeight,
			TrainingVolume: 0,
			WaterMl:        0,
		})
		if err == nil {
			span.SetAttributes(attribute.Bool("created", true))
			return created, nil
		}
		if !errors.Is(err, ErrDayTaken) {
			return nil, persistenceErr("create today's record", err)
		}

		// another request created today's record first, take that one
		span.SetAttributes(attribute.Int("conflicts", attempt))
	}

	return nil, persistenceErr("create today's record", ErrDayTaken)
}

// ApplyWorkoutVolume adds the volume of one finished workout to today's total.
func (r *Reconciler) ApplyWorkoutVolume(ctx context.Context, userID uuid.UUID, volumeDelta float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.progress.volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Float64("volume.delta", volumeDelta))

	if volumeDelta < 0 || math.IsNaN(volumeDelta) || math.IsInf(volumeDelta, 0) {
		return fmt.Errorf("%w: volume delta must be a non-negative number, got %v", ErrInvalidInput, volumeDelta)
	}

	today, err := r.GetOrCreateToday(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := r.store.AddVolume(ctx, today.ID, volumeDelta); err != nil {
		return persistenceErr("add training volume", err)
	}

	return nil
}

// ApplyWaterDelta adds (or removes, when negative) water to today's total, floored at zero.
func (r *Reconciler) ApplyWaterDelta(ctx context.Context, userID uuid.UUID, amountMl int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.progress.water")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("water.delta", amountMl))

	if amountMl > MaxWaterDeltaMl || amountMl < -MaxWaterDeltaMl {
		return nil, fmt.Errorf("%w: water amount must be within ±%d ml", ErrInvalidInput, MaxWaterDeltaMl)
	}

	today, err := r.GetOrCreateToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := r.store.AddWater(ctx, today.ID, amountMl)
	if err != nil {
		return nil, persistenceErr("add water", err)
	}

	return updated, nil
}

// RecordBodyWeight sets today's body weight. Later days inherit it when they are created.
func (r *Reconciler) RecordBodyWeight(ctx context.Context, userID uuid.UUID, weight float64) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.progress.weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("%w: body weight must be a positive number, got %v", ErrInvalidInput, weight)
	}

	today, err := r.GetOrCreateToday(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := r.store.SetBodyWeight(ctx, today.ID, weight)
	if err != nil {
		return nil, persistenceErr("set body weight", err)
	}

	return updated, nil
}

// History lists the user's records, newest day first. Pages start at 1.
func (r *Reconciler) History(ctx context.Context, userID uuid.UUID, page, size int) (_ []Record, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.progress.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 || size < 1 {
		return nil, 0, fmt.Errorf("%w: page and size must be positive", ErrInvalidInput)
	}
	if page > math.MaxInt/size {
		return nil, 0, fmt.Errorf("%w: page out of range", ErrInvalidInput)
	}

	records, err := r.store.List(ctx, userID, page, size)
	if err != nil {
		return nil, 0, persistenceErr("list records", err)
	}
	total, err = r.store.Count(ctx, userID)
	if err != nil {
		return nil, 0, persistenceErr("count records", err)
	}

	return records, total, nil
}

// Delete removes one of the user's records. ErrRecordNotFound is returned
// when the record does not exist or belongs to someone else.
func (r *Reconciler) Delete(ctx context.Context, userID uuid.UUID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reconciler.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := r.store.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return err
		}
		return persistenceErr("delete record", err)
	}
	return nil
}
