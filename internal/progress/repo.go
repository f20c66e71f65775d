package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*Repo)(nil)

const recordColumns = `id, user_id, day, body_weight, training_volume, water_ml, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanRecord(row pgx.Row) (*Record, error) {
	record := &Record{}
	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Day,
		&record.BodyWeight,
		&record.TrainingVolume,
		&record.WaterMl,
		&record.CreatedAt,
		&record.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func (r *Repo) FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.findbyday")
	defer func() {
		if errors.Is(err, ErrRecordNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Format(DateLayout)))

	return scanRecord(r.db.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM progress_record
		WHERE user_id = $1 AND day = $2;
	`, userID, day))
}

func (r *Repo) FindLatestBefore(ctx context.Context, userID uuid.UUID, day time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.findlatest")
	defer func() {
		if errors.Is(err, ErrRecordNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanRecord(r.db.QueryRow(ctx, `
		SELECT `+recordColumns+`
		FROM progress_record
		WHERE user_id = $1 AND day < $2
		ORDER BY day DESC
		LIMIT 1;
	`, userID, day))
}

func (r *Repo) Insert(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// the unique (user_id, day) constraint decides concurrent creations,
	// the loser gets no row back
	created, err := scanRecord(r.db.QueryRow(ctx, `
		INSERT INTO progress_record (user_id, day, body_weight, training_volume, water_ml)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day) DO NOTHING
		RETURNING `+recordColumns+`;
	`,
		record.UserID, record.Day, record.BodyWeight, record.TrainingVolume, record.WaterMl,
	))
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) || pkg.IsUniqueViolationError(err) {
			return nil, ErrDayTaken
		}
		return nil, fmt.Errorf("insert progress record: %w", err)
	}

	span.SetAttributes(attribute.Int("progress.id", created.ID))
	return created, nil
}

func (r *Repo) AddVolume(ctx context.Context, id int, delta float64) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addvolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return scanRecord(r.db.QueryRow(ctx, `
		UPDATE progress_record
		SET training_volume = training_volume + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+recordColumns+`;
	`, id, delta))
}

func (r *Repo) AddWater(ctx context.Context, id int, deltaMl int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addwater")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return scanRecord(r.db.QueryRow(ctx, `
		UPDATE progress_record
		SET water_ml = GREATEST(0, water_ml + $2), updated_at = now()
		WHERE id = $1
		RETURNING `+recordColumns+`;
	`, id, deltaMl))
}

func (r *Repo) SetBodyWeight(ctx context.Context, id int, weight float64) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.setweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return scanRecord(r.db.QueryRow(ctx, `
		UPDATE progress_record
		SET body_weight = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+recordColumns+`;
	`, id, weight))
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID, page, size int) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("size", size))

	rows, err := r.db.Query(ctx, `
		SELECT `+recordColumns+`
		FROM progress_record
		WHERE user_id = $1
		ORDER BY day DESC
		LIMIT $2 OFFSET $3;
	`, userID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0, size)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM progress_record WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx,
		`DELETE FROM progress_record WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}
