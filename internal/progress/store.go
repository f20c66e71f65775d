package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=progress_test

// Store is the data store contract the Reconciler relies on.
// Counter updates must be applied atomically by the store itself.
type Store interface {
	FindByDay(ctx context.Context, userID uuid.UUID, day time.Time) (*Record, error)
	// FindLatestBefore returns the user's most recent record strictly before day.
	FindLatestBefore(ctx context.Context, userID uuid.UUID, day time.Time) (*Record, error)
	// Insert returns ErrDayTaken if the user already has a record for record.Day.
	Insert(ctx context.Context, record Record) (*Record, error)
	AddVolume(ctx context.Context, id int, delta float64) (*Record, error)
	// AddWater adds deltaMl to the water total, never letting it go below zero.
	AddWater(ctx context.Context, id int, deltaMl int) (*Record, error)
	SetBodyWeight(ctx context.Context, id int, weight float64) (*Record, error)
	List(ctx context.Context, userID uuid.UUID, page, size int) ([]Record, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}
