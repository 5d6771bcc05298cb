package bookingRepo

import (
	"context"
	"errors"
	"time"

	"lawflow/models"
)

var (
	// ErrNotFound means no booking matched the given ID.
	ErrNotFound = errors.New("booking not found")
	// ErrDuplicateSlot means another active booking already holds the same
	// (availability_id, start_time) pair.
	ErrDuplicateSlot = errors.New("slot already reserved")
	// ErrStaleStatus means the booking's stored status no longer matches the
	// one the caller started its transition from.
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus replaces a booking record, conditioned on its stored status
	// still being from. The condition and the write execute as one statement,
	// so two racing transitions cannot both win; the loser gets ErrStaleStatus.
	UpdateStatus(ctx context.Context, b *models.Booking, from string) error
	// Delete removes a booking record (explicit host action only).
	Delete(ctx context.Context, id string) error
	// ListActiveInRange returns pending/confirmed bookings for a profile
	// whose [start_time, end_time) span overlaps [from, to). This is the hot
	// query behind slot generation and conflict resolution.
	ListActiveInRange(ctx context.Context, availabilityID string, from, to time.Time) ([]models.Booking, error)
	// ListByProfile returns bookings for a profile in a time range, optionally
	// filtered by status. Host calendar view.
	ListByProfile(ctx context.Context, availabilityID string, from, to time.Time, status string) ([]models.Booking, error)
	// CountBlocking counts bookings that block profile deletion: pending, or
	// confirmed with a start time after now.
	CountBlocking(ctx context.Context, availabilityID string, now time.Time) (int64, error)
	// Reserve runs precheck and inserts the booking as a single atomic unit.
	// A duplicate active (availability_id, start_time) yields ErrDuplicateSlot.
	// Queries issued with the context passed to precheck observe the same
	// transaction.
	Reserve(ctx context.Context, b *models.Booking, precheck func(txCtx context.Context) error) error
}
