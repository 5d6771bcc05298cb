package scheduling

import (
	"time"

	"lawflow/models"
)

// Transition applies a status change to a booking in place, enforcing the
// lifecycle graph:
//
//	pending   -> confirmed | rejected
//	confirmed -> cancelled | completed
//	cancelled, rejected, completed are terminal.
//
// Guards beyond the graph: a confirmed booking can be cancelled only before
// its start time, and completed only at or after it.
func Transition(b *models.Booking, req models.BookingTransitionRequest, now time.Time) error {
	switch {
	case b.Status == models.BookingPending && req.Status == models.BookingConfirmed:
		b.Status = models.BookingConfirmed

	case b.Status == models.BookingPending && req.Status == models.BookingRejected:
		b.Status = models.BookingRejected
		b.CancellationReason = req.CancellationReason

	case b.Status == models.BookingConfirmed && req.Status == models.BookingCancelled:
		if !now.Before(b.StartTime) {
			return &StateTransitionError{
				From:   b.Status,
				To:     req.Status,
				Reason: "booking has already started",
			}
		}
		actor := req.CancelledBy
		if actor != models.CancelledByHost && actor != models.CancelledByClient {
			return &StateTransitionError{
				From:   b.Status,
				To:     req.Status,
				Reason: "cancelledBy must be \"host\" or \"client\"",
			}
		}
		b.Status = models.BookingCancelled
		b.CancelledBy = actor
		b.CancellationReason = req.CancellationReason

	case b.Status == models.BookingConfirmed && req.Status == models.BookingCompleted:
		if now.Before(b.StartTime) {
			return &StateTransitionError{
				From:   b.Status,
				To:     req.Status,
				Reason: "booking has not started yet",
			}
		}
		b.Status = models.BookingCompleted

	default:
		return &StateTransitionError{From: b.Status, To: req.Status}
	}

	b.UpdatedAt = now
	return nil
}
