package scheduling

import (
	"errors"
	"testing"
	"time"

	"lawflow/models"
)

func TestTransitionGraph(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	after := start.Add(time.Hour)

	tests := []struct {
		name string
		from string
		req  models.BookingTransitionRequest
		now  time.Time
		ok   bool
	}{
		{"pending to confirmed", models.BookingPending, models.BookingTransitionRequest{Status: models.BookingConfirmed}, before, true},
		{"pending to rejected", models.BookingPending, models.BookingTransitionRequest{Status: models.BookingRejected, CancellationReason: "schedule conflict"}, before, true},
		{"pending to cancelled", models.BookingPending, models.BookingTransitionRequest{Status: models.BookingCancelled, CancelledBy: models.CancelledByHost}, before, false},
		{"pending to completed", models.BookingPending, models.BookingTransitionRequest{Status: models.BookingCompleted}, after, false},
		{"confirmed to cancelled before start", models.BookingConfirmed, models.BookingTransitionRequest{Status: models.BookingCancelled, CancelledBy: models.CancelledByClient}, before, true},
		{"confirmed to cancelled after start", models.BookingConfirmed, models.BookingTransitionRequest{Status: models.BookingCancelled, CancelledBy: models.CancelledByClient}, after, false},
		{"confirmed to cancelled without actor", models.BookingConfirmed, models.BookingTransitionRequest{Status: models.BookingCancelled}, before, false},
		{"confirmed to completed after start", models.BookingConfirmed, models.BookingTransitionRequest{Status: models.BookingCompleted}, after, true},
		{"confirmed to completed before start", models.BookingConfirmed, models.BookingTransitionRequest{Status: models.BookingCompleted}, before, false},
		{"confirmed to rejected", models.BookingConfirmed, models.BookingTransitionRequest{Status: models.BookingRejected}, before, false},
		{"cancelled is terminal", models.BookingCancelled, models.BookingTransitionRequest{Status: models.BookingCancelled, CancelledBy: models.CancelledByHost}, before, false},
		{"rejected is terminal", models.BookingRejected, models.BookingTransitionRequest{Status: models.BookingConfirmed}, before, false},
		{"completed is terminal", models.BookingCompleted, models.BookingTransitionRequest{Status: models.BookingCancelled, CancelledBy: models.CancelledByHost}, before, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{Status: tt.from, StartTime: start, EndTime: start.Add(30 * time.Minute)}
			err := Transition(b, tt.req, tt.now)

			if tt.ok {
				if err != nil {
					t.Fatalf("expected transition to succeed, got %v", err)
				}
				if b.Status != tt.req.Status {
					t.Fatalf("expected status %q, got %q", tt.req.Status, b.Status)
				}
				return
			}

			var terr *StateTransitionError
			if !errors.As(err, &terr) {
				t.Fatalf("expected StateTransitionError, got %v", err)
			}
			if b.Status != tt.from {
				t.Fatalf("failed transition must not mutate status: %q -> %q", tt.from, b.Status)
			}
		})
	}
}

func TestTransitionRecordsActorAndReason(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: models.BookingConfirmed, StartTime: start}

	req := models.BookingTransitionRequest{
		Status:             models.BookingCancelled,
		CancelledBy:        models.CancelledByClient,
		CancellationReason: "found other counsel",
	}
	if err := Transition(b, req, start.Add(-time.Hour)); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if b.CancelledBy != models.CancelledByClient {
		t.Errorf("expected cancelledBy client, got %q", b.CancelledBy)
	}
	if b.CancellationReason != "found other counsel" {
		t.Errorf("expected reason recorded, got %q", b.CancellationReason)
	}
}

func TestCancelIsNotIdempotent(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: models.BookingConfirmed, StartTime: start}
	req := models.BookingTransitionRequest{Status: models.BookingCancelled, CancelledBy: models.CancelledByHost}

	if err := Transition(b, req, start.Add(-time.Hour)); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	var terr *StateTransitionError
	if err := Transition(b, req, start.Add(-time.Hour)); !errors.As(err, &terr) {
		t.Fatalf("second cancel must fail with StateTransitionError, got %v", err)
	}
}
