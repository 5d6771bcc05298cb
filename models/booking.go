package models

import "time"

// Booking lifecycle statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

// Actors allowed to cancel a booking.
const (
	CancelledByHost   = "host"
	CancelledByClient = "client"
)

// CustomFieldValue is a submitted value for a host-defined field.
type CustomFieldValue struct {
	Name  string `bson:"name" json:"name"`
	Value any    `bson:"value" json:"value"`
}

// Booking is a reserved slot on an availability profile.
type Booking struct {
	ID             string `bson:"id" json:"id"`
	AvailabilityID string `bson:"availability_id" json:"availabilityId"`

	ClientName    string `bson:"client_name,omitempty" json:"clientName,omitempty"`
	ClientEmail   string `bson:"client_email,omitempty" json:"clientEmail,omitempty"`
	ClientPhone   string `bson:"client_phone,omitempty" json:"clientPhone,omitempty"`
	ClientCompany string `bson:"client_company,omitempty" json:"clientCompany,omitempty"`
	ClientAddress string `bson:"client_address,omitempty" json:"clientAddress,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`

	CustomFieldValues []CustomFieldValue `bson:"custom_field_values,omitempty" json:"customFieldValues,omitempty"`

	StartTime time.Time `bson:"start_time" json:"startTime"`
	EndTime   time.Time `bson:"end_time" json:"endTime"`

	Status             string `bson:"status" json:"status"`
	CancelledBy        string `bson:"cancelled_by,omitempty" json:"cancelledBy,omitempty"`
	CancellationReason string `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the booking occupies its slot (counts toward the
// no-overlap invariant and capacity limits).
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// BookingSubmission is the client payload for a reservation request.
type BookingSubmission struct {
	StartTime time.Time `json:"startTime" binding:"required"`

	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
	ClientCompany string `json:"clientCompany"`
	ClientAddress string `json:"clientAddress"`
	Notes         string `json:"notes"`

	CustomFieldValues []CustomFieldValue `json:"customFieldValues"`
}

// CustomValue returns the submitted value for a named custom field.
func (s *BookingSubmission) CustomValue(name string) (any, bool) {
	for _, v := range s.CustomFieldValues {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// BookingTransitionRequest is the host/client payload for a status change.
type BookingTransitionRequest struct {
	Status             string `json:"status" binding:"required"`
	CancelledBy        string `json:"cancelledBy,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}
