package models

import "time"

// Custom field types accepted in an availability profile schema.
const (
	FieldTypeText     = "text"
	FieldTypeNumber   = "number"
	FieldTypeSelect   = "select"
	FieldTypeCheckbox = "checkbox"
)

// WeeklyWindow is one recurring bookable window on a weekday.
// StartTime/EndTime are "HH:MM" in the profile's timezone.
type WeeklyWindow struct {
	Day       int    `bson:"day" json:"day"` // 0=Sunday ... 6=Saturday
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time" json:"endTime"`
	IsActive  bool   `bson:"is_active" json:"isActive"`
}

// ExcludedDate removes an entire calendar day from candidacy.
type ExcludedDate struct {
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD" in the profile's timezone
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// RequiredFields flags which built-in submission fields the host demands.
type RequiredFields struct {
	Name    bool `bson:"name" json:"name"`
	Email   bool `bson:"email" json:"email"`
	Phone   bool `bson:"phone" json:"phone"`
	Notes   bool `bson:"notes" json:"notes"`
	Company bool `bson:"company" json:"company"`
	Address bool `bson:"address" json:"address"`
}

// CustomField is one host-defined submission field.
// Options must be non-empty exactly when Type is "select".
type CustomField struct {
	Name     string   `bson:"name" json:"name"`
	Type     string   `bson:"type" json:"type"`
	Required bool     `bson:"required" json:"required"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
}

// AvailabilityProfile is a host's full scheduling configuration.
type AvailabilityProfile struct {
	ID      string `bson:"id" json:"id"`
	OwnerID string `bson:"owner_id" json:"ownerId"`
	Title   string `bson:"title" json:"title"`

	Duration     int `bson:"duration" json:"duration"` // minutes per slot
	BufferBefore int `bson:"buffer_before" json:"bufferBefore"`
	BufferAfter  int `bson:"buffer_after" json:"bufferAfter"`

	TimeSlots []WeeklyWindow `bson:"time_slots" json:"timeSlots"`

	MaxDaysInAdvance int `bson:"max_days_in_advance" json:"maxDaysInAdvance"`
	MinNoticeHours   int `bson:"min_notice_hours" json:"minNoticeHours"`

	// nil means unlimited. Never a sentinel value.
	MaxDailyBookings  *int `bson:"max_daily_bookings,omitempty" json:"maxDailyBookings,omitempty"`
	MaxWeeklyBookings *int `bson:"max_weekly_bookings,omitempty" json:"maxWeeklyBookings,omitempty"`

	RequireApproval bool           `bson:"require_approval" json:"requireApproval"`
	ExcludedDates   []ExcludedDate `bson:"excluded_dates,omitempty" json:"excludedDates,omitempty"`
	RequiredFields  RequiredFields `bson:"required_fields" json:"requiredFields"`
	CustomFields    []CustomField  `bson:"custom_fields,omitempty" json:"customFields,omitempty"`

	Timezone  string    `bson:"timezone" json:"timezone"` // IANA name, e.g. "America/Bogota"
	IsActive  bool      `bson:"is_active" json:"isActive"`
	PublicURL string    `bson:"public_url" json:"publicUrl"` // unique slug
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Location resolves the profile's IANA timezone, defaulting to UTC.
func (p *AvailabilityProfile) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// WindowFor returns the active weekly window for the given weekday, if any.
// The write path guarantees at most one active window per weekday.
func (p *AvailabilityProfile) WindowFor(day time.Weekday) (WeeklyWindow, bool) {
	for _, w := range p.TimeSlots {
		if w.IsActive && w.Day == int(day) {
			return w, true
		}
	}
	return WeeklyWindow{}, false
}

// IsExcluded reports whether the "YYYY-MM-DD" date is an excluded day.
func (p *AvailabilityProfile) IsExcluded(date string) bool {
	for _, ex := range p.ExcludedDates {
		if ex.Date == date {
			return true
		}
	}
	return false
}
