package availability

import (
	"testing"

	"lawflow/models"
)

func validProfile() *models.AvailabilityProfile {
	return &models.AvailabilityProfile{
		Title:    "Initial Consultation",
		Duration: 30,
		TimeSlots: []models.WeeklyWindow{
			{Day: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
			{Day: 3, StartTime: "14:00", EndTime: "17:00", IsActive: true},
		},
		MaxDaysInAdvance: 30,
		Timezone:         "America/Bogota",
	}
}

func TestValidateProfileOK(t *testing.T) {
	if verr := ValidateProfile(validProfile()); verr != nil {
		t.Fatalf("expected valid profile, got %v", verr)
	}
}

func TestValidateProfileRejectsSecondActiveWindowSameDay(t *testing.T) {
	p := validProfile()
	p.TimeSlots = append(p.TimeSlots, models.WeeklyWindow{Day: 1, StartTime: "13:00", EndTime: "15:00", IsActive: true})

	verr := ValidateProfile(p)
	if verr == nil {
		t.Fatal("expected rejection of a second active window on the same weekday")
	}
}

func TestValidateProfileAllowsInactiveDuplicateDay(t *testing.T) {
	p := validProfile()
	p.TimeSlots = append(p.TimeSlots, models.WeeklyWindow{Day: 1, StartTime: "13:00", EndTime: "15:00", IsActive: false})

	if verr := ValidateProfile(p); verr != nil {
		t.Fatalf("inactive windows must not count, got %v", verr)
	}
}

func TestValidateProfileFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.AvailabilityProfile)
	}{
		{"zero duration", func(p *models.AvailabilityProfile) { p.Duration = 0 }},
		{"negative buffer", func(p *models.AvailabilityProfile) { p.BufferBefore = -5 }},
		{"negative notice", func(p *models.AvailabilityProfile) { p.MinNoticeHours = -1 }},
		{"zero cap", func(p *models.AvailabilityProfile) { zero := 0; p.MaxDailyBookings = &zero }},
		{"bad timezone", func(p *models.AvailabilityProfile) { p.Timezone = "Mars/Olympus" }},
		{"bad window clock", func(p *models.AvailabilityProfile) { p.TimeSlots[0].StartTime = "9am" }},
		{"inverted window", func(p *models.AvailabilityProfile) {
			p.TimeSlots[0].StartTime = "12:00"
			p.TimeSlots[0].EndTime = "09:00"
		}},
		{"window day out of range", func(p *models.AvailabilityProfile) { p.TimeSlots[0].Day = 7 }},
		{"bad excluded date", func(p *models.AvailabilityProfile) {
			p.ExcludedDates = []models.ExcludedDate{{Date: "03/02/2026"}}
		}},
		{"select without options", func(p *models.AvailabilityProfile) {
			p.CustomFields = []models.CustomField{{Name: "matter", Type: models.FieldTypeSelect}}
		}},
		{"options on text field", func(p *models.AvailabilityProfile) {
			p.CustomFields = []models.CustomField{{Name: "matter", Type: models.FieldTypeText, Options: []string{"x"}}}
		}},
		{"unknown field type", func(p *models.AvailabilityProfile) {
			p.CustomFields = []models.CustomField{{Name: "matter", Type: "radio"}}
		}},
		{"duplicate field name", func(p *models.AvailabilityProfile) {
			p.CustomFields = []models.CustomField{
				{Name: "matter", Type: models.FieldTypeText},
				{Name: "matter", Type: models.FieldTypeText},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			if verr := ValidateProfile(p); verr == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
