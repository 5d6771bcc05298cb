package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lawflow/models"
	"lawflow/services/scheduling"
)

// ValidateProfile checks a profile configuration at write time. Returns nil
// when acceptable, otherwise a ValidationError with every violation.
func ValidateProfile(p *models.AvailabilityProfile) *scheduling.ValidationError {
	verr := &scheduling.ValidationError{}

	if p.Duration <= 0 {
		invalid(verr, "duration", "must be a positive number of minutes")
	}
	if p.BufferBefore < 0 {
		invalid(verr, "bufferBefore", "must not be negative")
	}
	if p.BufferAfter < 0 {
		invalid(verr, "bufferAfter", "must not be negative")
	}
	if p.MaxDaysInAdvance < 0 {
		invalid(verr, "maxDaysInAdvance", "must not be negative")
	}
	if p.MinNoticeHours < 0 {
		invalid(verr, "minNoticeHours", "must not be negative")
	}
	if p.MaxDailyBookings != nil && *p.MaxDailyBookings < 1 {
		invalid(verr, "maxDailyBookings", "must be at least 1 when set")
	}
	if p.MaxWeeklyBookings != nil && *p.MaxWeeklyBookings < 1 {
		invalid(verr, "maxWeeklyBookings", "must be at least 1 when set")
	}

	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			invalid(verr, "timezone", "not a recognized IANA timezone")
		}
	}

	validateWindows(verr, p.TimeSlots)
	validateExclusions(verr, p.ExcludedDates)
	validateCustomFieldSchema(verr, p.CustomFields)

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// validateWindows enforces well-formed HH:MM windows and the generator
// contract of at most one active window per weekday.
func validateWindows(verr *scheduling.ValidationError, windows []models.WeeklyWindow) {
	activeDays := make(map[int]bool)
	for i, w := range windows {
		field := fmt.Sprintf("timeSlots[%d]", i)
		if w.Day < 0 || w.Day > 6 {
			invalid(verr, field, "day must be between 0 (Sunday) and 6 (Saturday)")
			continue
		}
		start, okStart := clockMinutes(w.StartTime)
		end, okEnd := clockMinutes(w.EndTime)
		if !okStart || !okEnd {
			invalid(verr, field, "startTime and endTime must be HH:MM")
			continue
		}
		if end <= start {
			invalid(verr, field, "endTime must be after startTime")
			continue
		}
		if !w.IsActive {
			continue
		}
		if activeDays[w.Day] {
			invalid(verr, field, "only one active window per weekday is allowed")
			continue
		}
		activeDays[w.Day] = true
	}
}

func validateExclusions(verr *scheduling.ValidationError, dates []models.ExcludedDate) {
	for i, ex := range dates {
		if _, err := time.Parse("2006-01-02", ex.Date); err != nil {
			invalid(verr, fmt.Sprintf("excludedDates[%d]", i), "date must be YYYY-MM-DD")
		}
	}
}

func validateCustomFieldSchema(verr *scheduling.ValidationError, fields []models.CustomField) {
	seen := make(map[string]bool)
	for i, f := range fields {
		field := fmt.Sprintf("customFields[%d]", i)
		if strings.TrimSpace(f.Name) == "" {
			invalid(verr, field, "name is required")
			continue
		}
		if seen[f.Name] {
			invalid(verr, field, "duplicate field name")
			continue
		}
		seen[f.Name] = true

		switch f.Type {
		case models.FieldTypeSelect:
			if len(f.Options) == 0 {
				invalid(verr, field, "select fields require at least one option")
			}
		case models.FieldTypeText, models.FieldTypeNumber, models.FieldTypeCheckbox:
			if len(f.Options) > 0 {
				invalid(verr, field, "options are only allowed on select fields")
			}
		default:
			invalid(verr, field, "type must be text, number, select or checkbox")
		}
	}
}

func invalid(verr *scheduling.ValidationError, field, reason string) {
	verr.InvalidFields = append(verr.InvalidFields, scheduling.FieldViolation{Field: field, Reason: reason})
}

func clockMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
