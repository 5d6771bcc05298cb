package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lawflow/models"
)

// GenerateSlots expands a profile's weekly pattern into bookable candidates
// for every calendar day touched by [from, to], in the profile's timezone.
// Pure function of its inputs: same profile, bookings, range and clock always
// yield the same ordered output.
//
// Rules apply as an ordered chain: excluded date, advance window, weekday
// window, notice window, buffer-expanded overlap with existing bookings.
// Capacity caps are applied separately (see FilterByCapacity).
func GenerateSlots(profile *models.AvailabilityProfile, existing []models.Booking, from, to, now time.Time) []models.Slot {
	loc := profile.Location()

	nowLocal := now.In(loc)
	today := midnight(nowLocal, loc)
	horizon := today.AddDate(0, 0, profile.MaxDaysInAdvance)
	notice := now.Add(time.Duration(profile.MinNoticeHours) * time.Hour)

	blocked := expandBookings(profile, existing)

	var slots []models.Slot
	first := midnight(from.In(loc), loc)
	last := midnight(to.In(loc), loc)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.Before(today) || day.After(horizon) {
			continue
		}
		if profile.IsExcluded(day.Format("2006-01-02")) {
			continue
		}
		window, ok := profile.WindowFor(day.Weekday())
		if !ok {
			continue
		}
		slots = append(slots, walkWindow(profile, day, window, notice, blocked)...)
	}
	return slots
}

// walkWindow steps through one day's window in duration-sized increments,
// dropping candidates that violate the notice window or overlap a
// buffer-expanded booking.
func walkWindow(profile *models.AvailabilityProfile, day time.Time, window models.WeeklyWindow, notice time.Time, blocked []interval) []models.Slot {
	startMin, err := parseClock(window.StartTime)
	if err != nil {
		return nil
	}
	endMin, err := parseClock(window.EndTime)
	if err != nil || endMin <= startMin {
		return nil
	}

	loc := day.Location()
	var slots []models.Slot
	for t := startMin; t+profile.Duration <= endMin; t += profile.Duration {
		// Materialize wall-clock times per candidate so DST shifts resolve
		// through the zone database rather than naive addition.
		start := time.Date(day.Year(), day.Month(), day.Day(), t/60, t%60, 0, 0, loc)
		end := start.Add(time.Duration(profile.Duration) * time.Minute)

		if start.Before(notice) {
			continue
		}
		if overlapsAny(start, end, blocked) {
			continue
		}
		slots = append(slots, models.Slot{Start: start, End: end})
	}
	return slots
}

// interval is a half-open [start, end) span already expanded by buffers.
type interval struct {
	start time.Time
	end   time.Time
}

// expandBookings widens every active booking by the profile's buffers.
func expandBookings(profile *models.AvailabilityProfile, bookings []models.Booking) []interval {
	before := time.Duration(profile.BufferBefore) * time.Minute
	after := time.Duration(profile.BufferAfter) * time.Minute

	var out []interval
	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() {
			continue
		}
		out = append(out, interval{
			start: b.StartTime.Add(-before),
			end:   b.EndTime.Add(after),
		})
	}
	return out
}

func overlapsAny(start, end time.Time, blocked []interval) bool {
	for _, iv := range blocked {
		if start.Before(iv.end) && end.After(iv.start) {
			return true
		}
	}
	return false
}

func midnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// parseClock converts "HH:MM" to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}
