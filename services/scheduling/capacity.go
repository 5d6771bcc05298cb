package scheduling

import (
	"fmt"
	"time"

	"lawflow/models"
)

// FilterByCapacity drops candidates whose calendar day or ISO week has
// already reached the profile's booking caps. Evaluated optimistically at
// read time; the resolver repeats the check at commit time.
func FilterByCapacity(candidates []models.Slot, existing []models.Booking, profile *models.AvailabilityProfile) []models.Slot {
	if profile.MaxDailyBookings == nil && profile.MaxWeeklyBookings == nil {
		return candidates
	}

	counts := countActive(existing, profile.Location())
	out := make([]models.Slot, 0, len(candidates))
	for _, s := range candidates {
		if counts.exceeds(s.Start, profile) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// capacityReached reports whether admitting a booking at start would break a
// daily or weekly cap given the current active set.
func capacityReached(start time.Time, existing []models.Booking, profile *models.AvailabilityProfile) bool {
	return countActive(existing, profile.Location()).exceeds(start, profile)
}

type bookingCounts struct {
	daily  map[string]int
	weekly map[string]int
	loc    *time.Location
}

func countActive(bookings []models.Booking, loc *time.Location) bookingCounts {
	c := bookingCounts{
		daily:  make(map[string]int),
		weekly: make(map[string]int),
		loc:    loc,
	}
	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() {
			continue
		}
		local := b.StartTime.In(loc)
		c.daily[local.Format("2006-01-02")]++
		c.weekly[isoWeekKey(local)]++
	}
	return c
}

func (c bookingCounts) exceeds(start time.Time, profile *models.AvailabilityProfile) bool {
	local := start.In(c.loc)
	if profile.MaxDailyBookings != nil && c.daily[local.Format("2006-01-02")] >= *profile.MaxDailyBookings {
		return true
	}
	if profile.MaxWeeklyBookings != nil && c.weekly[isoWeekKey(local)] >= *profile.MaxWeeklyBookings {
		return true
	}
	return false
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
