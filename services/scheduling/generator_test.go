package scheduling

import (
	"testing"
	"time"

	"lawflow/models"
)

// monday is 2026-03-02, a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondayProfile() *models.AvailabilityProfile {
	return &models.AvailabilityProfile{
		ID:       "prof-1",
		Duration: 30,
		TimeSlots: []models.WeeklyWindow{
			{Day: 1, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		},
		MaxDaysInAdvance: 30,
		Timezone:         "UTC",
		IsActive:         true,
	}
}

func slotStarts(slots []models.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format("15:04")
	}
	return out
}

func TestGenerateSlotsFillsWindow(t *testing.T) {
	profile := mondayProfile()
	now := monday.Add(-48 * time.Hour)

	slots := GenerateSlots(profile, nil, monday, monday, now)

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slotStarts(slots))
	}
	for i, w := range want {
		if got := slots[i].Start.Format("15:04"); got != w {
			t.Errorf("slot %d: expected start %s, got %s", i, w, got)
		}
		if d := slots[i].End.Sub(slots[i].Start); d != 30*time.Minute {
			t.Errorf("slot %d: expected 30m duration, got %v", i, d)
		}
	}
}

func TestGenerateSlotsBufferOverlap(t *testing.T) {
	profile := mondayProfile()
	profile.BufferBefore = 10
	profile.BufferAfter = 10
	now := monday.Add(-48 * time.Hour)

	existing := []models.Booking{{
		ID:             "bk-1",
		AvailabilityID: profile.ID,
		StartTime:      monday.Add(10 * time.Hour),
		EndTime:        monday.Add(10*time.Hour + 30*time.Minute),
		Status:         models.BookingConfirmed,
	}}

	slots := GenerateSlots(profile, existing, monday, monday, now)

	want := []string{"09:00", "11:00", "11:30"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateSlotsIgnoresInactiveBookings(t *testing.T) {
	profile := mondayProfile()
	now := monday.Add(-48 * time.Hour)

	existing := []models.Booking{{
		StartTime: monday.Add(10 * time.Hour),
		EndTime:   monday.Add(10*time.Hour + 30*time.Minute),
		Status:    models.BookingCancelled,
	}}

	slots := GenerateSlots(profile, existing, monday, monday, now)
	if len(slots) != 6 {
		t.Fatalf("cancelled booking should not block slots, got %d of 6", len(slots))
	}
}

func TestGenerateSlotsNoticeWindow(t *testing.T) {
	profile := mondayProfile()
	profile.MinNoticeHours = 24

	// 10:30 the day before: slots before Monday 10:30 are inside the notice
	// window; 10:30 itself starts exactly 24h out and stays.
	now := monday.Add(-24*time.Hour + 10*time.Hour + 30*time.Minute)

	slots := GenerateSlots(profile, nil, monday, monday, now)

	want := []string{"10:30", "11:00", "11:30"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected slots %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateSlotsExcludedDate(t *testing.T) {
	profile := mondayProfile()
	profile.ExcludedDates = []models.ExcludedDate{{Date: "2026-03-02", Reason: "court holiday"}}
	now := monday.Add(-48 * time.Hour)

	if slots := GenerateSlots(profile, nil, monday, monday, now); len(slots) != 0 {
		t.Fatalf("excluded day must yield no slots, got %v", slotStarts(slots))
	}
}

func TestGenerateSlotsAdvanceWindow(t *testing.T) {
	profile := mondayProfile()
	profile.MaxDaysInAdvance = 3
	now := monday.Add(-48 * time.Hour) // Saturday before

	nextMonday := monday.AddDate(0, 0, 7)
	if slots := GenerateSlots(profile, nil, nextMonday, nextMonday, now); len(slots) != 0 {
		t.Fatalf("slots beyond maxDaysInAdvance must not be offered, got %d", len(slots))
	}
	if slots := GenerateSlots(profile, nil, monday, monday, now); len(slots) == 0 {
		t.Fatal("slots within maxDaysInAdvance should be offered")
	}
}

func TestGenerateSlotsSkipsPastDays(t *testing.T) {
	profile := mondayProfile()
	now := monday.AddDate(0, 0, 2) // Wednesday after

	if slots := GenerateSlots(profile, nil, monday, monday, now); len(slots) != 0 {
		t.Fatalf("past days must yield no slots, got %d", len(slots))
	}
}

func TestGenerateSlotsSkipsDaysWithoutWindow(t *testing.T) {
	profile := mondayProfile()
	now := monday.Add(-48 * time.Hour)

	tuesday := monday.AddDate(0, 0, 1)
	if slots := GenerateSlots(profile, nil, tuesday, tuesday, now); len(slots) != 0 {
		t.Fatalf("days without an active window must yield no slots, got %d", len(slots))
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	profile := mondayProfile()
	profile.BufferBefore = 5
	profile.BufferAfter = 5
	now := monday.Add(-48 * time.Hour)
	existing := []models.Booking{{
		StartTime: monday.Add(9*time.Hour + 30*time.Minute),
		EndTime:   monday.Add(10 * time.Hour),
		Status:    models.BookingPending,
	}}

	first := GenerateSlots(profile, existing, monday, monday.AddDate(0, 0, 6), now)
	second := GenerateSlots(profile, existing, monday, monday.AddDate(0, 0, 6), now)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic output: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Fatalf("non-deterministic slot %d: %v vs %v", i, first[i], second[i])
		}
	}
	for i := 1; i < len(first); i++ {
		if !first[i-1].Start.Before(first[i].Start) {
			t.Fatalf("slots out of order at %d", i)
		}
	}
}

func TestGenerateSlotsProfileTimezone(t *testing.T) {
	profile := mondayProfile()
	profile.Timezone = "America/Bogota"
	now := monday.Add(-48 * time.Hour)

	// Monday midnight UTC is still Sunday evening in Bogota, so stretch the
	// range a day to cover the local Monday.
	slots := GenerateSlots(profile, nil, monday, monday.AddDate(0, 0, 1), now)
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	// 09:00 wall clock in Bogota is 14:00 UTC.
	if got := slots[0].Start.UTC().Format("15:04"); got != "14:00" {
		t.Fatalf("expected first slot at 14:00 UTC, got %s", got)
	}
}
