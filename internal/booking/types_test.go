package booking

import (
	"testing"
	"time"
)

func ts(hour int) time.Time {
	return time.Date(2026, 8, 26, hour, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{"identical", ts(10), ts(11), ts(10), ts(11), true},
		{"partial overlap", ts(10), ts(12), ts(11), ts(13), true},
		{"contained", ts(10), ts(14), ts(11), ts(12), true},
		// Полуоткрытые интервалы: конец одного = начало другого - НЕ конфликт.
		{"back to back", ts(10), ts(11), ts(11), ts(12), false},
		{"disjoint", ts(8), ts(9), ts(15), ts(16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.expected {
				t.Errorf("Overlaps = %v, want %v", got, tt.expected)
			}
			// Предикат симметричен.
			if Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd) != got {
				t.Error("Overlaps must be symmetric")
			}
		})
	}
}

func TestBuildSlots(t *testing.T) {
	day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	bookings := []Booking{
		{Start: ts(10), End: ts(12)},
		// Получасовая бронь помечает весь часовой слот.
		{Start: ts(15).Add(15 * time.Minute), End: ts(15).Add(45 * time.Minute)},
	}

	slots := BuildSlots(day, bookings)

	if len(slots) != DayEndHour-DayStartHour {
		t.Fatalf("slots = %d, want %d", len(slots), DayEndHour-DayStartHour)
	}

	if slots[0].Start.Hour() != DayStartHour {
		t.Errorf("first slot starts at %d, want %d", slots[0].Start.Hour(), DayStartHour)
	}

	bookedHours := make(map[int]bool)
	for _, s := range slots {
		if s.Booked {
			bookedHours[s.Start.Hour()] = true
		}
	}

	for _, h := range []int{10, 11, 15} {
		if !bookedHours[h] {
			t.Errorf("hour %d should be booked", h)
		}
	}
	if len(bookedHours) != 3 {
		t.Errorf("booked hours = %v, want exactly {10, 11, 15}", bookedHours)
	}
}

func TestBuildSlots_EmptyDay(t *testing.T) {
	day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	for _, s := range BuildSlots(day, nil) {
		if s.Booked {
			t.Fatalf("slot %v should be free on an empty day", s.Start)
		}
	}
}
