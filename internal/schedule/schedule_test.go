package schedule

import (
	"errors"
	"testing"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 29 {
		t.Fatalf("expected 29 slots, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Fatalf("expected first slot 08:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "22:00" {
		t.Fatalf("expected last slot 22:00, got %s", slots[len(slots)-1])
	}
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots out of order at %d: %s >= %s", i, slots[i-1], slots[i])
		}
	}
	if slots[3] != "09:30" {
		t.Fatalf("expected slot 3 to be 09:30, got %s", slots[3])
	}
}

func TestIsSlot(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{"08:00", true},
		{"22:00", true},
		{"13:30", true},
		{"8:00", false},
		{"08:15", false},
		{"07:30", false},
		{"22:30", false},
		{"24:00", false},
		{"", false},
		{"noon", false},
	}
	for _, tt := range tests {
		if got := IsSlot(tt.label); got != tt.want {
			t.Errorf("IsSlot(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestExpandRange(t *testing.T) {
	slots, err := ExpandRange("09:00", "10:00")
	if err != nil {
		t.Fatalf("expand range: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot %d: got %s, want %s", i, slots[i], want[i])
		}
	}
}

func TestExpandRangeFullDay(t *testing.T) {
	slots, err := ExpandRange("08:00", "22:00")
	if err != nil {
		t.Fatalf("expand range: %v", err)
	}
	if len(slots) != 29 {
		t.Fatalf("expected 29 slots, got %d", len(slots))
	}
}

func TestExpandRangeErrors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       error
	}{
		{"unknown start", "07:00", "09:00", ErrUnknownSlot},
		{"unknown end", "09:00", "22:30", ErrUnknownSlot},
		{"not on grid", "09:10", "10:00", ErrUnknownSlot},
		{"equal", "09:00", "09:00", ErrInvalidRange},
		{"reversed", "10:00", "09:00", ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExpandRange(tt.start, tt.end); !errors.Is(err, tt.want) {
				t.Fatalf("ExpandRange(%q, %q) = %v, want %v", tt.start, tt.end, err, tt.want)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(0)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	for i, d := range dates {
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 || d.Nanosecond() != 0 {
			t.Fatalf("date %d not truncated to midnight: %v", i, d)
		}
		if i > 0 && !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("date %d is not one day after date %d: %v, %v", i, i-1, dates[i], dates[i-1])
		}
	}
}

func TestWeekDatesOffset(t *testing.T) {
	base := WeekDates(0)
	ahead := WeekDates(2)
	if !ahead[0].Equal(base[0].AddDate(0, 0, 14)) {
		t.Fatalf("offset 2 starts at %v, want 14 days after %v", ahead[0], base[0])
	}
}
