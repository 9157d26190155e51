package availability

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	availabilityerrors "pawbook/internal/availability/errors"
)

func TestGenerateSlots_StandardGroom(t *testing.T) {
	// 90 minute groom with a 15 minute cleanup buffer, 09:30-20:00
	slots, err := GenerateSlots(90, 15, DefaultDayStartMin, DefaultDayEndMin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"9:30 AM - 11:00 AM",
		"11:15 AM - 12:45 PM",
		"1:00 PM - 2:30 PM",
		"2:45 PM - 4:15 PM",
		"4:30 PM - 6:00 PM",
		"6:15 PM - 7:45 PM",
	}

	if !reflect.DeepEqual(slots, expected) {
		t.Errorf("expected %v, got %v", expected, slots)
	}
}

func TestGenerateSlots_EndExactlyAtClose(t *testing.T) {
	// 120+0 from 09:30 to 17:30: the 15:30-17:30 slot ends exactly at
	// close and must be included.
	slots, err := GenerateSlots(120, 0, 9*60+30, 17*60+30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"9:30 AM - 11:30 AM",
		"11:30 AM - 1:30 PM",
		"1:30 PM - 3:30 PM",
		"3:30 PM - 5:30 PM",
	}

	if !reflect.DeepEqual(slots, expected) {
		t.Errorf("expected %v, got %v", expected, slots)
	}
}

func TestGenerateSlots_StrictlyIncreasing(t *testing.T) {
	cases := []struct {
		name     string
		duration int
		buffer   int
	}{
		{"short slots no buffer", 30, 0},
		{"standard groom", 90, 15},
		{"long groom", 180, 30},
		{"odd stride", 45, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := GenerateSlots(tc.duration, tc.buffer, DefaultDayStartMin, DefaultDayEndMin)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(slots) == 0 {
				t.Fatal("expected at least one slot")
			}

			stride := tc.duration + tc.buffer
			for i, label := range slots {
				start := DefaultDayStartMin + i*stride
				end := start + tc.duration

				if end > DefaultDayEndMin {
					t.Errorf("slot %q ends at %d, past closing %d", label, end, DefaultDayEndMin)
				}
				if want := SlotLabel(start, tc.duration); label != want {
					t.Errorf("slot %d: expected %q, got %q", i, want, label)
				}
			}
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := GenerateSlots(60, 10, DefaultDayStartMin, DefaultDayEndMin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateSlots(60, 10, DefaultDayStartMin, DefaultDayEndMin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("generator is not deterministic: %v vs %v", first, second)
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	cases := []struct {
		name     string
		duration int
		buffer   int
	}{
		{"zero duration", 0, 15},
		{"negative duration", -30, 15},
		{"negative buffer", 60, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSlots(tc.duration, tc.buffer, DefaultDayStartMin, DefaultDayEndMin)
			if !errors.Is(err, availabilityerrors.ErrInvalidDuration) {
				t.Errorf("expected ErrInvalidDuration, got %v", err)
			}
		})
	}
}

func TestGenerateSlots_NoSpaceInDay(t *testing.T) {
	slots, err := GenerateSlots(90, 15, 19*60, DefaultDayEndMin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots in a 60 minute window, got %v", slots)
	}
}

func TestSlotLabel_NoonAndMidnight(t *testing.T) {
	cases := []struct {
		start    int
		duration int
		want     string
	}{
		{11*60 + 15, 90, "11:15 AM - 12:45 PM"},
		{12 * 60, 60, "12:00 PM - 1:00 PM"},
		{0, 30, "12:00 AM - 12:30 AM"},
		{23 * 60, 60, "11:00 PM - 12:00 AM"},
	}

	for _, tc := range cases {
		if got := SlotLabel(tc.start, tc.duration); got != tc.want {
			t.Errorf("SlotLabel(%d, %d): expected %q, got %q", tc.start, tc.duration, tc.want, got)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"09:30", 570, false},
		{"20:00", 1200, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"930", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q): expected %d, got %d", tc.input, tc.want, got)
		}
	}
}

func TestGenerateSlots_LabelsAreUnique(t *testing.T) {
	slots, err := GenerateSlots(90, 15, DefaultDayStartMin, DefaultDayEndMin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]struct{}, len(slots))
	for _, label := range slots {
		if _, dup := seen[label]; dup {
			t.Errorf("duplicate slot label %q", label)
		}
		seen[label] = struct{}{}

		if !strings.Contains(label, " - ") {
			t.Errorf("label %q missing start/end separator", label)
		}
	}
}
