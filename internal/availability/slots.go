package availability

import (
	"fmt"
	"strconv"
	"strings"

	availabilityerrors "pawbook/internal/availability/errors"
)

// Salon working window, minutes from midnight. Callers may override per
// request; config supplies these as the defaults.
const (
	DefaultDayStartMin = 9*60 + 30 // 09:30
	DefaultDayEndMin   = 20 * 60   // 20:00
)

// GenerateSlots produces the ordered bookable windows for one day. Starting
// at dayStart it emits [cursor, cursor+duration) labels and advances the
// cursor by duration+buffer. A slot is included only while its end stays at
// or before dayEnd; a slot ending exactly at close is kept.
//
// The same (duration, buffer) pair always yields the same label sequence, so
// labels double as slot identity and are never stored as separate IDs.
func GenerateSlots(durationMin, bufferMin, dayStartMin, dayEndMin int) ([]string, error) {
	if durationMin <= 0 {
		return nil, fmt.Errorf("%w: got %d minutes", availabilityerrors.ErrInvalidDuration, durationMin)
	}
	if bufferMin < 0 {
		return nil, fmt.Errorf("%w: buffer cannot be negative, got %d", availabilityerrors.ErrInvalidDuration, bufferMin)
	}

	slots := make([]string, 0)
	stride := durationMin + bufferMin

	for cursor := dayStartMin; cursor+durationMin <= dayEndMin; cursor += stride {
		slots = append(slots, SlotLabel(cursor, durationMin))
	}

	return slots, nil
}

// SlotLabel renders the display identity of a slot, e.g. "9:30 AM - 11:00 AM".
func SlotLabel(startMin, durationMin int) string {
	return formatClock12(startMin) + " - " + formatClock12(startMin+durationMin)
}

func formatClock12(minutes int) string {
	hour := (minutes / 60) % 24
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("clock must be in HH:MM format, got: %s", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock hour out of range, got: %s", clock)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock minute out of range, got: %s", clock)
	}

	return hour*60 + minute, nil
}
