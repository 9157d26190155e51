package availability

import (
	"fmt"
	"time"

	availabilityerrors "pawbook/internal/availability/errors"
	"pawbook/pkg/model"
)

// DateKeyLayout is the canonical date key form used across the store.
const DateKeyLayout = "2006-01-02"

// Capacity limits by weekday/weekend classification. The salon staffs three
// groomers on weekends, two during the week.
const (
	WeekendDailyLimit           = 25
	WeekendMaxConcurrentPerSlot = 3

	WeekdayDailyLimit           = 15
	WeekdayMaxConcurrentPerSlot = 2
)

// ParseDateKey validates a canonical YYYY-MM-DD date key.
func ParseDateKey(dateKey string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, dateKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", availabilityerrors.ErrInvalidDate, dateKey)
	}
	// time.Parse tolerates some non-padded inputs; the store key must be
	// byte-for-byte canonical.
	if t.Format(DateKeyLayout) != dateKey {
		return time.Time{}, fmt.Errorf("%w: %s", availabilityerrors.ErrInvalidDate, dateKey)
	}
	return t, nil
}

// RuleFor derives the capacity rule for a date. Pure and total over valid
// calendar dates.
func RuleFor(dateKey string) (model.CapacityRule, error) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return model.CapacityRule{}, err
	}

	if isWeekend(t) {
		return model.CapacityRule{
			DailyLimit:           WeekendDailyLimit,
			MaxConcurrentPerSlot: WeekendMaxConcurrentPerSlot,
		}, nil
	}

	return model.CapacityRule{
		DailyLimit:           WeekdayDailyLimit,
		MaxConcurrentPerSlot: WeekdayMaxConcurrentPerSlot,
	}, nil
}

func DailyLimit(dateKey string) (int, error) {
	rule, err := RuleFor(dateKey)
	if err != nil {
		return 0, err
	}
	return rule.DailyLimit, nil
}

func MaxConcurrentPerSlot(dateKey string) (int, error) {
	rule, err := RuleFor(dateKey)
	if err != nil {
		return 0, err
	}
	return rule.MaxConcurrentPerSlot, nil
}

func isWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
