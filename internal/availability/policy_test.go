package availability

import (
	"errors"
	"testing"

	availabilityerrors "pawbook/internal/availability/errors"
)

func TestRuleFor_WeekendVsWeekday(t *testing.T) {
	cases := []struct {
		name         string
		dateKey      string
		wantDaily    int
		wantParallel int
	}{
		{"saturday", "2025-11-29", 25, 3},
		{"sunday", "2025-11-30", 25, 3},
		{"monday", "2025-12-01", 15, 2},
		{"wednesday", "2025-12-03", 15, 2},
		{"friday", "2025-12-05", 15, 2},
		{"leap year saturday", "2024-06-29", 25, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule, err := RuleFor(tc.dateKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rule.DailyLimit != tc.wantDaily {
				t.Errorf("daily limit: expected %d, got %d", tc.wantDaily, rule.DailyLimit)
			}
			if rule.MaxConcurrentPerSlot != tc.wantParallel {
				t.Errorf("concurrent cap: expected %d, got %d", tc.wantParallel, rule.MaxConcurrentPerSlot)
			}
		})
	}
}

func TestRuleFor_InvalidDates(t *testing.T) {
	cases := []string{
		"",
		"tomorrow",
		"2025/11/29",
		"2025-13-01",
		"2025-02-30",
		"2025-1-3", // non-canonical padding
		"29-11-2025",
	}

	for _, dateKey := range cases {
		t.Run(dateKey, func(t *testing.T) {
			if _, err := RuleFor(dateKey); !errors.Is(err, availabilityerrors.ErrInvalidDate) {
				t.Errorf("RuleFor(%q): expected ErrInvalidDate, got %v", dateKey, err)
			}
		})
	}
}

func TestDailyLimitAndConcurrency(t *testing.T) {
	daily, err := DailyLimit("2025-11-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if daily != WeekendDailyLimit {
		t.Errorf("expected %d, got %d", WeekendDailyLimit, daily)
	}

	parallel, err := MaxConcurrentPerSlot("2025-12-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parallel != WeekdayMaxConcurrentPerSlot {
		t.Errorf("expected %d, got %d", WeekdayMaxConcurrentPerSlot, parallel)
	}
}
