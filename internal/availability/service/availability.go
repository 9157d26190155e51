package service

import (
	"context"
	"errors"
	"fmt"

	"pawbook/internal/availability"
	availabilityerrors "pawbook/internal/availability/errors"
	"pawbook/internal/availability/repository"
	"pawbook/pkg/config"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

// DaySummary is the calendar-level view of one date: whether it accepts any
// further bookings and how much headroom is left.
type DaySummary struct {
	DateKey           string `json:"date"`
	Bookable          bool   `json:"bookable"`
	DailyLimit        int    `json:"daily_limit"`
	BookedCount       int    `json:"booked_count"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

type AvailabilityService interface {
	IsDateBookable(ctx context.Context, dateKey string) (bool, error)
	DaySummary(ctx context.Context, dateKey string) (*DaySummary, error)
	OfferedSlots(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error)
}

type availabilityService struct {
	repo        repository.DayRepository
	log         *logger.Logger
	dayStartMin int
	dayEndMin   int
}

func NewAvailabilityService(cfg *config.Config, repo repository.DayRepository) AvailabilityService {
	dayStart, err := availability.ParseClock(cfg.DayStart)
	if err != nil {
		cfg.Log.Fatal("invalid day start", "value", cfg.DayStart, "error", err)
	}
	dayEnd, err := availability.ParseClock(cfg.DayEnd)
	if err != nil {
		cfg.Log.Fatal("invalid day end", "value", cfg.DayEnd, "error", err)
	}

	return &availabilityService{
		repo:        repo,
		log:         cfg.Log,
		dayStartMin: dayStart,
		dayEndMin:   dayEnd,
	}
}

// IsDateBookable reports whether the date still has daily capacity. The answer
// is a point-in-time read; the commit path re-checks under its transaction.
func (s *availabilityService) IsDateBookable(ctx context.Context, dateKey string) (bool, error) {
	summary, err := s.DaySummary(ctx, dateKey)
	if err != nil {
		return false, err
	}
	return summary.Bookable, nil
}

func (s *availabilityService) DaySummary(ctx context.Context, dateKey string) (*DaySummary, error) {
	if _, err := availability.ParseDateKey(dateKey); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("date must be in YYYY-MM-DD format, got: %s", dateKey))
	}

	snapshot, err := s.repo.Load(ctx, dateKey)
	if err != nil {
		return nil, apperrors.UnavailableWrap(err, "availability store")
	}

	remaining := snapshot.DailyLimit - snapshot.Booked()
	if remaining < 0 {
		remaining = 0
	}

	return &DaySummary{
		DateKey:           dateKey,
		Bookable:          snapshot.Booked() < snapshot.DailyLimit,
		DailyLimit:        snapshot.DailyLimit,
		BookedCount:       snapshot.Booked(),
		RemainingCapacity: remaining,
	}, nil
}

// OfferedSlots lists the windows a customer can still pick for the date, in
// day order. A date at its daily limit offers nothing; a slot at its
// concurrency cap is omitted rather than shown disabled.
func (s *availabilityService) OfferedSlots(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error) {
	if _, err := availability.ParseDateKey(dateKey); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("date must be in YYYY-MM-DD format, got: %s", dateKey))
	}

	maxPerSlot, err := availability.MaxConcurrentPerSlot(dateKey)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	labels, err := availability.GenerateSlots(durationMin, bufferMin, s.dayStartMin, s.dayEndMin)
	if err != nil {
		if errors.Is(err, availabilityerrors.ErrInvalidDuration) {
			return nil, apperrors.InvalidInput(err.Error())
		}
		return nil, apperrors.Internal("failed to generate slots", err)
	}

	snapshot, err := s.repo.Load(ctx, dateKey)
	if err != nil {
		return nil, apperrors.UnavailableWrap(err, "availability store")
	}

	slots := make([]model.Slot, 0, len(labels))
	if snapshot.Booked() >= snapshot.DailyLimit {
		return slots, nil
	}

	for _, label := range labels {
		remaining := maxPerSlot - snapshot.SlotOccupancy(label)
		if remaining <= 0 {
			continue
		}
		slots = append(slots, model.Slot{
			Label:          label,
			RemainingSpots: remaining,
			TotalSpots:     maxPerSlot,
		})
	}

	s.log.Debug("Offered slots computed",
		"date", dateKey,
		"generated", len(labels),
		"offered", len(slots),
		"booked", snapshot.Booked(),
	)
	return slots, nil
}
