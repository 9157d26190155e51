package service

import (
	"context"
	"errors"
	"testing"

	"pawbook/internal/availability"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

type mockDayRepository struct {
	loadFn       func(ctx context.Context, dateKey string) (*model.DaySnapshot, error)
	appendSlotFn func(ctx context.Context, dateKey string, slotLabel string, dailyLimit int) error
}

func (m *mockDayRepository) Load(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
	return m.loadFn(ctx, dateKey)
}

func (m *mockDayRepository) AppendSlot(ctx context.Context, dateKey string, slotLabel string, dailyLimit int) error {
	return m.appendSlotFn(ctx, dateKey, slotLabel, dailyLimit)
}

func newTestService(repo *mockDayRepository) *availabilityService {
	return &availabilityService{
		repo:        repo,
		log:         logger.New(logger.Config{Level: logger.ERROR, Service: "test"}),
		dayStartMin: availability.DefaultDayStartMin,
		dayEndMin:   availability.DefaultDayEndMin,
	}
}

func TestDaySummary_FreshDate(t *testing.T) {
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return &model.DaySnapshot{DateKey: dateKey, BookedSlots: []string{}, DailyLimit: 25}, nil
		},
	}
	svc := newTestService(repo)

	summary, err := svc.DaySummary(context.Background(), "2025-11-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.Bookable {
		t.Error("fresh saturday should be bookable")
	}
	if summary.DailyLimit != 25 {
		t.Errorf("expected daily limit 25, got %d", summary.DailyLimit)
	}
	if summary.RemainingCapacity != 25 {
		t.Errorf("expected remaining 25, got %d", summary.RemainingCapacity)
	}
}

func TestDaySummary_FullDate(t *testing.T) {
	booked := make([]string, 15)
	for i := range booked {
		booked[i] = "9:30 AM - 11:00 AM"
	}
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return &model.DaySnapshot{DateKey: dateKey, BookedSlots: booked, DailyLimit: 15}, nil
		},
	}
	svc := newTestService(repo)

	summary, err := svc.DaySummary(context.Background(), "2025-12-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Bookable {
		t.Error("date at its daily limit must not be bookable")
	}
	if summary.RemainingCapacity != 0 {
		t.Errorf("expected remaining 0, got %d", summary.RemainingCapacity)
	}
}

func TestDaySummary_InvalidDate(t *testing.T) {
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			t.Fatal("repository must not be hit for an invalid date")
			return nil, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.DaySummary(context.Background(), "29-11-2025")
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
	}
}

func TestOfferedSlots_FreshWeekend(t *testing.T) {
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return &model.DaySnapshot{DateKey: dateKey, BookedSlots: []string{}, DailyLimit: 25}, nil
		},
	}
	svc := newTestService(repo)

	slots, err := svc.OfferedSlots(context.Background(), "2025-11-29", 90, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 6 {
		t.Fatalf("expected 6 slots for a 90+15 day, got %d", len(slots))
	}
	if slots[0].Label != "9:30 AM - 11:00 AM" {
		t.Errorf("unexpected first slot %q", slots[0].Label)
	}
	for _, slot := range slots {
		if slot.RemainingSpots != 3 || slot.TotalSpots != 3 {
			t.Errorf("slot %q: expected 3/3 spots, got %d/%d", slot.Label, slot.RemainingSpots, slot.TotalSpots)
		}
	}
}

func TestOfferedSlots_PartiallyBooked(t *testing.T) {
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return &model.DaySnapshot{
				DateKey: dateKey,
				// first slot at the weekday cap, second booked once
				BookedSlots: []string{"9:30 AM - 11:00 AM", "9:30 AM - 11:00 AM", "11:15 AM - 12:45 PM"},
				DailyLimit:  15,
			}, nil
		},
	}
	svc := newTestService(repo)

	slots, err := svc.OfferedSlots(context.Background(), "2025-12-01", 90, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 5 {
		t.Fatalf("expected full slot dropped, got %d slots", len(slots))
	}
	for _, slot := range slots {
		if slot.Label == "9:30 AM - 11:00 AM" {
			t.Error("slot at its concurrency cap must be omitted")
		}
		if slot.Label == "11:15 AM - 12:45 PM" && slot.RemainingSpots != 1 {
			t.Errorf("expected 1 remaining spot, got %d", slot.RemainingSpots)
		}
	}
}

func TestOfferedSlots_DayAtLimit(t *testing.T) {
	booked := make([]string, 25)
	for i := range booked {
		booked[i] = "1:00 PM - 2:30 PM"
	}
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return &model.DaySnapshot{DateKey: dateKey, BookedSlots: booked, DailyLimit: 25}, nil
		},
	}
	svc := newTestService(repo)

	slots, err := svc.OfferedSlots(context.Background(), "2025-11-30", 90, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a full day, got %d", len(slots))
	}
}

func TestOfferedSlots_StoreDown(t *testing.T) {
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newTestService(repo)

	_, err := svc.OfferedSlots(context.Background(), "2025-11-29", 90, 15)
	if err == nil {
		t.Fatal("expected error when the store is unreachable")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeUnavailable {
		t.Errorf("expected %s, got %s", apperrors.CodeUnavailable, appErr.Code)
	}
}

func TestOfferedSlots_InvalidDuration(t *testing.T) {
	repo := &mockDayRepository{
		loadFn: func(ctx context.Context, dateKey string) (*model.DaySnapshot, error) {
			return &model.DaySnapshot{DateKey: dateKey, BookedSlots: []string{}, DailyLimit: 15}, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.OfferedSlots(context.Background(), "2025-12-01", 0, 15)
	if err == nil {
		t.Fatal("expected error for zero duration")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected %s, got %s", apperrors.CodeInvalidInput, appErr.Code)
	}
}
