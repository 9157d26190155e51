package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawbook/internal/availability/service"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockAvailabilityService struct {
	daySummaryFn   func(ctx context.Context, dateKey string) (*service.DaySummary, error)
	offeredSlotsFn func(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error)
}

func (m *mockAvailabilityService) IsDateBookable(ctx context.Context, dateKey string) (bool, error) {
	summary, err := m.daySummaryFn(ctx, dateKey)
	if err != nil {
		return false, err
	}
	return summary.Bookable, nil
}

func (m *mockAvailabilityService) DaySummary(ctx context.Context, dateKey string) (*service.DaySummary, error) {
	return m.daySummaryFn(ctx, dateKey)
}

func (m *mockAvailabilityService) OfferedSlots(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error) {
	return m.offeredSlotsFn(ctx, dateKey, durationMin, bufferMin)
}

func newTestHandler(svc service.AvailabilityService) *AvailabilityHandler {
	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	return NewAvailabilityHandler(svc, log, 90, 15)
}

func serve(h *AvailabilityHandler, method, target string) *httptest.ResponseRecorder {
	router := httprouter.New()
	h.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestGetDay_ReturnsSummary(t *testing.T) {
	svc := &mockAvailabilityService{
		daySummaryFn: func(ctx context.Context, dateKey string) (*service.DaySummary, error) {
			return &service.DaySummary{
				DateKey:           dateKey,
				Bookable:          true,
				DailyLimit:        25,
				BookedCount:       3,
				RemainingCapacity: 22,
			}, nil
		},
	}

	rec := serve(newTestHandler(svc), http.MethodGet, "/api/v1/availability/2025-11-29")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data service.DaySummary `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.Bookable || resp.Data.RemainingCapacity != 22 {
		t.Errorf("unexpected summary: %+v", resp.Data)
	}
}

func TestGetDay_InvalidDate(t *testing.T) {
	svc := &mockAvailabilityService{
		daySummaryFn: func(ctx context.Context, dateKey string) (*service.DaySummary, error) {
			return nil, apperrors.InvalidInput("date must be in YYYY-MM-DD format, got: bogus")
		},
	}

	rec := serve(newTestHandler(svc), http.MethodGet, "/api/v1/availability/bogus")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetSlots_DefaultDuration(t *testing.T) {
	var gotDuration, gotBuffer int
	svc := &mockAvailabilityService{
		offeredSlotsFn: func(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error) {
			gotDuration = durationMin
			gotBuffer = bufferMin
			return []model.Slot{{Label: "9:30 AM - 11:00 AM", RemainingSpots: 3, TotalSpots: 3}}, nil
		},
	}

	rec := serve(newTestHandler(svc), http.MethodGet, "/api/v1/availability/2025-11-29/slots")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotDuration != 90 || gotBuffer != 15 {
		t.Errorf("expected configured defaults 90/15, got %d/%d", gotDuration, gotBuffer)
	}
}

func TestGetSlots_QueryOverrides(t *testing.T) {
	var gotDuration, gotBuffer int
	svc := &mockAvailabilityService{
		offeredSlotsFn: func(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error) {
			gotDuration = durationMin
			gotBuffer = bufferMin
			return []model.Slot{}, nil
		},
	}

	rec := serve(newTestHandler(svc), http.MethodGet, "/api/v1/availability/2025-11-29/slots?duration=60&buffer=0")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotDuration != 60 || gotBuffer != 0 {
		t.Errorf("expected 60/0 from query, got %d/%d", gotDuration, gotBuffer)
	}
}

func TestGetSlots_MalformedDuration(t *testing.T) {
	svc := &mockAvailabilityService{
		offeredSlotsFn: func(ctx context.Context, dateKey string, durationMin, bufferMin int) ([]model.Slot, error) {
			t.Fatal("service must not be called with a malformed duration")
			return nil, nil
		},
	}

	rec := serve(newTestHandler(svc), http.MethodGet, "/api/v1/availability/2025-11-29/slots?duration=soon")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
