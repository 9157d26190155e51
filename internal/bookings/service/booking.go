package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"pawbook/internal/availability"
	availabilityrepo "pawbook/internal/availability/repository"
	bookingserrors "pawbook/internal/bookings/errors"
	"pawbook/internal/bookings/repository"
	"pawbook/internal/bookings/validator"
	"pawbook/pkg/config"
	apperrors "pawbook/pkg/errors"
	"pawbook/pkg/kafka"
	"pawbook/pkg/model"
	"pawbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

const EventBookingConfirmed = "booking.confirmed"

// EventPublisher is the slice of the Kafka producer the service needs.
// Nil-able so deployments without a broker run the same code path.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Commit(ctx context.Context, booking *model.BookingRecord) error
	GetByReference(ctx context.Context, referenceCode string) (*model.BookingRecord, error)
	GetByDate(ctx context.Context, dateKey string, limit int, offset int64) ([]*model.BookingRecord, int64, error)
}

type bookingService struct {
	repo        repository.BookingRepository
	lockRepo    repository.SlotLockRepository
	dayRepo     availabilityrepo.DayRepository
	validator   *validator.BookingValidator
	publisher   EventPublisher
	cfg         *config.Config
	dayStartMin int
	dayEndMin   int
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.SlotLockRepository,
	dayRepo availabilityrepo.DayRepository,
	validator *validator.BookingValidator,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	dayStart, err := availability.ParseClock(cfg.DayStart)
	if err != nil {
		cfg.Log.Fatal("invalid day start", "value", cfg.DayStart, "error", err)
	}
	dayEnd, err := availability.ParseClock(cfg.DayEnd)
	if err != nil {
		cfg.Log.Fatal("invalid day end", "value", cfg.DayEnd, "error", err)
	}

	return &bookingService{
		repo:        repo,
		lockRepo:    lockRepo,
		dayRepo:     dayRepo,
		validator:   validator,
		publisher:   publisher,
		cfg:         cfg,
		dayStartMin: dayStart,
		dayEndMin:   dayEnd,
	}
}

// Commit confirms one appointment. Capacity is re-checked against a fresh
// snapshot inside the transaction, so a stale slot picker can never overbook;
// the advisory lock narrows the race window before the transaction begins.
func (s *bookingService) Commit(ctx context.Context, booking *model.BookingRecord) error {
	s.applyDefaults(booking)
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	if err := s.verifySlotOffered(booking); err != nil {
		return err
	}

	lockID, err := s.acquireSlotLock(ctx, booking.Date, booking.SlotLabel)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	maxPerSlot, err := availability.MaxConcurrentPerSlot(booking.Date)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		snapshot, err := s.dayRepo.Load(sessCtx, booking.Date)
		if err != nil {
			return apperrors.UnavailableWrap(err, "availability store")
		}

		if snapshot.Booked() >= snapshot.DailyLimit {
			return apperrors.ConflictWrap(bookingserrors.ErrDailyLimitReached,
				fmt.Sprintf("No more appointments available on %s", booking.Date))
		}
		if snapshot.SlotOccupancy(booking.SlotLabel) >= maxPerSlot {
			return apperrors.ConflictWrap(bookingserrors.ErrSlotFull,
				fmt.Sprintf("The %s slot on %s is fully booked", booking.SlotLabel, booking.Date))
		}

		if err := s.insertWithFreshReference(sessCtx, booking); err != nil {
			return err
		}

		if err := s.dayRepo.AppendSlot(sessCtx, booking.Date, booking.SlotLabel, snapshot.DailyLimit); err != nil {
			return apperrors.Internal("Failed to record slot occupancy", err)
		}

		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to commit booking", "date", booking.Date, "slot", booking.SlotLabel, "error", err)
		return err
	}

	s.cfg.Log.Info("Booking committed successfully",
		"reference_code", booking.ReferenceCode,
		"date", booking.Date,
		"slot", booking.SlotLabel,
		"service_type", booking.ServiceType,
	)

	s.publishConfirmed(ctx, booking)
	return nil
}

func (s *bookingService) GetByReference(ctx context.Context, referenceCode string) (*model.BookingRecord, error) {
	if referenceCode == "" {
		return nil, apperrors.InvalidInput("Reference code cannot be empty")
	}

	booking, err := s.repo.FindByReference(ctx, referenceCode)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", referenceCode)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetByDate(ctx context.Context, dateKey string, limit int, offset int64) ([]*model.BookingRecord, int64, error) {
	if _, err := availability.ParseDateKey(dateKey); err != nil {
		return nil, 0, apperrors.InvalidInput(fmt.Sprintf("date must be in YYYY-MM-DD format, got: %s", dateKey))
	}

	var count int64
	var bookings []*model.BookingRecord
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByDate(ctx, dateKey)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "date", dateKey, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByDate(ctx, dateKey, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "date", dateKey, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// --- Helpers ---

func (s *bookingService) applyDefaults(b *model.BookingRecord) {
	// reference codes are always generated server-side
	b.ReferenceCode = ""

	if b.DurationMinutes <= 0 {
		b.DurationMinutes = s.cfg.DefaultServiceDurationMin
	}
	if b.TotalPrice < b.AddOnTotal() {
		b.TotalPrice = b.AddOnTotal()
	}
}

func (s *bookingService) sanitize(b *model.BookingRecord) {
	b.ServiceType = sanitizer.NormalizeFreeText(b.ServiceType)
	b.ServiceSize = sanitizer.NormalizeFreeText(b.ServiceSize)
	for i := range b.AddOns {
		b.AddOns[i].Name = sanitizer.NormalizeFreeText(b.AddOns[i].Name)
	}

	b.Pet.Name = sanitizer.NormalizeName(b.Pet.Name)
	b.Pet.Breed = sanitizer.NormalizeName(b.Pet.Breed)
	b.Pet.Allergies = sanitizer.NormalizeFreeText(b.Pet.Allergies)
	b.Pet.HealthHistory = sanitizer.NormalizeFreeText(b.Pet.HealthHistory)

	b.Owner.Name = sanitizer.NormalizeName(b.Owner.Name)
	b.Owner.Address = sanitizer.NormalizeFreeText(b.Owner.Address)
	b.Owner.Email = sanitizer.NormalizeEmail(b.Owner.Email)
	b.Owner.ContactNumber = sanitizer.SanitizePhone(b.Owner.ContactNumber)
}

func (s *bookingService) validate(booking *model.BookingRecord) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// verifySlotOffered checks the label against the deterministic slot sequence
// for the booking's duration. Labels are identity; anything outside the
// sequence was never offered.
func (s *bookingService) verifySlotOffered(b *model.BookingRecord) error {
	labels, err := availability.GenerateSlots(b.DurationMinutes, s.cfg.SlotBufferMin, s.dayStartMin, s.dayEndMin)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}

	for _, label := range labels {
		if label == b.SlotLabel {
			return nil
		}
	}

	return apperrors.Wrap(bookingserrors.ErrSlotUnknown, apperrors.CodeInvalidInput,
		fmt.Sprintf("Slot %q is not offered for a %d minute service", b.SlotLabel, b.DurationMinutes),
		http.StatusBadRequest)
}

// insertWithFreshReference inserts the record, regenerating the reference on
// a duplicate key collision up to the configured attempt cap.
func (s *bookingService) insertWithFreshReference(ctx context.Context, booking *model.BookingRecord) error {
	for attempt := 1; attempt <= s.cfg.ReferenceMaxAttempts; attempt++ {
		reference, err := newReferenceCode()
		if err != nil {
			return apperrors.Internal("Failed to generate reference code", err)
		}
		booking.ReferenceCode = reference

		err = s.repo.Create(ctx, booking)
		if err == nil {
			return nil
		}
		if errors.Is(err, bookingserrors.ErrReferenceExists) {
			s.cfg.Log.Warn("Reference code collision, regenerating",
				"reference_code", reference,
				"attempt", attempt,
			)
			continue
		}
		return apperrors.Internal("Failed to create booking", err)
	}

	return apperrors.Internal("Failed to allocate a unique reference code",
		bookingserrors.ErrReferenceExists)
}

// acquireSlotLock creates an advisory lock for the (date, slot) pair.
// Returns a conflict error if another request currently holds it.
func (s *bookingService) acquireSlotLock(ctx context.Context, dateKey, slotLabel string) (string, error) {
	lockID := fmt.Sprintf("slot_lock_%s_%s", dateKey, slotLabel)

	lock := &model.SlotLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.SlotLockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This time slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire slot lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}

// publishConfirmed emits the confirmation event. Best effort: the booking is
// already durable, so a broker outage only costs downstream notifications.
func (s *bookingService) publishConfirmed(ctx context.Context, booking *model.BookingRecord) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(booking.Date).
		WithValue(booking).
		WithEventType(EventBookingConfirmed).
		WithSource("bookings").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"reference_code", booking.ReferenceCode,
			"topic", s.cfg.KafkaBookingsTopic,
			"error", err,
		)
	}
}
