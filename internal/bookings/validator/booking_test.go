package validator

import (
	"errors"
	"io"
	"testing"
	"time"

	"pawbook/pkg/logger"
	"pawbook/pkg/model"
)

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}))
}

func validBooking() *model.BookingRecord {
	return &model.BookingRecord{
		ServiceType:     "Full Groom",
		ServiceSize:     "Medium (9-22 kg)",
		AddOns:          []model.AddOn{{Name: "Nail Trim", Price: 150}},
		TotalPrice:      1650,
		DurationMinutes: 90,
		Date:            time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		SlotLabel:       "9:30 AM - 11:00 AM",
		Pet: model.Pet{
			Name:  "Biscuit",
			Breed: "Shih Tzu",
		},
		Owner: model.Owner{
			Name:          "Maria Santos",
			ContactNumber: "+639171234567",
			Email:         "maria@example.com",
		},
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := newTestValidator()
	if err := v.Validate(validBooking()); err != nil {
		t.Fatalf("expected valid booking, got: %v", err)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(b *model.BookingRecord)
	}{
		{"no service type", func(b *model.BookingRecord) { b.ServiceType = "" }},
		{"no date", func(b *model.BookingRecord) { b.Date = "" }},
		{"no slot label", func(b *model.BookingRecord) { b.SlotLabel = "" }},
		{"no pet name", func(b *model.BookingRecord) { b.Pet.Name = "" }},
		{"no pet breed", func(b *model.BookingRecord) { b.Pet.Breed = "" }},
		{"no owner name", func(b *model.BookingRecord) { b.Owner.Name = "" }},
		{"no owner contact", func(b *model.BookingRecord) { b.Owner.ContactNumber = "" }},
		{"no owner email", func(b *model.BookingRecord) { b.Owner.Email = "" }},
		{"zero duration", func(b *model.BookingRecord) { b.DurationMinutes = 0 }},
	}

	v := newTestValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			tc.mutate(b)

			err := v.Validate(b)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
		})
	}
}

func TestValidate_DateKeyFormat(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"canonical", time.Now().AddDate(0, 1, 0).Format("2006-01-02"), false},
		{"slashes", "2027/01/15", true},
		{"unpadded", "2027-1-5", true},
		{"impossible day", "2027-02-30", true},
		{"free text", "next tuesday", true},
	}

	v := newTestValidator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			b.Date = tc.date

			err := v.Validate(b)
			if tc.wantErr && err == nil {
				t.Errorf("date %q: expected validation error", tc.date)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("date %q: unexpected error: %v", tc.date, err)
			}
		})
	}
}

func TestValidate_PastDateRejected(t *testing.T) {
	v := newTestValidator()
	b := validBooking()
	b.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	if err := v.Validate(b); err == nil {
		t.Fatal("expected error for a past date")
	}
}

func TestValidate_TotalPriceBelowAddOns(t *testing.T) {
	v := newTestValidator()
	b := validBooking()
	b.AddOns = []model.AddOn{{Name: "Teeth Cleaning", Price: 500}}
	b.TotalPrice = 300

	err := v.Validate(b)
	if err == nil {
		t.Fatal("expected error when total is below add-on sum")
	}
	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if validationErrs[0].Field != "TotalPrice" {
		t.Errorf("expected TotalPrice error, got %s", validationErrs[0].Field)
	}
}

func TestValidate_ReferenceCodeShape(t *testing.T) {
	v := newTestValidator()

	b := validBooking()
	b.ReferenceCode = "ABC123XYZ789"
	if err := v.Validate(b); err != nil {
		t.Errorf("12-char alphanumeric reference should pass: %v", err)
	}

	b = validBooking()
	b.ReferenceCode = "short"
	if err := v.Validate(b); err == nil {
		t.Error("expected error for a malformed reference code")
	}
}
