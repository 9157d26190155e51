package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pawbook/internal/availability"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("datekey", validateDateKey); err != nil {
		log.Fatal("Failed to register 'datekey' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// validateDateKey accepts only canonical YYYY-MM-DD calendar dates. Padding
// matters: "2025-1-3" parses but is not a valid store key.
func validateDateKey(fl validator.FieldLevel) bool {
	_, err := availability.ParseDateKey(fl.Field().String())
	return err == nil
}

func (v *BookingValidator) Validate(booking *model.BookingRecord) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if booking.TotalPrice < booking.AddOnTotal() {
		return ValidationErrors{
			ValidationError{
				Field:   "TotalPrice",
				Message: fmt.Sprintf("total_price (%d) cannot be less than the add-on total (%d)", booking.TotalPrice, booking.AddOnTotal()),
			},
		}
	}

	if bookingDate, err := availability.ParseDateKey(booking.Date); err == nil {
		today := time.Now().Format(availability.DateKeyLayout)
		if bookingDate.Format(availability.DateKeyLayout) < today {
			return ValidationErrors{
				ValidationError{
					Field:   "Date",
					Message: "date cannot be in the past",
				},
			}
		}
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "len":
			message = fmt.Sprintf("%s must be exactly %s characters", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "alphanum":
			message = fmt.Sprintf("%s must contain only letters and digits", err.Field())
		case "datekey":
			message = fmt.Sprintf("%s must be a calendar date in YYYY-MM-DD format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
