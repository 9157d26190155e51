package handler

import (
	"encoding/json"
	"net/http"

	"pawbook/internal/bookings/service"
	apperrors "pawbook/pkg/errors"
	httputil "pawbook/pkg/http"
	"pawbook/pkg/logger"
	"pawbook/pkg/model"
	"pawbook/pkg/sealer"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	sealer  *sealer.Sealer
	log     *logger.Logger
}

// confirmationResponse is the booking record plus the shareable receipt
// token. The token is absent when no sealer key is configured.
type confirmationResponse struct {
	*model.BookingRecord
	ReceiptToken string `json:"receipt_token,omitempty"`
}

func NewBookingHandler(service service.BookingService, sealer *sealer.Sealer, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		sealer:  sealer,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.BookingRecord
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Commit(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	response := confirmationResponse{BookingRecord: &booking}
	if h.sealer != nil {
		token, err := h.sealer.CreateReceiptToken(booking.ReferenceCode, booking.Date)
		if err != nil {
			// booking is already committed; the receipt link is a nicety
			h.log.Warn("failed to mint receipt token", "reference_code", booking.ReferenceCode, "error", err)
		} else {
			response.ReceiptToken = token
		}
	}

	if err := httputil.WriteCreated(w, response); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reference := ps.ByName("reference")

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByReference", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByReference", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetByDate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("The 'date' query parameter is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByDate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByDate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookings, total, err := h.service.GetByDate(r.Context(), dateKey, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByDate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetByDate", "operation", "WritePaginated", "error", err)
	}
}

// GetReceipt resolves a sealed receipt token back to its booking.
func (h *BookingHandler) GetReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if h.sealer == nil {
		if writeErr := httputil.WriteError(w, apperrors.NotFound("Receipt")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetReceipt", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	reference, _, err := h.sealer.ParseReceiptToken(ps.ByName("token"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid receipt token")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetReceipt", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetReceipt", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetReceipt", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.GetByDate)
	router.GET("/api/v1/bookings/reference/:reference", h.GetByReference)
	router.GET("/api/v1/receipts/:token", h.GetReceipt)
}
