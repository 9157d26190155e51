package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"pawbook/internal/availability/service"
	apperrors "pawbook/pkg/errors"
	httputil "pawbook/pkg/http"
	"pawbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityHandler struct {
	service            service.AvailabilityService
	log                *logger.Logger
	defaultDurationMin int
	defaultBufferMin   int
}

func NewAvailabilityHandler(service service.AvailabilityService, log *logger.Logger, defaultDurationMin, defaultBufferMin int) *AvailabilityHandler {
	return &AvailabilityHandler{
		service:            service,
		log:                log,
		defaultDurationMin: defaultDurationMin,
		defaultBufferMin:   defaultBufferMin,
	}
}

func (h *AvailabilityHandler) GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dateKey := ps.ByName("date")

	summary, err := h.service.DaySummary(r.Context(), dateKey)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDay", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, summary); err != nil {
		h.log.Error("failed to write success response", "handler", "GetDay", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dateKey := ps.ByName("date")
	query := r.URL.Query()

	durationMin := h.defaultDurationMin
	if durationStr := query.Get("duration"); durationStr != "" {
		var err error
		durationMin, err = strconv.Atoi(durationStr)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid duration parameter: %s", durationStr))); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "GetSlots", "operation", "WriteError", "error", writeErr)
			}
			return
		}
	}

	bufferMin := h.defaultBufferMin
	if bufferStr := query.Get("buffer"); bufferStr != "" {
		var err error
		bufferMin, err = strconv.Atoi(bufferStr)
		if err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput(fmt.Sprintf("invalid buffer parameter: %s", bufferStr))); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "GetSlots", "operation", "WriteError", "error", writeErr)
			}
			return
		}
	}

	slots, err := h.service.OfferedSlots(r.Context(), dateKey, durationMin, bufferMin)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetSlots", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, slots); err != nil {
		h.log.Error("failed to write success response", "handler", "GetSlots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability/:date", h.GetDay)
	router.GET("/api/v1/availability/:date/slots", h.GetSlots)
}
