package update_booking_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownField       = "unknown form field"
	msgFlowNotFound       = "booking flow not found"
	msgNotEditing         = "booking has already been submitted"
	msgFlowClosed         = "booking flow is closed"
)

type Handler struct {
	useCase UpdateFieldUseCase
	logger  Logger
}

func NewHandler(useCase UpdateFieldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{flowId}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/form - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.useCase.UpdateField(r.Context(), flowID, domain.FormField(req.Field), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUnknownField):
			h.logger.Warn("PATCH /bookings/{id}/form - Unknown field: flow_id=%s, field=%s", flowID, req.Field)
			handlers.RespondBadRequest(w, msgUnknownField)

		case errors.Is(err, createBooking.ErrFlowNotFound):
			h.logger.Warn("PATCH /bookings/{id}/form - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, createBooking.ErrNotEditing):
			h.logger.Warn("PATCH /bookings/{id}/form - Flow not editable: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgNotEditing)

		case errors.Is(err, createBooking.ErrFlowClosed):
			h.logger.Warn("PATCH /bookings/{id}/form - Flow closed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgFlowClosed)

		default:
			h.logger.Error("PATCH /bookings/{id}/form - Failed to update form: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/form - Field updated: flow_id=%s, field=%s", flowID, req.Field)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFlowSnapshot(*snap))
}
