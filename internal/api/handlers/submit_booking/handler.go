package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgFlowNotFound       = "booking flow not found"
	msgNotEditing         = "booking has already been submitted"
	msgFlowClosed         = "booking flow is closed"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{flowId}/submit
// Тело с формой заменяет форму процесса. Без тела отправляется форма,
// накопленная через PATCH /bookings/{flowId}/form.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var (
		req    handlers.FormRequest
		result *createBooking.Response
	)
	err := handlers.DecodeJSON(r, &req)
	switch {
	case errors.Is(err, handlers.ErrEmptyBody):
		result, err = h.useCase.SubmitCurrent(r.Context(), flowID)

	case err != nil:
		h.logger.Warn("POST /bookings/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return

	default:
		result, err = h.useCase.Submit(r.Context(), flowID, &createBooking.Request{Form: req.ToForm()})
	}
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrFlowNotFound):
			h.logger.Warn("POST /bookings/{id}/submit - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, createBooking.ErrNotEditing):
			h.logger.Warn("POST /bookings/{id}/submit - Flow not editable: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgNotEditing)

		case errors.Is(err, createBooking.ErrFlowClosed):
			h.logger.Warn("POST /bookings/{id}/submit - Flow closed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgFlowClosed)

		default:
			h.logger.Error("POST /bookings/{id}/submit - Failed to submit booking: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := handlers.FromFlowSnapshot(result.Flow)

	if result.Errors.HasErrors() {
		h.logger.Warn("POST /bookings/{id}/submit - Form rejected: flow_id=%s, fields=%d", flowID, len(result.Errors))
		handlers.RespondUnprocessable(w, response)
		return
	}

	h.logger.Info("POST /bookings/{id}/submit - Booking submitted: flow_id=%s", flowID)
	handlers.RespondJSON(w, http.StatusAccepted, response)
}
