package close_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

const msgFlowNotFound = "booking flow not found"

type Handler struct {
	flows  BookingFlows
	logger Logger
}

func NewHandler(flows BookingFlows, logger Logger) *Handler {
	return &Handler{
		flows:  flows,
		logger: logger,
	}
}

// Handle DELETE /api/v1/bookings/{flowId}
// Закрывает процесс; отложенное бронирование после этого не создается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	if err := h.flows.Close(r.Context(), flowID); err != nil {
		if errors.Is(err, createBooking.ErrFlowNotFound) {
			h.logger.Warn("DELETE /bookings/{id} - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/{id} - Failed to close flow: flow_id=%s, error=%v", flowID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Flow closed: flow_id=%s", flowID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
