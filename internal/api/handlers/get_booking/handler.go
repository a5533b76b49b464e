package get_booking

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

// Handle GET /api/v1/bookings/{flowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	snap, err := h.flows.Get(r.Context(), flowID)
	if err != nil {
		if errors.Is(err, createBooking.ErrFlowNotFound) {
			h.logger.Warn("GET /bookings/{id} - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get flow: flow_id=%s, error=%v", flowID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id} - Flow retrieved: flow_id=%s, state=%s", flowID, snap.State)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFlowSnapshot(*snap))
}
