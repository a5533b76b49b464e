package list_appointments

import (
	"net/http"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
)

type Handler struct {
	store  StateReader
	logger Logger
}

func NewHandler(store StateReader, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: doctorId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get("doctorId")

	appointments := h.store.State().Appointments
	result := make([]handlers.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if doctorID != "" && a.DoctorID != doctorID {
			continue
		}
		result = append(result, handlers.FromAppointment(a))
	}

	h.logger.Info("GET /appointments - Appointments listed: doctor_id=%q, count=%d", doctorID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
