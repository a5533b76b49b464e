package get_doctor

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
)

const msgDoctorNotFound = "doctor not found"

type Handler struct {
	directory DoctorDirectory
	logger    Logger
}

func NewHandler(directory DoctorDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	doctor, ok := h.directory.FindByID(doctorID)
	if !ok {
		h.logger.Warn("GET /doctors/{id} - Doctor not found: doctor_id=%s", doctorID)
		handlers.RespondNotFound(w, msgDoctorNotFound)
		return
	}

	h.logger.Info("GET /doctors/{id} - Doctor retrieved: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDoctor(doctor))
}
