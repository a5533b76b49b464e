package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"
	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDoctorNotFound     = "doctor not found"
	msgInvalidRequest     = "invalid booking request"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/doctors/{doctorId}/bookings
// Открывает процесс бронирования и сразу отправляет форму.
// 202 - форма принята и бронирование в процессе, 422 - ошибки формы
// (процесс остается открытым, форму можно отправить повторно).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	var req handlers.FormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		DoctorID: doctorID,
		Form:     req.ToForm(),
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDoctorNotFound):
			h.logger.Warn("POST /doctors/{id}/bookings - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /doctors/{id}/bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /doctors/{id}/bookings - Failed to create booking: doctor_id=%s, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := handlers.FromFlowSnapshot(result.Flow)

	if result.Errors.HasErrors() {
		h.logger.Warn("POST /doctors/{id}/bookings - Form rejected: flow_id=%s, fields=%d",
			result.Flow.ID, len(result.Errors))
		handlers.RespondUnprocessable(w, response)
		return
	}

	h.logger.Info("POST /doctors/{id}/bookings - Booking submitted: flow_id=%s, doctor_id=%s",
		result.Flow.ID, doctorID)
	handlers.RespondJSON(w, http.StatusAccepted, response)
}
