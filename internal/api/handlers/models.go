package handlers

import (
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	createBooking "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
)

// DoctorResponse HTTP модель врача
type DoctorResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Specialization     string             `json:"specialization"`
	ProfileImage       string             `json:"profileImage"`
	AvailabilityStatus string             `json:"availabilityStatus"`
	AvailableToday     bool               `json:"availableToday"`
	Experience         string             `json:"experience"`
	Rating             float64            `json:"rating"`
	Location           string             `json:"location"`
	About              string             `json:"about"`
	Availability       []TimeSlotResponse `json:"availability"`
}

// TimeSlotResponse HTTP модель дня приема
type TimeSlotResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// AppointmentResponse HTTP модель записи на прием
type AppointmentResponse struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctorId"`
	PatientName string `json:"patientName"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

// FormRequest HTTP модель формы бронирования
type FormRequest struct {
	PatientName string `json:"patientName"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// FlowResponse HTTP модель процесса бронирования
type FlowResponse struct {
	ID          string               `json:"id"`
	DoctorID    string               `json:"doctorId"`
	State       string               `json:"state"`
	Form        FormRequest          `json:"form"`
	Errors      map[string]string    `json:"errors"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
	Closed      bool                 `json:"closed"`
}

// ToForm конвертирует HTTP форму в доменную
func (r FormRequest) ToForm() domain.AppointmentForm {
	return domain.AppointmentForm{
		PatientName: r.PatientName,
		Email:       r.Email,
		Date:        r.Date,
		Time:        r.Time,
	}
}

func FromDoctor(d domain.Doctor) DoctorResponse {
	availability := make([]TimeSlotResponse, len(d.Availability))
	for i, ts := range d.Availability {
		slots := make([]string, len(ts.Slots))
		copy(slots, ts.Slots)
		availability[i] = TimeSlotResponse{Date: ts.Date, Slots: slots}
	}

	return DoctorResponse{
		ID:                 d.ID,
		Name:               d.Name,
		Specialization:     d.Specialization,
		ProfileImage:       d.ProfileImage,
		AvailabilityStatus: string(d.AvailabilityStatus),
		AvailableToday:     d.IsAvailableToday(),
		Experience:         d.Experience,
		Rating:             d.Rating,
		Location:           d.Location,
		About:              d.About,
		Availability:       availability,
	}
}

func FromDoctors(doctors []domain.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = FromDoctor(d)
	}
	return out
}

func FromAppointment(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		DoctorID:    a.DoctorID,
		PatientName: a.PatientName,
		Email:       a.Email,
		Date:        a.Date,
		Time:        a.Time,
		Status:      string(a.Status),
	}
}

func FromAppointments(appointments []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = FromAppointment(a)
	}
	return out
}

// FromErrors конвертирует ошибки формы; всегда возвращает не-nil карту
func FromErrors(errs domain.FormErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, msg := range errs {
		out[string(field)] = msg
	}
	return out
}

// FromFlowSnapshot конвертирует снимок процесса бронирования
func FromFlowSnapshot(snap createBooking.FlowSnapshot) FlowResponse {
	resp := FlowResponse{
		ID:       snap.ID,
		DoctorID: snap.DoctorID,
		State:    string(snap.State),
		Form: FormRequest{
			PatientName: snap.Form.PatientName,
			Email:       snap.Form.Email,
			Date:        snap.Form.Date,
			Time:        snap.Form.Time,
		},
		Errors: FromErrors(snap.Errors),
		Closed: snap.Closed,
	}
	if snap.Appointment != nil {
		a := FromAppointment(*snap.Appointment)
		resp.Appointment = &a
	}
	return resp
}
