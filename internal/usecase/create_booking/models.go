package create_booking

import "github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"

// FlowState состояние процесса бронирования
type FlowState string

const (
	FlowEditing    FlowState = "editing"
	FlowSubmitting FlowState = "submitting"
	FlowConfirmed  FlowState = "confirmed"
)

// FlowSnapshot снимок процесса бронирования для чтения
type FlowSnapshot struct {
	ID          string
	DoctorID    string
	State       FlowState
	Form        domain.AppointmentForm
	Errors      domain.FormErrors   // Ошибки последней отправки
	Appointment *domain.Appointment // Заполнено в состоянии confirmed
	Closed      bool
}

// Request модель запроса на бронирование
type Request struct {
	DoctorID string                 // ID врача
	Form     domain.AppointmentForm // Данные формы
}

// Response модель ответа после отправки формы
type Response struct {
	Flow   FlowSnapshot      // Процесс после отправки
	Errors domain.FormErrors // Пусто, если форма прошла валидацию
}
