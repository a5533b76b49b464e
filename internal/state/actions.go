package state

import "github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"

// Action переход состояния. Реализации есть только в этом пакете:
// SetSearchTerm, AddAppointment, SetDoctors.
type Action interface {
	apply(s State) State
}

// SetSearchTerm заменяет текущий поисковый запрос
type SetSearchTerm struct {
	Term string
}

func (a SetSearchTerm) apply(s State) State {
	s.SearchTerm = a.Term
	return s
}

// AddAppointment добавляет бронирование в конец списка
type AddAppointment struct {
	Appointment domain.Appointment
}

func (a AddAppointment) apply(s State) State {
	// Всегда новый срез: старые снимки состояния не должны меняться
	appointments := make([]domain.Appointment, len(s.Appointments), len(s.Appointments)+1)
	copy(appointments, s.Appointments)
	s.Appointments = append(appointments, a.Appointment)
	return s
}

// SetDoctors заменяет каталог врачей
type SetDoctors struct {
	Doctors []domain.Doctor
}

func (a SetDoctors) apply(s State) State {
	s.Doctors = cloneDoctors(a.Doctors)
	return s
}

// Reduce чистая функция (oldState, action) -> newState.
// nil action возвращает состояние без изменений.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func cloneDoctors(doctors []domain.Doctor) []domain.Doctor {
	out := make([]domain.Doctor, len(doctors))
	for i, d := range doctors {
		out[i] = d.Clone()
	}
	return out
}
