package domain

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a committed booking.
// Appointments are append-only: never mutated or removed after creation.
type Appointment struct {
	ID          string
	DoctorID    string
	PatientName string
	Email       string
	Date        string // YYYY-MM-DD
	Time        string // e.g. "09:00"
	Status      AppointmentStatus
}

// FormField identifies a field of the booking form
type FormField string

const (
	FieldPatientName FormField = "patientName"
	FieldEmail       FormField = "email"
	FieldDate        FormField = "date"
	FieldTime        FormField = "time"
)

// AppointmentForm is transient user input collected during booking
type AppointmentForm struct {
	PatientName string
	Email       string
	Date        string
	Time        string
}

// Set updates the given field, returns false for unknown fields
func (f *AppointmentForm) Set(field FormField, value string) bool {
	switch field {
	case FieldPatientName:
		f.PatientName = value
	case FieldEmail:
		f.Email = value
	case FieldDate:
		f.Date = value
	case FieldTime:
		f.Time = value
	default:
		return false
	}
	return true
}

// FormErrors holds per-field validation messages.
// Only failing fields are present.
type FormErrors map[FormField]string

// HasErrors returns true if at least one field failed validation
func (e FormErrors) HasErrors() bool {
	return len(e) > 0
}

// Clone returns an independent copy of the map
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
