package domain

// DateFormat формат дат расписания, YYYY-MM-DD
const DateFormat = "2006-01-02"

// Booking defaults
const (
	DefaultSubmitLatencyMs = 1000 // имитация удалённого вызова
	DefaultFlowTTLSeconds  = 900
	MinRating              = 0.0
	MaxRating              = 5.0
)

// Validation messages shown next to the form fields
const (
	MsgPatientNameRequired = "Patient name is required"
	MsgEmailRequired       = "Email is required"
	MsgEmailInvalid        = "Please enter a valid email address"
	MsgDateRequired        = "Please select a date"
	MsgTimeRequired        = "Please select a time slot"
)
