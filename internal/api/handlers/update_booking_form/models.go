package update_booking_form

// UpdateFieldRequest HTTP request model
type UpdateFieldRequest struct {
	Field string `json:"field"` // patientName | email | date | time
	Value string `json:"value"`
}
