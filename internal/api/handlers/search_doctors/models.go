package search_doctors

import "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers"

// SearchDoctorsResponse HTTP response model
type SearchDoctorsResponse struct {
	Doctors []handlers.DoctorResponse `json:"doctors"`
	Count   int                       `json:"count"`
}
