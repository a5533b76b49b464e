package get_availability

import getAvailability "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/get_availability"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DoctorID string   `json:"doctorId"`
	Dates    []string `json:"dates"`
	Date     string   `json:"date,omitempty"`
	Slots    []string `json:"slots"`
	Offered  bool     `json:"offered"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []string{}
	}
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	return &AvailabilityResponse{
		DoctorID: resp.DoctorID,
		Dates:    dates,
		Date:     resp.Date,
		Slots:    slots,
		Offered:  resp.Offered,
	}
}
