package domain

// AvailabilityStatus represents the headline availability of a doctor
type AvailabilityStatus string

const (
	AvailabilityAvailableToday AvailabilityStatus = "Available Today"
	AvailabilityFullyBooked    AvailabilityStatus = "Fully Booked"
	AvailabilityOnLeave        AvailabilityStatus = "On Leave"
)

// IsValid returns true if the status is one of the known values
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailableToday, AvailabilityFullyBooked, AvailabilityOnLeave:
		return true
	default:
		return false
	}
}

// Doctor represents a doctor in the catalog
type Doctor struct {
	ID                 string
	Name               string
	Specialization     string
	ProfileImage       string // URI
	AvailabilityStatus AvailabilityStatus
	Experience         string // display string, e.g. "15 years"
	Rating             float64
	Location           string
	About              string

	// Не отсортировано по дате, потребители сортируют сами
	Availability []TimeSlot
}

// TimeSlot represents one calendar day's bookable windows for a doctor
type TimeSlot struct {
	Date  string   // YYYY-MM-DD
	Slots []string // e.g. "09:00"; empty means nothing bookable that day
}

// IsAvailableToday returns true if the doctor is marked as available today
func (d *Doctor) IsAvailableToday() bool {
	return d.AvailabilityStatus == AvailabilityAvailableToday
}

// Clone returns a deep copy; the availability slices are not shared
func (d Doctor) Clone() Doctor {
	availability := make([]TimeSlot, len(d.Availability))
	for i, ts := range d.Availability {
		slots := make([]string, len(ts.Slots))
		copy(slots, ts.Slots)
		availability[i] = TimeSlot{Date: ts.Date, Slots: slots}
	}
	d.Availability = availability
	return d
}
