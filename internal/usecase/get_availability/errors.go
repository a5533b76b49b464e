package get_availability

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден в каталоге
	ErrDoctorNotFound = errors.New("get_availability: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)
