package create_booking

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден в каталоге
	ErrDoctorNotFound = errors.New("create_booking: doctor not found")

	// ErrFlowNotFound возвращается, когда процесс бронирования не найден
	ErrFlowNotFound = errors.New("create_booking: booking flow not found")

	// ErrNotEditing возвращается при попытке изменить форму вне состояния editing
	ErrNotEditing = errors.New("create_booking: booking flow is not in editing state")

	// ErrFlowClosed возвращается при обращении к закрытому процессу бронирования
	ErrFlowClosed = errors.New("create_booking: booking flow is closed")

	// ErrUnknownField возвращается для неизвестного поля формы
	ErrUnknownField = errors.New("create_booking: unknown form field")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")
)
