package get_availability

// Request модель запроса доступности врача
type Request struct {
	DoctorID string // ID врача
	Date     string // Дата для получения слотов (опционально, YYYY-MM-DD)
}

// Response модель ответа с доступными датами и слотами
type Response struct {
	DoctorID string   // ID врача
	Dates    []string // Даты не раньше сегодняшней, по возрастанию
	Date     string   // Запрошенная дата (пусто, если не указана)
	Slots    []string // Слоты на запрошенную дату
	Offered  bool     // Врач объявил запрошенную дату (даже с пустым списком слотов)
}
