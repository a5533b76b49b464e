package catalog

import "errors"

var (
	// ErrReadSource возвращается, когда источник каталога недоступен
	ErrReadSource = errors.New("catalog: failed to read source")

	// ErrDecode возвращается при ошибке разбора файла каталога
	ErrDecode = errors.New("catalog: failed to decode")

	// ErrInvalidCatalog возвращается, когда данные каталога некорректны
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
