package fusion

import "errors"

var (
	// ErrFusionNotFound возвращается, когда объединение не найдено
	ErrFusionNotFound = errors.New("fusion.repository: fusion not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fusion.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fusion.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fusion.repository: failed to scan row")
)
