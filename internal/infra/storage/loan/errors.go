package loan

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("loan.repository: request not found")

	// ErrNotPending возвращается, когда переход статуса невозможен:
	// заявка уже рассмотрена или рассматривается параллельным вызовом
	ErrNotPending = errors.New("loan.repository: request is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("loan.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("loan.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("loan.repository: failed to scan row")
)
