package aggregate_occupancy

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда явно запрошенное помещение не найдено
	ErrSpaceNotFound = errors.New("aggregate_occupancy: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("aggregate_occupancy: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("aggregate_occupancy: internal error")
)
