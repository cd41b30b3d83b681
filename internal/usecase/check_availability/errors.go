package check_availability

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("check_availability: space not found")

	// ErrInvalidInterval возвращается при некорректном временном окне (start >= end)
	ErrInvalidInterval = errors.New("check_availability: invalid time window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
