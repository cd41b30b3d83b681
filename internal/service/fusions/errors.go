package fusions

import "errors"

var (
	// ErrFusionNotFound возвращается, когда объединение не найдено
	ErrFusionNotFound = errors.New("fusion not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
