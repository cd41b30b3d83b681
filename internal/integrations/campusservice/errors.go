package campusservice

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("campusservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("campusservice client: invalid response")
)
