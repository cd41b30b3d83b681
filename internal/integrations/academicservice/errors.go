package academicservice

import "errors"

var (
	// ErrGroupNotFound возвращается, когда хотя бы одна из запрошенных групп не найдена
	ErrGroupNotFound = errors.New("group not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("academicservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("academicservice client: invalid response")
)
