package loans

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("loan request not found")

	// ErrMissingRejectionReason возвращается при отклонении без комментария
	// Жесткий контракт, а не особенность UI: причина отклонения обязательна
	ErrMissingRejectionReason = errors.New("rejection requires a non-empty comment")

	// ErrInvalidStateTransition возвращается при попытке решить уже решенную заявку
	ErrInvalidStateTransition = errors.New("loan request is not pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
