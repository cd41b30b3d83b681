package approve_loan_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("approve_loan_request: request not found")

	// ErrInvalidStateTransition возвращается при попытке одобрить заявку
	// не в статусе pending, в том числе при проигрыше гонки двух решений
	ErrInvalidStateTransition = errors.New("approve_loan_request: request is not pending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_loan_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_loan_request: internal error")
)
