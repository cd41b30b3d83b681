package submit_loan_request

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено
	ErrSpaceNotFound = errors.New("submit_loan_request: space not found")

	// ErrInvalidInterval возвращается при некорректном временном окне (start >= end)
	ErrInvalidInterval = errors.New("submit_loan_request: invalid time window")

	// ErrDateInPast возвращается, когда дата заявки уже прошла
	ErrDateInPast = errors.New("submit_loan_request: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_loan_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_loan_request: internal error")
)
