package submit_loan_request

import (
	"context"

	submitLoanRequest "github.com/m04kA/USM-SpaceService/internal/usecase/submit_loan_request"
)

type SubmitLoanRequestUseCase interface {
	Execute(ctx context.Context, req *submitLoanRequest.Request) (*submitLoanRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
