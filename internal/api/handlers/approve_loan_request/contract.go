package approve_loan_request

import (
	"context"

	approveLoanRequest "github.com/m04kA/USM-SpaceService/internal/usecase/approve_loan_request"
)

type ApproveLoanRequestUseCase interface {
	Execute(ctx context.Context, req *approveLoanRequest.Request) (*approveLoanRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
