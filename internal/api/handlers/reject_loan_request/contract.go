package reject_loan_request

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
)

type LoanService interface {
	Reject(ctx context.Context, id int64, req *models.RejectLoanRequest) (*models.LoanRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
