package get_loan_request

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
)

type LoanService interface {
	GetByID(ctx context.Context, id int64) (*models.LoanRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
