package list_loan_requests

import (
	"context"

	"github.com/m04kA/USM-SpaceService/internal/service/loans/models"
)

type LoanService interface {
	List(ctx context.Context, req *models.ListLoanRequestsRequest) (*models.LoanRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
