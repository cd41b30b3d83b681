package loan

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/USM-SpaceService/internal/domain"
	"github.com/m04kA/USM-SpaceService/pkg/dbmetrics"
	"github.com/m04kA/USM-SpaceService/pkg/psqlbuilder"
)

const loanRequestColumns = "id, requester_name, requester_contact, space_id, loan_date, " +
	"start_time, end_time, event_type, expected_attendance, resources, status, " +
	"admin_comment, submitted_at, decided_at"

// Repository репозиторий для работы с заявками на аренду помещений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку со статусом pending
func (r *Repository) Create(ctx context.Context, request *domain.LoanRequest) (*domain.LoanRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loan_requests").
		Columns(
			"requester_name",
			"requester_contact",
			"space_id",
			"loan_date",
			"start_time",
			"end_time",
			"event_type",
			"expected_attendance",
			"resources",
			"status",
		).
		Values(
			request.RequesterName,
			request.RequesterContact,
			request.SpaceID,
			request.Date,
			request.StartTime,
			request.EndTime,
			request.EventType,
			request.ExpectedAttendance,
			pq.Array(request.Resources),
			domain.LoanStatusPending,
		).
		Suffix("RETURNING id, submitted_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var submittedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&submittedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	request.Status = domain.LoanStatusPending
	request.SubmittedAt = submittedAt.Time

	return request, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.LoanRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(loanRequestColumns).
		From("loan_requests").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: approve/reject выполняют
	// read-check-write и ровно один переход должен победить
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	request, err := scanLoanRequest(row)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return request, nil
}

// List получает заявки с фильтрацией по помещению, статусу и периоду
func (r *Repository) List(ctx context.Context, filter domain.LoanRequestsFilter) ([]*domain.LoanRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(loanRequestColumns).
		From("loan_requests")

	if filter.SpaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *filter.SpaceID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"loan_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"loan_date": *filter.EndDate})
	}

	selectBuilder = selectBuilder.OrderBy("submitted_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.LoanRequest, 0)
	for rows.Next() {
		request, err := scanLoanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan request: %v", ErrScanRow, err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// Decide переводит заявку из pending в терминальный статус
// Условие status = pending в WHERE работает как compare-and-swap:
// при гонке двух решений побеждает ровно одно, второе получает ErrNotPending
func (r *Repository) Decide(ctx context.Context, id int64, status domain.LoanStatus, comment *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("loan_requests").
		Set("status", status).
		Set("admin_comment", comment).
		Set("decided_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.LoanStatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Decide - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Decide - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Decide - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLoanRequest(row rowScanner) (*domain.LoanRequest, error) {
	var request domain.LoanRequest
	var resources pq.StringArray
	var submittedAt, decidedAt sql.NullTime

	err := row.Scan(
		&request.ID,
		&request.RequesterName,
		&request.RequesterContact,
		&request.SpaceID,
		&request.Date,
		&request.StartTime,
		&request.EndTime,
		&request.EventType,
		&request.ExpectedAttendance,
		&resources,
		&request.Status,
		&request.AdminComment,
		&submittedAt,
		&decidedAt,
	)
	if err != nil {
		return nil, err
	}

	request.Resources = []string(resources)
	request.SubmittedAt = submittedAt.Time
	if decidedAt.Valid {
		request.DecidedAt = &decidedAt.Time
	}

	return &request, nil
}
