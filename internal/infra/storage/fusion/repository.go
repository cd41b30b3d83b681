package fusion

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

const fusionColumns = "id, space_id, subject_id, group_ids, aggregate_headcount, " +
	"program_ids, created_at, updated_at"

// Repository репозиторий для работы с объединениями групп
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объединений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое объединение
func (r *Repository) Create(ctx context.Context, fusion *domain.Fusion) (*domain.Fusion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("fusions").
		Columns(
			"space_id",
			"subject_id",
			"group_ids",
			"aggregate_headcount",
			"program_ids",
		).
		Values(
			fusion.SpaceID,
			fusion.SubjectID,
			pq.Array(fusion.GroupIDs),
			fusion.AggregateHeadcount,
			pq.Array(fusion.ProgramIDs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&fusion.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	fusion.CreatedAt = createdAt.Time
	fusion.UpdatedAt = updatedAt.Time

	return fusion, nil
}

// GetByID получает объединение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Fusion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fusionColumns).
		From("fusions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	fusion, err := scanFusion(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFusionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan fusion: %v", ErrScanRow, err)
	}

	return fusion, nil
}

// List получает все объединения, опционально по помещению
func (r *Repository) List(ctx context.Context, spaceID *int64) ([]*domain.Fusion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(fusionColumns).
		From("fusions").
		OrderBy("created_at DESC")

	if spaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *spaceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fusions := make([]*domain.Fusion, 0)
	for rows.Next() {
		fusion, err := scanFusion(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan fusion: %v", ErrScanRow, err)
		}
		fusions = append(fusions, fusion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return fusions, nil
}

// Delete удаляет объединение
// Прямое удаление без каскадных эффектов: группы объединения не затрагиваются
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("fusions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFusionNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFusion(row rowScanner) (*domain.Fusion, error) {
	var fusion domain.Fusion
	var groupIDs, programIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&fusion.ID,
		&fusion.SpaceID,
		&fusion.SubjectID,
		&groupIDs,
		&fusion.AggregateHeadcount,
		&programIDs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	fusion.GroupIDs = []int64(groupIDs)
	fusion.ProgramIDs = []int64(programIDs)
	fusion.CreatedAt = createdAt.Time
	fusion.UpdatedAt = updatedAt.Time

	return &fusion, nil
}
