package unavailability

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/dbmetrics"
	"github.com/artizaho/workshop-booking/pkg/psqlbuilder"
)

const table = "unavailability_periods"

var columns = []string{
	"id",
	"artisan_id",
	"kind",
	"start_date",
	"end_date",
	"reason",
	"status",
	"admin_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий периодов недоступности мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет период. Пустой ID генерируется здесь
func (r *Repository) Create(ctx context.Context, period *domain.UnavailabilityPeriod) (*domain.UnavailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if period.ID == uuid.Nil {
		period.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "artisan_id", "kind", "start_date", "end_date", "reason", "status", "admin_notes").
		Values(
			period.ID,
			period.ArtisanID,
			period.Kind,
			domain.DateOf(period.StartDate),
			endDateValue(period),
			period.Reason,
			period.Status,
			period.AdminNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return period, nil
}

// List получает периоды мастера в порядке вставки
// Порядок важен: причина блокировки берется из первого подходящего периода
func (r *Repository) List(ctx context.Context, filter domain.UnavailabilityFilter) ([]domain.UnavailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"artisan_id": filter.ArtisanID})

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Период без даты окончания покрывает только день начала
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"COALESCE(end_date, start_date)": domain.DateOf(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": domain.DateOf(*filter.To)})
	}

	query, args, err := selectBuilder.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.UnavailabilityPeriod, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		periods = append(periods, *period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// UpdateStatus меняет статус модерации периода
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PeriodStatus, adminNotes *string) (*domain.UnavailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("admin_notes", adminNotes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	period, err := scanPeriod(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return period, nil
}

// Delete удаляет период мастера
// artisanID проверяется в запросе, чтобы мастер не мог удалить чужой период
func (r *Repository) Delete(ctx context.Context, artisanID int64, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "artisan_id": artisanID}).
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
		return ErrPeriodNotFound
	}

	return nil
}

func endDateValue(period *domain.UnavailabilityPeriod) interface{} {
	if period.Kind != domain.PeriodRange || period.EndDate == nil {
		return nil
	}
	return domain.DateOf(*period.EndDate)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPeriod(row rowScanner) (*domain.UnavailabilityPeriod, error) {
	var period domain.UnavailabilityPeriod
	var endDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&period.ID,
		&period.ArtisanID,
		&period.Kind,
		&period.StartDate,
		&endDate,
		&period.Reason,
		&period.Status,
		&period.AdminNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		end := endDate.Time
		period.EndDate = &end
	}
	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return &period, nil
}
