package customrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/dbmetrics"
	"github.com/artizaho/workshop-booking/pkg/psqlbuilder"
)

const table = "custom_booking_requests"

var columns = []string{
	"id",
	"workshop_id",
	"user_id",
	"preferred_date",
	"preferred_time",
	"alternative_date",
	"alternative_time",
	"participants",
	"is_private",
	"estimated_price",
	"special_requirements",
	"contact_email",
	"contact_phone",
	"message",
	"has_conflict",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на бронирование вне слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку. Пустой ID генерируется здесь
func (r *Repository) Create(ctx context.Context, req *domain.CustomBookingRequest) (*domain.CustomBookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	var alternativeDate interface{}
	if req.AlternativeDate != nil {
		alternativeDate = domain.DateOf(*req.AlternativeDate)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"workshop_id",
			"user_id",
			"preferred_date",
			"preferred_time",
			"alternative_date",
			"alternative_time",
			"participants",
			"is_private",
			"estimated_price",
			"special_requirements",
			"contact_email",
			"contact_phone",
			"message",
			"has_conflict",
			"status",
		).
		Values(
			req.ID,
			req.WorkshopID,
			req.UserID,
			domain.DateOf(req.PreferredDate),
			req.PreferredTime,
			alternativeDate,
			req.AlternativeTime,
			req.Participants,
			req.IsPrivate,
			req.EstimatedPrice,
			req.SpecialRequirements,
			req.ContactEmail,
			req.ContactPhone,
			req.Message,
			req.HasConflict,
			req.Status,
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

	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return req, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomBookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// ListByWorkshop получает заявки мастер-класса, старые первыми
// Опционально фильтрует по статусу
func (r *Repository) ListByWorkshop(ctx context.Context, workshopID int64, status *domain.CustomRequestStatus) ([]*domain.CustomBookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"workshop_id": workshopID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWorkshop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWorkshop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.CustomBookingRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByWorkshop - scan row: %v", ErrScanRow, err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByWorkshop - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

// UpdateStatus переводит заявку из статуса from в статус to
// Если заявка не найдена или ее статус уже не from, возвращает ErrRequestNotFound
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.CustomRequestStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// ExpirePendingBefore переводит в expired ожидающие заявки,
// у которых и желаемая, и альтернативная дата раньше today
// Возвращает количество обновленных заявок
func (r *Repository) ExpirePendingBefore(ctx context.Context, today time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.CustomRequestExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.CustomRequestPending}).
		Where(squirrel.Lt{"GREATEST(preferred_date, COALESCE(alternative_date, preferred_date))": domain.DateOf(today)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePendingBefore - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePendingBefore - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePendingBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.CustomBookingRequest, error) {
	var req domain.CustomBookingRequest
	var alternativeDate, createdAt, updatedAt sql.NullTime
	var estimatedPrice sql.NullInt64

	err := row.Scan(
		&req.ID,
		&req.WorkshopID,
		&req.UserID,
		&req.PreferredDate,
		&req.PreferredTime,
		&alternativeDate,
		&req.AlternativeTime,
		&req.Participants,
		&req.IsPrivate,
		&estimatedPrice,
		&req.SpecialRequirements,
		&req.ContactEmail,
		&req.ContactPhone,
		&req.Message,
		&req.HasConflict,
		&req.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if alternativeDate.Valid {
		d := alternativeDate.Time
		req.AlternativeDate = &d
	}
	if estimatedPrice.Valid {
		price := domain.Ariary(estimatedPrice.Int64)
		req.EstimatedPrice = &price
	}
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
