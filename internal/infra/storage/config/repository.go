package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/dbmetrics"
	"github.com/artizaho/workshop-booking/pkg/psqlbuilder"
	"github.com/artizaho/workshop-booking/pkg/types"
)

const (
	table = "workshop_slots_config"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"artisan_id",
	"workshop_id",
	"slot_times",
	"min_participants",
	"max_participants",
	"non_operating_weekdays",
	"almost_full_threshold",
	"advance_booking_days",
	"min_notice_business_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией слотов мастерских
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую конфигурацию слотов
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, config *domain.WorkshopSlotsConfig) (*domain.WorkshopSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"artisan_id",
			"workshop_id",
			"slot_times",
			"min_participants",
			"max_participants",
			"non_operating_weekdays",
			"almost_full_threshold",
			"advance_booking_days",
			"min_notice_business_days",
		).
		Values(
			config.ArtisanID,
			config.WorkshopID,
			slotTimesArray(config.SlotTimes),
			config.MinParticipants,
			config.MaxParticipants,
			weekdaysArray(config.NonOperatingWeekdays),
			config.AlmostFullThreshold,
			config.AdvanceBookingDays,
			config.MinNoticeBusinessDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateConfig
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByArtisanAndWorkshop получает конфигурацию конкретного уровня:
// workshopID задан - конфигурация мастерской, nil - общая конфигурация мастера
func (r *Repository) GetByArtisanAndWorkshop(ctx context.Context, artisanID int64, workshopID *int64) (*domain.WorkshopSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"artisan_id": artisanID})

	// Фильтрация по workshop_id (NULL или конкретное значение)
	if workshopID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"workshop_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"workshop_id": *workshopID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByArtisanAndWorkshop - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByArtisanAndWorkshop - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Приоритет применения конфигурации:
// 1. Конфигурация конкретной мастерской (artisanID, workshopID)
// 2. Общая конфигурация мастера (artisanID, NULL)
//
// Платформенные значения по умолчанию применяются уровнем выше (сервис),
// здесь при отсутствии обеих записей возвращается ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, artisanID int64, workshopID int64) (*domain.WorkshopSlotsConfig, error) {
	// 1. Конфигурация мастерской
	config, err := r.GetByArtisanAndWorkshop(ctx, artisanID, &workshopID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (workshop): %v", ErrExecQuery, err)
	}

	// 2. Общая конфигурация мастера
	config, err = r.GetByArtisanAndWorkshop(ctx, artisanID, nil)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (artisan): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// GetAllByArtisan получает все конфигурации мастера (общую и по мастерским)
func (r *Repository) GetAllByArtisan(ctx context.Context, artisanID int64) ([]*domain.WorkshopSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"artisan_id": artisanID}).
		OrderBy("workshop_id ASC NULLS FIRST"). // Общая конфигурация первой
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByArtisan - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByArtisan - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.WorkshopSlotsConfig, 0)
	for rows.Next() {
		config, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByArtisan - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByArtisan - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Update обновляет конфигурацию слотов
func (r *Repository) Update(ctx context.Context, id int64, config *domain.WorkshopSlotsConfig) (*domain.WorkshopSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("slot_times", slotTimesArray(config.SlotTimes)).
		Set("min_participants", config.MinParticipants).
		Set("max_participants", config.MaxParticipants).
		Set("non_operating_weekdays", weekdaysArray(config.NonOperatingWeekdays)).
		Set("almost_full_threshold", config.AlmostFullThreshold).
		Set("advance_booking_days", config.AdvanceBookingDays).
		Set("min_notice_business_days", config.MinNoticeBusinessDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	config.ID = id
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// Delete удаляет конфигурацию слотов
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
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
		return ErrConfigNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanConfig сканирует строку в порядке columns
func scanConfig(row rowScanner) (*domain.WorkshopSlotsConfig, error) {
	var config domain.WorkshopSlotsConfig
	var workshopID sql.NullInt64
	var slotTimes pq.StringArray
	var weekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.ArtisanID,
		&workshopID,
		&slotTimes,
		&config.MinParticipants,
		&config.MaxParticipants,
		&weekdays,
		&config.AlmostFullThreshold,
		&config.AdvanceBookingDays,
		&config.MinNoticeBusinessDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if workshopID.Valid {
		id := workshopID.Int64
		config.WorkshopID = &id
	}

	config.SlotTimes = make([]types.TimeString, len(slotTimes))
	for i, s := range slotTimes {
		config.SlotTimes[i] = types.TimeString(s)
	}

	config.NonOperatingWeekdays = make([]time.Weekday, len(weekdays))
	for i, wd := range weekdays {
		config.NonOperatingWeekdays[i] = time.Weekday(wd)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

func slotTimesArray(slots []types.TimeString) pq.StringArray {
	arr := make(pq.StringArray, len(slots))
	for i, s := range slots {
		arr[i] = s.String()
	}
	return arr
}

func weekdaysArray(weekdays []time.Weekday) pq.Int64Array {
	arr := make(pq.Int64Array, len(weekdays))
	for i, wd := range weekdays {
		arr[i] = int64(wd)
	}
	return arr
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
