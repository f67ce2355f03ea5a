package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	"github.com/Nackalalalong/KK-BackEnd/pkg/dbmetrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/psqlbuilder"
)

// Repository репозиторий расписаний (битовых масок занятости)
// Ключ расписания: (resource_kind, resource_id, court_number, day_of_week)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var scheduleColumns = []string{
	"id",
	"resource_kind",
	"resource_id",
	"court_number",
	"day_of_week",
	"status",
	"last_update",
}

// GetOrCreate идемпотентно получает расписание по ключу, создавая пустую
// запись при первом обращении.
//
// Внутри транзакции строка блокируется через SELECT ... FOR UPDATE, чтобы
// последовательность rollover -> check -> reserve была атомарной по отношению
// к конкурентным бронированиям того же корта.
func (r *Repository) GetOrCreate(ctx context.Context, kind domain.ResourceKind, resourceID int64, instance int, weekday domain.Weekday) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertQuery, insertArgs, err := psqlbuilder.Insert("schedules").
		Columns("resource_kind", "resource_id", "court_number", "day_of_week", "status", "last_update").
		Values(kind, resourceID, instance, int(weekday), 0, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (resource_kind, resource_id, court_number, day_of_week) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{
			"resource_kind": kind,
			"resource_id":   resourceID,
			"court_number":  instance,
			"day_of_week":   int(weekday),
		})

	// Блокируем строку на время транзакции бронирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSchedule(executor.QueryRowContext(ctx, query, args...))
}

// GetAllForResource возвращает все существующие расписания ресурса на день недели
// Используется для запросов доступности; строки не блокируются
func (r *Repository) GetAllForResource(ctx context.Context, kind domain.ResourceKind, resourceID int64, weekday domain.Weekday) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{
			"resource_kind": kind,
			"resource_id":   resourceID,
			"day_of_week":   int(weekday),
		}).
		OrderBy("court_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllForResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllForResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		s, err := r.scanScheduleRow(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllForResource - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// Save сохраняет битовую маску и время последнего обновления расписания
func (r *Repository) Save(ctx context.Context, s *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("status", int64(s.Status)).
		Set("last_update", s.LastUpdate).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSchedule(row *sql.Row) (*domain.Schedule, error) {
	s, err := scanInto(row)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanSchedule - scan row: %v", ErrScanRow, err)
	}
	return s, nil
}

func (r *Repository) scanScheduleRow(rows *sql.Rows) (*domain.Schedule, error) {
	s, err := scanInto(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: scanScheduleRow - scan row: %v", ErrScanRow, err)
	}
	return s, nil
}

func scanInto(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var weekday int
	var status int64

	err := row.Scan(
		&s.ID,
		&s.ResourceKind,
		&s.ResourceID,
		&s.InstanceNumber,
		&weekday,
		&status,
		&s.LastUpdate,
	)
	if err != nil {
		return nil, err
	}

	s.Weekday = domain.Weekday(weekday)
	s.Status = uint64(status)
	return &s, nil
}
