package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	"github.com/Nackalalalong/KK-BackEnd/pkg/dbmetrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/psqlbuilder"
)

// Repository репозиторий журнала бронирований
// Дочерние записи (ракетки, воланы) ссылаются на родительское бронирование
// корта через parent_id и отменяются каскадно вместе с ним
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"user_id",
	"court_id",
	"kind",
	"rental_id",
	"parent_id",
	"court_number",
	"day_of_week",
	"start_unit",
	"end_unit",
	"item_count",
	"price",
	"booked_at",
}

// Create создает запись бронирования
// BookedAt записывается из переданной модели: момент бронирования задает
// use case тем же источником времени, что и rollover расписаний
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"court_id",
			"kind",
			"rental_id",
			"parent_id",
			"court_number",
			"day_of_week",
			"start_unit",
			"end_unit",
			"item_count",
			"price",
			"booked_at",
		).
		Values(
			b.UserID,
			b.CourtID,
			b.Kind,
			b.RentalID,
			b.ParentID,
			b.CourtNumber,
			int(b.Weekday),
			b.StartUnit,
			b.EndUnit,
			b.Count,
			b.Price,
			b.BookedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции отмены блокируем запись от конкурентной отмены
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByUserID получает историю бронирований пользователя
// Опционально фильтрует по типу записи
func (r *Repository) GetByUserID(ctx context.Context, userID int64, kind *domain.BookingKind) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booked_at DESC")

	if kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *kind})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetChildren получает дочерние бронирования (ракетки, воланы) родительского
// бронирования корта. Внутри транзакции строки блокируются FOR UPDATE.
func (r *Repository) GetChildren(ctx context.Context, parentID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"parent_id": parentID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetChildren - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetChildren - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Delete удаляет запись бронирования из журнала
// Используется только каскадной отменой; история истекших бронирований
// намеренно не удаляется
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var weekday int

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.CourtID,
		&b.Kind,
		&b.RentalID,
		&b.ParentID,
		&b.CourtNumber,
		&weekday,
		&b.StartUnit,
		&b.EndUnit,
		&b.Count,
		&b.Price,
		&b.BookedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Weekday = domain.Weekday(weekday)
	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
