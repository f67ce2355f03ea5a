package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	"github.com/Nackalalalong/KK-BackEnd/pkg/dbmetrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// Repository репозиторий кортов и их инвентаря (ракетки, воланы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCourt создает корт
func (r *Repository) CreateCourt(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("owner_id", "name", "description", "unit_price", "court_count", "open_unit", "close_unit", "lat", "long").
		Values(c.OwnerID, c.Name, c.Desc, c.UnitPrice, c.CourtCount, c.OpenUnit, c.CloseUnit, c.Lat, c.Long).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: CreateCourt - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetCourtByID получает корт по ID
func (r *Repository) GetCourtByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "owner_id", "name", "description", "unit_price", "court_count",
		"open_unit", "close_unit", "lat", "long", "created_at",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Court
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Desc, &c.UnitPrice, &c.CourtCount,
		&c.OpenUnit, &c.CloseUnit, &c.Lat, &c.Long, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - scan court: %v", ErrScanRow, err)
	}

	return &c, nil
}

// CreateRacket добавляет ракетку в каталог корта
func (r *Repository) CreateRacket(ctx context.Context, racket *domain.Racket) (*domain.Racket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rackets").
		Columns("court_id", "name", "unit_price").
		Values(racket.CourtID, racket.Name, racket.UnitPrice).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRacket - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&racket.ID, &racket.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: CreateRacket - execute insert: %v", ErrExecQuery, err)
	}

	return racket, nil
}

// GetRacketByID получает ракетку по ID
func (r *Repository) GetRacketByID(ctx context.Context, id int64) (*domain.Racket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "court_id", "name", "unit_price", "created_at").
		From("rackets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRacketByID - build select query: %v", ErrBuildQuery, err)
	}

	var racket domain.Racket
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&racket.ID, &racket.CourtID, &racket.Name, &racket.UnitPrice, &racket.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRacketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRacketByID - scan racket: %v", ErrScanRow, err)
	}

	return &racket, nil
}

// ListRacketsByCourt возвращает каталог ракеток корта
func (r *Repository) ListRacketsByCourt(ctx context.Context, courtID int64) ([]*domain.Racket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "court_id", "name", "unit_price", "created_at").
		From("rackets").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRacketsByCourt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRacketsByCourt - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rackets := make([]*domain.Racket, 0)
	for rows.Next() {
		var racket domain.Racket
		if err := rows.Scan(&racket.ID, &racket.CourtID, &racket.Name, &racket.UnitPrice, &racket.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListRacketsByCourt - scan row: %v", ErrScanRow, err)
		}
		rackets = append(rackets, &racket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRacketsByCourt - rows error: %v", ErrScanRow, err)
	}

	return rackets, nil
}

// CreateShuttlecock добавляет волан в каталог корта
func (r *Repository) CreateShuttlecock(ctx context.Context, s *domain.Shuttlecock) (*domain.Shuttlecock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shuttlecocks").
		Columns("court_id", "name", "count_per_unit", "count", "price").
		Values(s.CourtID, s.Name, s.CountPerUnit, s.Count, s.Price).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateShuttlecock - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: CreateShuttlecock - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetShuttlecockByID получает волан по ID
func (r *Repository) GetShuttlecockByID(ctx context.Context, id int64) (*domain.Shuttlecock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "court_id", "name", "count_per_unit", "count", "price", "created_at").
		From("shuttlecocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetShuttlecockByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Shuttlecock
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.CourtID, &s.Name, &s.CountPerUnit, &s.Count, &s.Price, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrShuttlecockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetShuttlecockByID - scan shuttlecock: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListShuttlecocksByCourt возвращает каталог воланов корта
func (r *Repository) ListShuttlecocksByCourt(ctx context.Context, courtID int64) ([]*domain.Shuttlecock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "court_id", "name", "count_per_unit", "count", "price", "created_at").
		From("shuttlecocks").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListShuttlecocksByCourt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListShuttlecocksByCourt - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shuttlecocks := make([]*domain.Shuttlecock, 0)
	for rows.Next() {
		var s domain.Shuttlecock
		if err := rows.Scan(&s.ID, &s.CourtID, &s.Name, &s.CountPerUnit, &s.Count, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListShuttlecocksByCourt - scan row: %v", ErrScanRow, err)
		}
		shuttlecocks = append(shuttlecocks, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListShuttlecocksByCourt - rows error: %v", ErrScanRow, err)
	}

	return shuttlecocks, nil
}

// DecrementShuttlecockStock атомарно списывает count воланов со склада
// Возвращает ErrOutOfStock, если на складе недостаточно
func (r *Repository) DecrementShuttlecockStock(ctx context.Context, id int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shuttlecocks").
		Set("count", squirrel.Expr("count - ?", count)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"count": count}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementShuttlecockStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementShuttlecockStock - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementShuttlecockStock - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		// Различаем отсутствие волана и нехватку на складе
		if _, err := r.GetShuttlecockByID(ctx, id); err != nil {
			return err
		}
		return ErrOutOfStock
	}

	return nil
}

// AddShuttlecockStock пополняет склад воланов на count
func (r *Repository) AddShuttlecockStock(ctx context.Context, id int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shuttlecocks").
		Set("count", squirrel.Expr("count + ?", count)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddShuttlecockStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddShuttlecockStock - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddShuttlecockStock - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrShuttlecockNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
