package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	"github.com/Nackalalalong/KK-BackEnd/pkg/dbmetrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/psqlbuilder"
)

// Repository хранилище кредитных балансов
// Идентификация пользователей живет во внешней системе; здесь только баланс,
// ключованный внешним ID
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр хранилища балансов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает баланс пользователя
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "credit").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Credit)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return &u, nil
}

// AddCredit пополняет баланс, создавая запись при первом обращении
// Возвращает новый баланс
func (r *Repository) AddCredit(ctx context.Context, id int64, amount float64) (float64, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("id", "credit").
		Values(id, amount).
		Suffix("ON CONFLICT (id) DO UPDATE SET credit = users.credit + EXCLUDED.credit RETURNING credit").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AddCredit - build upsert query: %v", ErrBuildQuery, err)
	}

	var credit float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&credit); err != nil {
		return 0, fmt.Errorf("%w: AddCredit - execute upsert: %v", ErrExecQuery, err)
	}

	return credit, nil
}

// Debit атомарно списывает amount с баланса
// Возвращает ErrInsufficientFunds, если кредитов не хватает
func (r *Repository) Debit(ctx context.Context, id int64, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("credit", squirrel.Expr("credit - ?", amount)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"credit": amount}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Debit - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Debit - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Debit - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		// Различаем отсутствие пользователя и нехватку кредитов
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrInsufficientFunds
	}

	return nil
}

// Credit атомарно зачисляет amount на баланс существующего пользователя
func (r *Repository) Credit(ctx context.Context, id int64, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("credit", squirrel.Expr("credit + ?", amount)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Credit - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Credit - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Credit - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
