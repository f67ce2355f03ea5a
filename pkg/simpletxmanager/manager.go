package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/Nackalalalong/KK-BackEnd/pkg/dbmetrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/txmanager"
)

// beginnerAdapter адаптирует *sql.DB к txmanager.TxBeginner
type beginnerAdapter struct {
	db *sql.DB
}

func (a beginnerAdapter) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return a.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает менеджер транзакций поверх чистого *sql.DB,
// без сбора метрик
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(beginnerAdapter{db: db})
}
