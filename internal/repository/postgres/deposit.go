package postgres

import (
	"context"
	"database/sql"
	"time"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"

	"github.com/google/uuid"
)

type depositRepository struct {
	db *sql.DB
}

func NewDepositRepository(db *sql.DB) repository.DepositRepository {
	return &depositRepository{db: db}
}

func (r *depositRepository) CreateTransaction(ctx context.Context, tx *domain.DepositTransaction) error {
	query := `INSERT INTO deposit_transactions (id, tenant_id, date, amount, type, reason)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	id := uuid.NewString()
	logger.DatabaseCall("create_deposit_transaction", query, "tenant_id", tx.TenantID, "type", tx.Type)
	err := r.db.QueryRowContext(ctx, query, id, tx.TenantID, tx.Date.Time, tx.Amount, string(tx.Type), tx.Reason).
		Scan(&tx.CreatedAt)
	if err != nil {
		return classify("create deposit transaction", err)
	}
	tx.ID = id
	return nil
}

func (r *depositRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.DepositTransaction, error) {
	query := `SELECT d.id, d.tenant_id, t.name, t.phone, d.date, d.amount, d.type, d.reason, d.created_at
	          FROM deposit_transactions d JOIN tenants t ON t.id = d.tenant_id
	          WHERE d.tenant_id = $1 ORDER BY d.date DESC, d.created_at DESC`
	return r.query(ctx, "list deposit transactions by tenant", query, tenantID)
}

func (r *depositRepository) ListAll(ctx context.Context) ([]domain.DepositTransaction, error) {
	query := `SELECT d.id, d.tenant_id, t.name, t.phone, d.date, d.amount, d.type, d.reason, d.created_at
	          FROM deposit_transactions d JOIN tenants t ON t.id = d.tenant_id
	          ORDER BY d.date DESC, d.created_at DESC`
	return r.query(ctx, "list deposit transactions", query)
}

func (r *depositRepository) query(ctx context.Context, op, query string, args ...interface{}) ([]domain.DepositTransaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	txs := []domain.DepositTransaction{}
	for rows.Next() {
		var tx domain.DepositTransaction
		var date time.Time
		var txType string
		if err := rows.Scan(&tx.ID, &tx.TenantID, &tx.TenantName, &tx.TenantPhone, &date,
			&tx.Amount, &txType, &tx.Reason, &tx.CreatedAt); err != nil {
			return nil, classify(op, err)
		}
		tx.Date = domain.DateOf(date)
		tx.Type = domain.DepositTransactionType(txType)
		txs = append(txs, tx)
	}
	return txs, classify(op, rows.Err())
}
