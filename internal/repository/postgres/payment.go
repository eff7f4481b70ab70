package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"

	"github.com/google/uuid"
)

// paymentTable holds the SQL shared by rent_payments and mess_payments,
// which differ only in table and amount column names.
type paymentTable struct {
	db     *sql.DB
	table  string
	amount string
	kind   string
}

func (p *paymentTable) create(ctx context.Context, pay *domain.MonthlyPayment) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, tenant_id, month, %s, payment_date)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`, p.table, p.amount)
	id := uuid.NewString()
	logger.DatabaseCall("create_"+p.kind+"_payment", query, "tenant_id", pay.TenantID, "month", pay.Month.String())
	err := p.db.QueryRowContext(ctx, query, id, pay.TenantID, pay.Month.Time(), pay.Amount,
		pay.PaymentDate.Time).Scan(&pay.CreatedAt)
	if err != nil {
		return classify("create "+p.kind+" payment", err)
	}
	pay.ID = id
	return nil
}

func (p *paymentTable) listByTenant(ctx context.Context, tenantID string) ([]domain.MonthlyPayment, error) {
	query := fmt.Sprintf(`SELECT x.id, x.tenant_id, t.name, x.month, x.%s, x.payment_date, x.created_at
	          FROM %s x JOIN tenants t ON t.id = x.tenant_id
	          WHERE x.tenant_id = $1 ORDER BY x.month DESC, x.payment_date DESC`, p.amount, p.table)
	return p.query(ctx, "list "+p.kind+" payments by tenant", query, tenantID)
}

func (p *paymentTable) listByMonth(ctx context.Context, month domain.Month) ([]domain.MonthlyPayment, error) {
	query := fmt.Sprintf(`SELECT x.id, x.tenant_id, t.name, x.month, x.%s, x.payment_date, x.created_at
	          FROM %s x JOIN tenants t ON t.id = x.tenant_id
	          WHERE x.month = $1 ORDER BY x.payment_date DESC, t.name`, p.amount, p.table)
	return p.query(ctx, "list "+p.kind+" payments by month", query, month.Time())
}

func (p *paymentTable) query(ctx context.Context, op, query string, args ...interface{}) ([]domain.MonthlyPayment, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	payments := []domain.MonthlyPayment{}
	for rows.Next() {
		var pay domain.MonthlyPayment
		var month, paid time.Time
		if err := rows.Scan(&pay.ID, &pay.TenantID, &pay.TenantName, &month, &pay.Amount, &paid, &pay.CreatedAt); err != nil {
			return nil, classify(op, err)
		}
		pay.Month = domain.MonthOf(month)
		pay.PaymentDate = domain.DateOf(paid)
		payments = append(payments, pay)
	}
	return payments, classify(op, rows.Err())
}

type rentPaymentRepository struct {
	table paymentTable
}

func NewRentPaymentRepository(db *sql.DB) repository.RentPaymentRepository {
	return &rentPaymentRepository{table: paymentTable{db: db, table: "rent_payments", amount: "amount_paid", kind: "rent"}}
}

func (r *rentPaymentRepository) Create(ctx context.Context, payment *domain.RentPayment) error {
	return r.table.create(ctx, &payment.MonthlyPayment)
}

func (r *rentPaymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.RentPayment, error) {
	payments, err := r.table.listByTenant(ctx, tenantID)
	return asRent(payments), err
}

func (r *rentPaymentRepository) ListByMonth(ctx context.Context, month domain.Month) ([]domain.RentPayment, error) {
	payments, err := r.table.listByMonth(ctx, month)
	return asRent(payments), err
}

type messPaymentRepository struct {
	table paymentTable
}

func NewMessPaymentRepository(db *sql.DB) repository.MessPaymentRepository {
	return &messPaymentRepository{table: paymentTable{db: db, table: "mess_payments", amount: "mess_charge", kind: "mess"}}
}

func (r *messPaymentRepository) Create(ctx context.Context, payment *domain.MessPayment) error {
	return r.table.create(ctx, &payment.MonthlyPayment)
}

func (r *messPaymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.MessPayment, error) {
	payments, err := r.table.listByTenant(ctx, tenantID)
	return asMess(payments), err
}

func (r *messPaymentRepository) ListByMonth(ctx context.Context, month domain.Month) ([]domain.MessPayment, error) {
	payments, err := r.table.listByMonth(ctx, month)
	return asMess(payments), err
}

func asRent(in []domain.MonthlyPayment) []domain.RentPayment {
	if in == nil {
		return nil
	}
	out := make([]domain.RentPayment, len(in))
	for i, p := range in {
		out[i] = domain.RentPayment{MonthlyPayment: p}
	}
	return out
}

func asMess(in []domain.MonthlyPayment) []domain.MessPayment {
	if in == nil {
		return nil
	}
	out := make([]domain.MessPayment, len(in))
	for i, p := range in {
		out[i] = domain.MessPayment{MonthlyPayment: p}
	}
	return out
}
