package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"

	"github.com/google/uuid"
)

const tenantColumns = `t.id, t.name, t.phone, t.room_id, COALESCE(r.name, ''), COALESCE(r.rent, 0),
	t.join_date, t.leave_date, t.uses_mess, t.deposit_amount, t.created_at`

const tenantFrom = ` FROM tenants t LEFT JOIN rooms r ON r.id = t.room_id`

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTenant(row rowScanner) (domain.Tenant, error) {
	var t domain.Tenant
	var joinDate time.Time
	var leaveDate sql.NullTime
	err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.RoomID, &t.RoomName, &t.RoomRent,
		&joinDate, &leaveDate, &t.UsesMess, &t.InitialDeposit, &t.CreatedAt)
	if err != nil {
		return t, err
	}
	t.JoinDate = domain.DateOf(joinDate)
	t.LeaveDate = datePtr(leaveDate)
	return t, nil
}

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (id, name, phone, room_id, join_date, leave_date, uses_mess, deposit_amount)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	id := uuid.NewString()
	logger.DatabaseCall("create_tenant", query, "room_id", t.RoomID)
	err := r.db.QueryRowContext(ctx, query, id, t.Name, t.Phone, t.RoomID, t.JoinDate.Time,
		nullableDate(t.LeaveDate), t.UsesMess, t.InitialDeposit).Scan(&t.CreatedAt)
	if err != nil {
		return classify("create tenant", err)
	}
	t.ID = id
	return nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + tenantFrom + ` WHERE t.id = $1`
	t, err := scanTenant(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify("get tenant", err)
	}
	return &t, nil
}

func (r *tenantRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + tenantFrom + ` WHERE 1=1`
	var args []interface{}

	switch filter.Status {
	case domain.TenantStatusActive:
		query += ` AND t.leave_date IS NULL`
	case domain.TenantStatusLeft:
		query += ` AND t.leave_date IS NOT NULL`
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, likePattern(search))
		query += fmt.Sprintf(` AND (t.name ILIKE $%d OR t.phone LIKE $%d)`, len(args), len(args))
	}
	query += ` ORDER BY t.name`

	return r.queryTenants(ctx, "list tenants", query, args...)
}

func (r *tenantRepository) ListRecent(ctx context.Context, limit int) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + tenantFrom + ` ORDER BY t.created_at DESC LIMIT $1`
	return r.queryTenants(ctx, "list recent tenants", query, limit)
}

func (r *tenantRepository) queryTenants(ctx context.Context, op, query string, args ...interface{}) ([]domain.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	tenants := []domain.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, classify(op, err)
		}
		tenants = append(tenants, t)
	}
	return tenants, classify(op, rows.Err())
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET name = $1, phone = $2, room_id = $3, join_date = $4, leave_date = $5, uses_mess = $6
	          WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Phone, t.RoomID, t.JoinDate.Time,
		nullableDate(t.LeaveDate), t.UsesMess, t.ID)
	if err != nil {
		return classify("update tenant", err)
	}
	return requireAffected("update tenant", res)
}

func (r *tenantRepository) MarkLeft(ctx context.Context, id string, leaveDate domain.Date) error {
	query := `UPDATE tenants SET leave_date = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, leaveDate.Time, id)
	if err != nil {
		return classify("mark tenant left", err)
	}
	return requireAffected("mark tenant left", res)
}
