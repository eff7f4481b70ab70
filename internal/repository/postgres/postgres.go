package postgres

import (
	"database/sql"

	"hostel-ledger-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RoomRepository
	repository.TenantRepository
	repository.RentPaymentRepository
	repository.MessPaymentRepository
	repository.DepositRepository
	repository.SnapshotRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		RoomRepository:        NewRoomRepository(db),
		TenantRepository:      NewTenantRepository(db),
		RentPaymentRepository: NewRentPaymentRepository(db),
		MessPaymentRepository: NewMessPaymentRepository(db),
		DepositRepository:     NewDepositRepository(db),
		SnapshotRepository:    NewSnapshotRepository(db),
	}
}

// DB exposes the underlying handle for health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}
