package postgres

import (
	"context"
	"database/sql"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"
	"hostel-ledger-backend/internal/repository"

	"github.com/google/uuid"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (id, name, rent) VALUES ($1, $2, $3) RETURNING created_at`
	id := uuid.NewString()
	logger.DatabaseCall("create_room", query, "name", room.Name)
	err := r.db.QueryRowContext(ctx, query, id, room.Name, room.Rent).Scan(&room.CreatedAt)
	if err != nil {
		return classify("create room", err)
	}
	room.ID = id
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	room := &domain.Room{}
	query := `SELECT id, name, rent, created_at FROM rooms WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&room.ID, &room.Name, &room.Rent, &room.CreatedAt)
	if err != nil {
		return nil, classify("get room", err)
	}
	return room, nil
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT id, name, rent, created_at FROM rooms ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("list rooms", err)
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Rent, &room.CreatedAt); err != nil {
			return nil, classify("scan room", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, classify("list rooms", rows.Err())
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET name = $1, rent = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, room.Name, room.Rent, room.ID)
	if err != nil {
		return classify("update room", err)
	}
	return requireAffected("update room", res)
}

func (r *roomRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rooms WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("id", "room is still assigned to tenants")
		}
		return classify("delete room", err)
	}
	return requireAffected("delete room", res)
}

func (r *roomRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rooms`).Scan(&count)
	if err != nil {
		return 0, classify("count rooms", err)
	}
	return count, nil
}
