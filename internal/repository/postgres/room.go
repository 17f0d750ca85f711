package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (name, location, capacity, is_active, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, room.Name, room.Location, room.Capacity, room.IsActive, time.Now()).Scan(&room.ID)
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	room := &domain.Room{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, name, location, capacity, is_active, created_on, updated_on FROM rooms WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&room.ID, &room.Name, &room.Location, &room.Capacity, &room.IsActive, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	room.CreatedOn = createdOn.Format(time.RFC3339)
	room.UpdatedOn = updatedOn.Format(time.RFC3339)
	return room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET name=$1, location=$2, capacity=$3, is_active=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, room.Name, room.Location, room.Capacity, room.IsActive, time.Now(), room.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepository) List(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	query := `SELECT id, name, location, capacity, is_active, created_on, updated_on FROM rooms`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&room.ID, &room.Name, &room.Location, &room.Capacity, &room.IsActive, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		room.CreatedOn = createdOn.Format(time.RFC3339)
		room.UpdatedOn = updatedOn.Format(time.RFC3339)
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomRepository) SetActive(ctx context.Context, id int32, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rooms SET is_active=$1, updated_on=$2 WHERE id=$3`, active, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
