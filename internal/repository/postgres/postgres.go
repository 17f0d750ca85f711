package postgres

import (
	"database/sql"

	"meetingdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.RoomRepository
	repository.ZoomAccountRepository
	repository.RequestRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		RoomRepository:         NewRoomRepository(db),
		ZoomAccountRepository:  NewZoomAccountRepository(db),
		RequestRepository:      NewRequestRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
