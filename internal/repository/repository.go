package repository

import (
	"context"

	"meetingdesk-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	// List returns all rooms, or only active ones when activeOnly is set.
	List(ctx context.Context, activeOnly bool) ([]domain.Room, error)
	SetActive(ctx context.Context, id int32, active bool) error
}

type ZoomAccountRepository interface {
	Create(ctx context.Context, account *domain.ZoomAccount) error
	GetByID(ctx context.Context, id int32) (*domain.ZoomAccount, error)
	Update(ctx context.Context, account *domain.ZoomAccount) error
	List(ctx context.Context, activeOnly bool) ([]domain.ZoomAccount, error)
	SetActive(ctx context.Context, id int32, active bool) error
}

// RequestRepository persists booking requests. The three decision methods
// are transactional: they lock the request row, verify the track is still
// PENDING, re-run the conflict check for catalog bindings inside the same
// transaction, and write status, binding and recomputed overall status as
// one atomic update. Two concurrent decisions on the same track cannot both
// succeed.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.BookingRequest) error
	GetByID(ctx context.Context, id int32) (*domain.BookingRequest, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookingRequest, error)

	// ListRoomBindings and ListZoomBindings return the approved reservation
	// intervals of every catalog-bound track on the given date. They feed
	// the availability checker; manual zoom bindings hold no catalog
	// resource and are not included.
	ListRoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error)
	ListZoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error)

	ApproveRoomTrack(ctx context.Context, requestID, roomID int32, notes string) (*domain.BookingRequest, error)
	ApproveZoomTrack(ctx context.Context, requestID int32, binding *domain.ZoomBinding, notes string) (*domain.BookingRequest, error)
	RejectTrack(ctx context.Context, requestID int32, track domain.Track, reason string) (*domain.BookingRequest, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
