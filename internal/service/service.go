package service

import (
	"context"

	"meetingdesk-backend/internal/domain"
)

// BookingService is the workflow gateway: it maps an authenticated actor's
// intent onto request lifecycle transitions, enforcing role and state
// preconditions, and exposes the read projections dashboards consume.
type BookingService interface {
	CreateRequest(ctx context.Context, requesterID int32, input domain.CreateRequestInput) (*domain.BookingRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.BookingRequest, error)
	ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.BookingRequest, error)
	ApproveTrack(ctx context.Context, actorRole domain.Role, requestID int32, track domain.Track, assignment domain.Assignment) (*domain.BookingRequest, error)
	RejectTrack(ctx context.Context, actorRole domain.Role, requestID int32, track domain.Track, reason string) (*domain.BookingRequest, error)
}

// AvailabilityService answers whether resources are free over a time
// window. Absence of availability is a normal outcome, never an error. Its
// answers are advisory: the binding decision re-validates inside the
// repository transaction that writes it.
type AvailabilityService interface {
	FindAvailable(ctx context.Context, resourceType domain.ResourceType, date, startTime, endTime string) ([]int32, error)
	IsAvailable(ctx context.Context, resourceType domain.ResourceType, resourceID int32, date, startTime, endTime string, excludeRequestID int32) (bool, error)
}

// CatalogService is the administrative CRUD surface for the resource pool.
type CatalogService interface {
	CreateRoom(ctx context.Context, room *domain.Room) error
	UpdateRoom(ctx context.Context, room *domain.Room) error
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
	ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error)
	SetRoomActive(ctx context.Context, id int32, active bool) error

	CreateZoomAccount(ctx context.Context, account *domain.ZoomAccount) error
	UpdateZoomAccount(ctx context.Context, account *domain.ZoomAccount) error
	GetZoomAccount(ctx context.Context, id int32) (*domain.ZoomAccount, error)
	ListZoomAccounts(ctx context.Context, activeOnly bool) ([]domain.ZoomAccount, error)
	SetZoomAccountActive(ctx context.Context, id int32, active bool) error
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns access and refresh tokens for valid credentials.
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendRequestSubmitted(ctx context.Context, to, contactName, title, date, startTime, endTime string) error
	SendTrackApproved(ctx context.Context, to, title string, track domain.Track) error
	SendTrackRejected(ctx context.Context, to, title string, track domain.Track, reason string) error
	SendRequestApproved(ctx context.Context, to, title, date string) error
	SendPendingDigest(ctx context.Context, to string, track domain.Track, count int) error
}
