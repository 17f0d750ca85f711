package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meetingdesk-backend/internal/domain"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.BookingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int32) (*domain.BookingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}
func (m *MockRequestRepo) List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookingRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRequest), args.Error(1)
}
func (m *MockRequestRepo) ListRoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceBinding), args.Error(1)
}
func (m *MockRequestRepo) ListZoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceBinding), args.Error(1)
}
func (m *MockRequestRepo) ApproveRoomTrack(ctx context.Context, requestID, roomID int32, notes string) (*domain.BookingRequest, error) {
	args := m.Called(ctx, requestID, roomID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}
func (m *MockRequestRepo) ApproveZoomTrack(ctx context.Context, requestID int32, binding *domain.ZoomBinding, notes string) (*domain.BookingRequest, error) {
	args := m.Called(ctx, requestID, binding, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}
func (m *MockRequestRepo) RejectTrack(ctx context.Context, requestID int32, track domain.Track, reason string) (*domain.BookingRequest, error) {
	args := m.Called(ctx, requestID, track, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) List(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockZoomAccountRepo
type MockZoomAccountRepo struct {
	mock.Mock
}

func (m *MockZoomAccountRepo) Create(ctx context.Context, account *domain.ZoomAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockZoomAccountRepo) GetByID(ctx context.Context, id int32) (*domain.ZoomAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZoomAccount), args.Error(1)
}
func (m *MockZoomAccountRepo) Update(ctx context.Context, account *domain.ZoomAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockZoomAccountRepo) List(ctx context.Context, activeOnly bool) ([]domain.ZoomAccount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZoomAccount), args.Error(1)
}
func (m *MockZoomAccountRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAvailability
type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) FindAvailable(ctx context.Context, resourceType domain.ResourceType, date, startTime, endTime string) ([]int32, error) {
	args := m.Called(ctx, resourceType, date, startTime, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockAvailability) IsAvailable(ctx context.Context, resourceType domain.ResourceType, resourceID int32, date, startTime, endTime string, excludeRequestID int32) (bool, error) {
	args := m.Called(ctx, resourceType, resourceID, date, startTime, endTime, excludeRequestID)
	return args.Bool(0), args.Error(1)
}

// MockEmail
type MockEmail struct {
	mock.Mock
}

func (m *MockEmail) SendRequestSubmitted(ctx context.Context, to, contactName, title, date, startTime, endTime string) error {
	args := m.Called(ctx, to, contactName, title, date, startTime, endTime)
	return args.Error(0)
}
func (m *MockEmail) SendTrackApproved(ctx context.Context, to, title string, track domain.Track) error {
	args := m.Called(ctx, to, title, track)
	return args.Error(0)
}
func (m *MockEmail) SendTrackRejected(ctx context.Context, to, title string, track domain.Track, reason string) error {
	args := m.Called(ctx, to, title, track, reason)
	return args.Error(0)
}
func (m *MockEmail) SendRequestApproved(ctx context.Context, to, title, date string) error {
	args := m.Called(ctx, to, title, date)
	return args.Error(0)
}
func (m *MockEmail) SendPendingDigest(ctx context.Context, to string, track domain.Track, count int) error {
	args := m.Called(ctx, to, track, count)
	return args.Error(0)
}
