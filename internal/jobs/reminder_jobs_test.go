package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"meetingdesk-backend/internal/config"
	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository/postgres"
	"meetingdesk-backend/internal/utils"
)

type stubRequestRepo struct {
	mock.Mock
}

func (m *stubRequestRepo) Create(ctx context.Context, req *domain.BookingRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *stubRequestRepo) GetByID(ctx context.Context, id int32) (*domain.BookingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}
func (m *stubRequestRepo) List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookingRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRequest), args.Error(1)
}
func (m *stubRequestRepo) ListRoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error) {
	args := m.Called(ctx, date)
	return nil, args.Error(1)
}
func (m *stubRequestRepo) ListZoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error) {
	args := m.Called(ctx, date)
	return nil, args.Error(1)
}
func (m *stubRequestRepo) ApproveRoomTrack(ctx context.Context, requestID, roomID int32, notes string) (*domain.BookingRequest, error) {
	args := m.Called(ctx, requestID, roomID, notes)
	return nil, args.Error(1)
}
func (m *stubRequestRepo) ApproveZoomTrack(ctx context.Context, requestID int32, binding *domain.ZoomBinding, notes string) (*domain.BookingRequest, error) {
	args := m.Called(ctx, requestID, binding, notes)
	return nil, args.Error(1)
}
func (m *stubRequestRepo) RejectTrack(ctx context.Context, requestID int32, track domain.Track, reason string) (*domain.BookingRequest, error) {
	args := m.Called(ctx, requestID, track, reason)
	return nil, args.Error(1)
}

type stubUserRepo struct {
	mock.Mock
}

func (m *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *stubUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}
func (m *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return nil, args.Error(1)
}
func (m *stubUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type stubEmail struct {
	mock.Mock
}

func (m *stubEmail) SendRequestSubmitted(ctx context.Context, to, contactName, title, date, startTime, endTime string) error {
	return m.Called(ctx, to, contactName, title, date, startTime, endTime).Error(0)
}
func (m *stubEmail) SendTrackApproved(ctx context.Context, to, title string, track domain.Track) error {
	return m.Called(ctx, to, title, track).Error(0)
}
func (m *stubEmail) SendTrackRejected(ctx context.Context, to, title string, track domain.Track, reason string) error {
	return m.Called(ctx, to, title, track, reason).Error(0)
}
func (m *stubEmail) SendRequestApproved(ctx context.Context, to, title, date string) error {
	return m.Called(ctx, to, title, date).Error(0)
}
func (m *stubEmail) SendPendingDigest(ctx context.Context, to string, track domain.Track, count int) error {
	return m.Called(ctx, to, track, count).Error(0)
}

func TestSendPendingReminders(t *testing.T) {
	requestRepo := new(stubRequestRepo)
	userRepo := new(stubUserRepo)
	email := new(stubEmail)

	cfg := &config.Config{}
	cfg.Scheduler.ReminderLookaheadDays = 7

	store := &postgres.Store{
		UserRepository:    userRepo,
		RequestRepository: requestRepo,
	}
	runner := NewJobRunner(nil, store, email, cfg)

	today := time.Now().Format(utils.DateLayout)
	horizon := time.Now().AddDate(0, 0, 7).Format(utils.DateLayout)

	pendingZoom := []domain.BookingRequest{{ID: 1}, {ID: 2}}
	requestRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.RequestFilter) bool {
		return f.PendingTrack == domain.TrackZoom && f.DateFrom == today && f.DateTo == horizon
	})).Return(pendingZoom, nil)
	userRepo.On("ListByRole", mock.Anything, domain.RoleZoomApprover).
		Return([]domain.User{{ID: 7, Email: "za@example.com"}}, nil)
	email.On("SendPendingDigest", mock.Anything, "za@example.com", domain.TrackZoom, 2).Return(nil)

	// Nothing pending on the room track, so no room approver is looked up.
	requestRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.RequestFilter) bool {
		return f.PendingTrack == domain.TrackRoom
	})).Return([]domain.BookingRequest{}, nil)

	runner.SendPendingReminders()

	email.AssertCalled(t, "SendPendingDigest", mock.Anything, "za@example.com", domain.TrackZoom, 2)
	userRepo.AssertNotCalled(t, "ListByRole", mock.Anything, domain.RoleRoomApprover)
	requestRepo.AssertExpectations(t)
}
