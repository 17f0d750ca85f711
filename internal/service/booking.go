package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository"
	"meetingdesk-backend/internal/utils"
)

type bookingService struct {
	requestRepo  repository.RequestRepository
	roomRepo     repository.RoomRepository
	zoomRepo     repository.ZoomAccountRepository
	userRepo     repository.UserRepository
	availability AvailabilityService
	emailSvc     EmailService
	noteRepo     repository.NotificationRepository
}

func NewBookingService(
	requestRepo repository.RequestRepository,
	roomRepo repository.RoomRepository,
	zoomRepo repository.ZoomAccountRepository,
	userRepo repository.UserRepository,
	availability AvailabilityService,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) BookingService {
	return &bookingService{
		requestRepo:  requestRepo,
		roomRepo:     roomRepo,
		zoomRepo:     zoomRepo,
		userRepo:     userRepo,
		availability: availability,
		emailSvc:     emailSvc,
		noteRepo:     noteRepo,
	}
}

func (s *bookingService) CreateRequest(ctx context.Context, requesterID int32, input domain.CreateRequestInput) (*domain.BookingRequest, error) {
	if !input.Kind.Valid() {
		return nil, domain.NewValidationError("kind", "must be ROOM, ZOOM or BOTH")
	}
	if err := utils.ValidateWindow(input.Date, input.StartTime, input.EndTime, time.Now()); err != nil {
		return nil, err
	}
	if input.Capacity < 1 {
		return nil, domain.NewValidationError("capacity", "must be at least 1")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if strings.TrimSpace(input.ContactName) == "" {
		return nil, domain.NewValidationError("contact_name", "is required")
	}
	if strings.TrimSpace(input.ContactEmail) == "" || !strings.Contains(input.ContactEmail, "@") {
		return nil, domain.NewValidationError("contact_email", "must be a valid email address")
	}

	req := &domain.BookingRequest{
		RequesterID:  requesterID,
		Kind:         input.Kind,
		Title:        input.Title,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Capacity:     input.Capacity,
	}
	if input.Kind.HasTrack(domain.TrackZoom) {
		req.ZoomTrack = &domain.ZoomTrack{Status: domain.TrackStatusPending}
	}
	if input.Kind.HasTrack(domain.TrackRoom) {
		req.RoomTrack = &domain.RoomTrack{Status: domain.TrackStatusPending}
	}
	req.OverallStatus = req.DeriveOverallStatus()

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	// Best-effort side effects: never fail the creation over them.
	_ = s.emailSvc.SendRequestSubmitted(ctx, req.ContactEmail, req.ContactName, req.Title, req.Date, req.StartTime, req.EndTime)
	if req.ZoomTrack != nil {
		s.notifyApprovers(ctx, domain.RoleZoomApprover, req, "New zoom request awaiting review")
	}
	if req.RoomTrack != nil {
		s.notifyApprovers(ctx, domain.RoleRoomApprover, req, "New room request awaiting review")
	}

	return req, nil
}

func (s *bookingService) GetRequest(ctx context.Context, id int32) (*domain.BookingRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

func (s *bookingService) ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.BookingRequest, error) {
	return s.requestRepo.List(ctx, filter)
}

func (s *bookingService) ApproveTrack(ctx context.Context, actorRole domain.Role, requestID int32, track domain.Track, assignment domain.Assignment) (*domain.BookingRequest, error) {
	if !actorRole.CanDecide(track) {
		return nil, domain.ErrForbidden
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Kind.HasTrack(track) {
		return nil, domain.ErrInvalidTransition
	}
	if req.TrackStatusOf(track).Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	var updated *domain.BookingRequest
	switch track {
	case domain.TrackRoom:
		if assignment.ResourceID == nil {
			return nil, domain.NewValidationError("resource_id", "room approval requires a room id")
		}
		room, err := s.roomRepo.GetByID(ctx, *assignment.ResourceID)
		if err != nil {
			return nil, err
		}
		ok, err := s.availability.IsAvailable(ctx, domain.ResourceTypeRoom, room.ID, req.Date, req.StartTime, req.EndTime, req.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrResourceConflict
		}
		updated, err = s.requestRepo.ApproveRoomTrack(ctx, requestID, room.ID, assignment.Notes)
		if err != nil {
			return nil, err
		}

	case domain.TrackZoom:
		binding, err := s.resolveZoomBinding(ctx, req, assignment)
		if err != nil {
			return nil, err
		}
		updated, err = s.requestRepo.ApproveZoomTrack(ctx, requestID, binding, assignment.Notes)
		if err != nil {
			return nil, err
		}

	default:
		return nil, domain.ErrInvalidTransition
	}

	s.notifyDecision(ctx, updated, track, true, "")
	return updated, nil
}

// resolveZoomBinding turns an approver's assignment into the tagged binding
// for the zoom track, validating availability for catalog accounts.
func (s *bookingService) resolveZoomBinding(ctx context.Context, req *domain.BookingRequest, assignment domain.Assignment) (*domain.ZoomBinding, error) {
	if assignment.ManualZoom != nil && assignment.ResourceID != nil {
		return nil, domain.NewValidationError("assignment", "catalog account and manual details are mutually exclusive")
	}

	var binding *domain.ZoomBinding
	switch {
	case assignment.ManualZoom != nil:
		binding = &domain.ZoomBinding{
			Kind:      domain.ZoomBindingManual,
			Link:      assignment.ManualZoom.Link,
			MeetingID: assignment.ManualZoom.MeetingID,
			Passcode:  assignment.ManualZoom.Passcode,
		}
	case assignment.ResourceID != nil:
		account, err := s.zoomRepo.GetByID(ctx, *assignment.ResourceID)
		if err != nil {
			return nil, err
		}
		ok, err := s.availability.IsAvailable(ctx, domain.ResourceTypeZoom, account.ID, req.Date, req.StartTime, req.EndTime, req.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrResourceConflict
		}
		binding = &domain.ZoomBinding{Kind: domain.ZoomBindingCatalog, AccountID: &account.ID}
	default:
		return nil, domain.NewValidationError("assignment", "zoom approval requires an account id or manual meeting details")
	}

	if err := binding.Validate(); err != nil {
		return nil, err
	}
	return binding, nil
}

func (s *bookingService) RejectTrack(ctx context.Context, actorRole domain.Role, requestID int32, track domain.Track, reason string) (*domain.BookingRequest, error) {
	if !actorRole.CanDecide(track) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("reason", "is required")
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !req.Kind.HasTrack(track) {
		return nil, domain.ErrInvalidTransition
	}
	if req.TrackStatusOf(track).Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.requestRepo.RejectTrack(ctx, requestID, track, reason)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, updated, track, false, reason)
	return updated, nil
}

func (s *bookingService) notifyApprovers(ctx context.Context, role domain.Role, req *domain.BookingRequest, title string) {
	approvers, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return
	}
	for _, approver := range approvers {
		note := &domain.Notification{
			UserID:  approver.ID,
			Title:   title,
			Message: fmt.Sprintf("%s on %s %s-%s", req.Title, req.Date, req.StartTime, req.EndTime),
			Attributes: map[string]string{
				"type":       "REQUEST_SUBMITTED",
				"request_id": fmt.Sprintf("%d", req.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}
}

func (s *bookingService) notifyDecision(ctx context.Context, req *domain.BookingRequest, track domain.Track, approved bool, reason string) {
	if approved {
		_ = s.emailSvc.SendTrackApproved(ctx, req.ContactEmail, req.Title, track)
		if req.OverallStatus == domain.TrackStatusApproved {
			_ = s.emailSvc.SendRequestApproved(ctx, req.ContactEmail, req.Title, req.Date)
		}
	} else {
		_ = s.emailSvc.SendTrackRejected(ctx, req.ContactEmail, req.Title, track, reason)
	}

	title := fmt.Sprintf("%s track approved", track)
	noteType := "TRACK_APPROVED"
	message := fmt.Sprintf("The %s track of %q was approved", track, req.Title)
	if !approved {
		title = fmt.Sprintf("%s track rejected", track)
		noteType = "TRACK_REJECTED"
		message = fmt.Sprintf("The %s track of %q was rejected: %s", track, req.Title, reason)
	}
	note := &domain.Notification{
		UserID:  req.RequesterID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":       noteType,
			"request_id": fmt.Sprintf("%d", req.ID),
			"track":      string(track),
		},
	}
	_ = s.noteRepo.Create(ctx, note)
}
