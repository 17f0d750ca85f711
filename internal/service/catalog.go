package service

import (
	"context"
	"strings"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository"
)

type catalogService struct {
	roomRepo repository.RoomRepository
	zoomRepo repository.ZoomAccountRepository
}

func NewCatalogService(roomRepo repository.RoomRepository, zoomRepo repository.ZoomAccountRepository) CatalogService {
	return &catalogService{roomRepo: roomRepo, zoomRepo: zoomRepo}
}

func validateRoom(room *domain.Room) error {
	if strings.TrimSpace(room.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if room.Capacity < 1 {
		return domain.NewValidationError("capacity", "must be at least 1")
	}
	return nil
}

func (s *catalogService) CreateRoom(ctx context.Context, room *domain.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	room.IsActive = true
	return s.roomRepo.Create(ctx, room)
}

func (s *catalogService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	return s.roomRepo.Update(ctx, room)
}

func (s *catalogService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *catalogService) ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	return s.roomRepo.List(ctx, activeOnly)
}

func (s *catalogService) SetRoomActive(ctx context.Context, id int32, active bool) error {
	return s.roomRepo.SetActive(ctx, id, active)
}

func validateZoomAccount(account *domain.ZoomAccount) error {
	if strings.TrimSpace(account.Name) == "" {
		return domain.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(account.HostEmail) == "" || !strings.Contains(account.HostEmail, "@") {
		return domain.NewValidationError("host_email", "must be a valid email address")
	}
	if strings.TrimSpace(account.Link) == "" {
		return domain.NewValidationError("link", "is required")
	}
	return nil
}

func (s *catalogService) CreateZoomAccount(ctx context.Context, account *domain.ZoomAccount) error {
	if err := validateZoomAccount(account); err != nil {
		return err
	}
	account.IsActive = true
	return s.zoomRepo.Create(ctx, account)
}

func (s *catalogService) UpdateZoomAccount(ctx context.Context, account *domain.ZoomAccount) error {
	if err := validateZoomAccount(account); err != nil {
		return err
	}
	return s.zoomRepo.Update(ctx, account)
}

func (s *catalogService) GetZoomAccount(ctx context.Context, id int32) (*domain.ZoomAccount, error) {
	return s.zoomRepo.GetByID(ctx, id)
}

func (s *catalogService) ListZoomAccounts(ctx context.Context, activeOnly bool) ([]domain.ZoomAccount, error) {
	return s.zoomRepo.List(ctx, activeOnly)
}

func (s *catalogService) SetZoomAccountActive(ctx context.Context, id int32, active bool) error {
	return s.zoomRepo.SetActive(ctx, id, active)
}
