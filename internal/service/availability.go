package service

import (
	"context"
	"errors"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository"
	"meetingdesk-backend/internal/utils"
)

type availabilityService struct {
	requestRepo repository.RequestRepository
	roomRepo    repository.RoomRepository
	zoomRepo    repository.ZoomAccountRepository
}

func NewAvailabilityService(
	requestRepo repository.RequestRepository,
	roomRepo repository.RoomRepository,
	zoomRepo repository.ZoomAccountRepository,
) AvailabilityService {
	return &availabilityService{
		requestRepo: requestRepo,
		roomRepo:    roomRepo,
		zoomRepo:    zoomRepo,
	}
}

func validateQueryWindow(resourceType domain.ResourceType, date, startTime, endTime string) error {
	if !resourceType.Valid() {
		return domain.NewValidationError("resource_type", "must be room or zoom")
	}
	if !utils.ValidDate(date) {
		return domain.NewValidationError("date", "must be a YYYY-MM-DD date")
	}
	if !utils.ValidClock(startTime) || !utils.ValidClock(endTime) {
		return domain.NewValidationError("time", "must be HH:MM times")
	}
	if startTime >= endTime {
		return domain.NewValidationError("start_time", "must be before end_time")
	}
	return nil
}

// FindAvailable returns the ids of every active resource of the given type
// with no approved binding overlapping the window. An empty result is a
// normal outcome.
func (s *availabilityService) FindAvailable(ctx context.Context, resourceType domain.ResourceType, date, startTime, endTime string) ([]int32, error) {
	if err := validateQueryWindow(resourceType, date, startTime, endTime); err != nil {
		return nil, err
	}

	candidates, bindings, err := s.load(ctx, resourceType, date)
	if err != nil {
		return nil, err
	}

	busy := make(map[int32][]domain.ResourceBinding, len(bindings))
	for _, b := range bindings {
		busy[b.ResourceID] = append(busy[b.ResourceID], b)
	}

	available := make([]int32, 0, len(candidates))
	for _, id := range candidates {
		free := true
		for _, b := range busy[id] {
			if utils.Overlaps(b.StartTime, b.EndTime, startTime, endTime) {
				free = false
				break
			}
		}
		if free {
			available = append(available, id)
		}
	}
	return available, nil
}

// IsAvailable validates an explicit assignment of one resource. The request
// being approved is excluded from the conflict set so re-approving against
// its own prior binding never self-conflicts. An unknown or inactive
// resource is simply not available.
func (s *availabilityService) IsAvailable(ctx context.Context, resourceType domain.ResourceType, resourceID int32, date, startTime, endTime string, excludeRequestID int32) (bool, error) {
	if err := validateQueryWindow(resourceType, date, startTime, endTime); err != nil {
		return false, err
	}

	var active bool
	switch resourceType {
	case domain.ResourceTypeRoom:
		room, err := s.roomRepo.GetByID(ctx, resourceID)
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		active = room.IsActive
	case domain.ResourceTypeZoom:
		account, err := s.zoomRepo.GetByID(ctx, resourceID)
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		active = account.IsActive
	}
	if !active {
		return false, nil
	}

	bindings, err := s.listBindings(ctx, resourceType, date)
	if err != nil {
		return false, err
	}
	for _, b := range bindings {
		if b.ResourceID != resourceID || b.RequestID == excludeRequestID {
			continue
		}
		if utils.Overlaps(b.StartTime, b.EndTime, startTime, endTime) {
			return false, nil
		}
	}
	return true, nil
}

func (s *availabilityService) load(ctx context.Context, resourceType domain.ResourceType, date string) ([]int32, []domain.ResourceBinding, error) {
	var candidates []int32
	switch resourceType {
	case domain.ResourceTypeRoom:
		rooms, err := s.roomRepo.List(ctx, true)
		if err != nil {
			return nil, nil, err
		}
		for _, room := range rooms {
			candidates = append(candidates, room.ID)
		}
	case domain.ResourceTypeZoom:
		accounts, err := s.zoomRepo.List(ctx, true)
		if err != nil {
			return nil, nil, err
		}
		for _, account := range accounts {
			candidates = append(candidates, account.ID)
		}
	}

	bindings, err := s.listBindings(ctx, resourceType, date)
	if err != nil {
		return nil, nil, err
	}
	return candidates, bindings, nil
}

func (s *availabilityService) listBindings(ctx context.Context, resourceType domain.ResourceType, date string) ([]domain.ResourceBinding, error) {
	if resourceType == domain.ResourceTypeRoom {
		return s.requestRepo.ListRoomBindings(ctx, date)
	}
	return s.requestRepo.ListZoomBindings(ctx, date)
}
