package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
	"skill-match-api/internal/repository"
	"skill-match-api/internal/response"
)

// EventService defines the interface for event business logic
type EventService interface {
	Create(ctx context.Context, req dto.CreateEventRequest, actorID uuid.UUID) (*domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error
}

type eventServiceImpl struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewEventService creates a new instance of EventService
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository) EventService {
	return &eventServiceImpl{eventRepo: eventRepo, userRepo: userRepo}
}

// Create creates an event with the caller as creator. The participant list
// is stored as given: ordered, duplicates included.
func (s *eventServiceImpl) Create(ctx context.Context, req dto.CreateEventRequest, actorID uuid.UUID) (*domain.Event, error) {
	if err := s.checkParticipants(ctx, req.Participants); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Date:         req.Date,
		Location:     req.Location,
		CreatedByID:  actorID,
		Participants: req.Participants,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Event not found", "")
		}
		return nil, err
	}
	return event, nil
}

func (s *eventServiceImpl) List(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventServiceImpl) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(event, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Date != nil {
		event.Date = req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Participants != nil {
		if err := s.checkParticipants(ctx, *req.Participants); err != nil {
			return nil, err
		}
		event.Participants = *req.Participants
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventServiceImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
	event, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(event, actorID, actorRole); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

func (s *eventServiceImpl) checkParticipants(ctx context.Context, participants []uuid.UUID) error {
	for _, id := range participants {
		exists, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return response.NewAppError(response.ErrCodeValidation, "referenced participant does not exist", "")
		}
	}
	return nil
}

func (s *eventServiceImpl) authorize(event *domain.Event, actorID uuid.UUID, actorRole domain.Role) error {
	if actorRole == domain.RoleAdmin || event.CreatedByID == actorID {
		return nil
	}
	return response.NewAppError(response.ErrCodeForbidden, "only the creator can modify an event", "")
}
