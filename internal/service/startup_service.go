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

// StartupService defines the interface for startup profile business logic
type StartupService interface {
	Create(ctx context.Context, req dto.CreateStartupRequest) (*domain.Startup, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Startup, error)
	List(ctx context.Context) ([]domain.Startup, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStartupRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Startup, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error
}

type startupServiceImpl struct {
	startupRepo repository.StartupRepository
	userRepo    repository.UserRepository
}

// NewStartupService creates a new instance of StartupService
func NewStartupService(startupRepo repository.StartupRepository, userRepo repository.UserRepository) StartupService {
	return &startupServiceImpl{startupRepo: startupRepo, userRepo: userRepo}
}

func (s *startupServiceImpl) Create(ctx context.Context, req dto.CreateStartupRequest) (*domain.Startup, error) {
	exists, err := s.userRepo.Exists(ctx, req.User)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeValidation, "referenced user does not exist", "")
	}

	startup := &domain.Startup{
		ID:              uuid.New(),
		UserID:          req.User,
		Name:            req.Name,
		Description:     req.Description,
		Industry:        req.Industry,
		Location:        req.Location,
		LookingFor:      req.LookingFor,
		OpportunityType: req.OpportunityType,
		Duration:        req.Duration,
		Stipend:         req.Stipend,
		Requirements:    req.Requirements,
		ContactEmail:    req.ContactEmail,
		Website:         req.Website,
		TeamSize:        req.TeamSize,
		Funding:         req.Funding,
	}
	if err := s.startupRepo.Create(ctx, startup); err != nil {
		return nil, err
	}
	return startup, nil
}

func (s *startupServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Startup, error) {
	startup, err := s.startupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Startup not found", "")
		}
		return nil, err
	}
	return startup, nil
}

func (s *startupServiceImpl) List(ctx context.Context) ([]domain.Startup, error) {
	return s.startupRepo.FindAll(ctx)
}

func (s *startupServiceImpl) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStartupRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Startup, error) {
	startup, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(startup, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Name != nil {
		startup.Name = *req.Name
	}
	if req.Description != nil {
		startup.Description = *req.Description
	}
	if req.Industry != nil {
		startup.Industry = *req.Industry
	}
	if req.Location != nil {
		startup.Location = *req.Location
	}
	if req.LookingFor != nil {
		startup.LookingFor = *req.LookingFor
	}
	if req.OpportunityType != nil {
		startup.OpportunityType = *req.OpportunityType
	}
	if req.Duration != nil {
		startup.Duration = *req.Duration
	}
	if req.Stipend != nil {
		startup.Stipend = *req.Stipend
	}
	if req.Requirements != nil {
		startup.Requirements = *req.Requirements
	}
	if req.ContactEmail != nil {
		startup.ContactEmail = *req.ContactEmail
	}
	if req.Website != nil {
		startup.Website = *req.Website
	}
	if req.TeamSize != nil {
		startup.TeamSize = *req.TeamSize
	}
	if req.Funding != nil {
		startup.Funding = *req.Funding
	}

	if err := s.startupRepo.Save(ctx, startup); err != nil {
		return nil, err
	}
	return startup, nil
}

func (s *startupServiceImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
	startup, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(startup, actorID, actorRole); err != nil {
		return err
	}
	return s.startupRepo.Delete(ctx, id)
}

func (s *startupServiceImpl) authorize(startup *domain.Startup, actorID uuid.UUID, actorRole domain.Role) error {
	if actorRole == domain.RoleAdmin || startup.UserID == actorID {
		return nil
	}
	return response.NewAppError(response.ErrCodeForbidden, "cannot modify another user's startup", "")
}
