package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
	"skill-match-api/internal/metrics"
	"skill-match-api/internal/repository"
	"skill-match-api/internal/response"
)

// ApplicationService defines the interface for application business logic
type ApplicationService interface {
	Create(ctx context.Context, req dto.CreateApplicationRequest) (*domain.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateApplicationRequest) (*domain.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationServiceImpl struct {
	appRepo     repository.ApplicationRepository
	studentRepo repository.StudentRepository
	startupRepo repository.StartupRepository
}

// NewApplicationService creates a new instance of ApplicationService
func NewApplicationService(appRepo repository.ApplicationRepository, studentRepo repository.StudentRepository, startupRepo repository.StartupRepository) ApplicationService {
	return &applicationServiceImpl{
		appRepo:     appRepo,
		studentRepo: studentRepo,
		startupRepo: startupRepo,
	}
}

// Create submits an application. Both referenced profiles must exist at
// submission time; duplicate (student, startup) pairs are allowed.
func (s *applicationServiceImpl) Create(ctx context.Context, req dto.CreateApplicationRequest) (*domain.Application, error) {
	exists, err := s.studentRepo.Exists(ctx, req.Student)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeValidation, "referenced student does not exist", "")
	}

	exists, err = s.startupRepo.Exists(ctx, req.Startup)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeValidation, "referenced startup does not exist", "")
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidApplicationStatus(status) {
		return nil, response.NewAppError(response.ErrCodeValidation, "status must be one of Pending, Accepted, Rejected, Interview", "")
	}

	app := &domain.Application{
		ID:              uuid.New(),
		StudentID:       req.Student,
		StartupID:       req.Startup,
		OpportunityType: req.OpportunityType,
		Status:          status,
		MatchedSkills:   req.MatchedSkills,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	metrics.RecordApplicationSubmitted()
	return app, nil
}

func (s *applicationServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Application not found", "")
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationServiceImpl) List(ctx context.Context) ([]domain.Application, error) {
	return s.appRepo.FindAll(ctx)
}

func (s *applicationServiceImpl) Update(ctx context.Context, id uuid.UUID, req dto.UpdateApplicationRequest) (*domain.Application, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !domain.ValidApplicationStatus(*req.Status) {
			return nil, response.NewAppError(response.ErrCodeValidation, "status must be one of Pending, Accepted, Rejected, Interview", "")
		}
		app.Status = *req.Status
	}
	if req.OpportunityType != nil {
		app.OpportunityType = *req.OpportunityType
	}
	if req.MatchedSkills != nil {
		app.MatchedSkills = *req.MatchedSkills
	}

	if err := s.appRepo.Save(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.appRepo.Delete(ctx, id)
}
