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

// StudentService defines the interface for student profile business logic
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Student, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error
}

type studentServiceImpl struct {
	studentRepo repository.StudentRepository
	userRepo    repository.UserRepository
}

// NewStudentService creates a new instance of StudentService
func NewStudentService(studentRepo repository.StudentRepository, userRepo repository.UserRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo, userRepo: userRepo}
}

func (s *studentServiceImpl) Create(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	if req.User != nil {
		exists, err := s.userRepo.Exists(ctx, *req.User)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, response.NewAppError(response.ErrCodeValidation, "referenced user does not exist", "")
		}
	}

	student := &domain.Student{
		ID:           uuid.New(),
		UserID:       req.User,
		University:   req.University,
		Year:         req.Year,
		Skills:       req.Skills,
		Interests:    req.Interests,
		Availability: req.Availability,
		Experience:   req.Experience,
		Portfolio:    req.Portfolio,
		Location:     req.Location,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Student not found", "")
		}
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) List(ctx context.Context) ([]domain.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

func (s *studentServiceImpl) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(student, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.University != nil {
		student.University = *req.University
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Skills != nil {
		student.Skills = *req.Skills
	}
	if req.Interests != nil {
		student.Interests = *req.Interests
	}
	if req.Availability != nil {
		student.Availability = *req.Availability
	}
	if req.Experience != nil {
		student.Experience = *req.Experience
	}
	if req.Portfolio != nil {
		student.Portfolio = *req.Portfolio
	}
	if req.Location != nil {
		student.Location = *req.Location
	}

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
	student, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(student, actorID, actorRole); err != nil {
		return err
	}
	// Non-cascading: applications referencing this student keep their ids.
	return s.studentRepo.Delete(ctx, id)
}

// authorize allows the owning account and admins. Profiles with no linked
// account have no owner to check.
func (s *studentServiceImpl) authorize(student *domain.Student, actorID uuid.UUID, actorRole domain.Role) error {
	if actorRole == domain.RoleAdmin || student.UserID == nil || *student.UserID == actorID {
		return nil
	}
	return response.NewAppError(response.ErrCodeForbidden, "cannot modify another user's profile", "")
}
