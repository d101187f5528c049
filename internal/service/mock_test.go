package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindAllFunc     func(ctx context.Context) ([]domain.User, error)
	ExistsFunc      func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

// MockStudentRepository is a mock implementation of StudentRepository
type MockStudentRepository struct {
	CreateFunc   func(ctx context.Context, student *domain.Student) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Student, error)
	SaveFunc     func(ctx context.Context, student *domain.Student) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	ExistsFunc   func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, student)
	}
	return nil
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockStudentRepository) FindAll(ctx context.Context) ([]domain.Student, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockStudentRepository) Save(ctx context.Context, student *domain.Student) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, student)
	}
	return nil
}

func (m *MockStudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockStudentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

// MockStartupRepository is a mock implementation of StartupRepository
type MockStartupRepository struct {
	CreateFunc   func(ctx context.Context, startup *domain.Startup) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Startup, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Startup, error)
	SaveFunc     func(ctx context.Context, startup *domain.Startup) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	ExistsFunc   func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockStartupRepository) Create(ctx context.Context, startup *domain.Startup) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, startup)
	}
	return nil
}

func (m *MockStartupRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockStartupRepository) FindAll(ctx context.Context) ([]domain.Startup, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockStartupRepository) Save(ctx context.Context, startup *domain.Startup) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, startup)
	}
	return nil
}

func (m *MockStartupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockStartupRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

// MockApplicationRepository is a mock implementation of ApplicationRepository
type MockApplicationRepository struct {
	CreateFunc   func(ctx context.Context, app *domain.Application) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Application, error)
	SaveFunc     func(ctx context.Context, app *domain.Application) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, app)
	}
	return nil
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockApplicationRepository) FindAll(ctx context.Context) ([]domain.Application, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockApplicationRepository) Save(ctx context.Context, app *domain.Application) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, app)
	}
	return nil
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	CreateFunc            func(ctx context.Context, message *domain.Message) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	FindAllFunc           func(ctx context.Context) ([]domain.Message, error)
	FindBetweenFunc       func(ctx context.Context, a, b uuid.UUID) ([]domain.Message, error)
	FindByParticipantFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMessageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMessageRepository) FindBetween(ctx context.Context, a, b uuid.UUID) ([]domain.Message, error) {
	if m.FindBetweenFunc != nil {
		return m.FindBetweenFunc(ctx, a, b)
	}
	return nil, nil
}

func (m *MockMessageRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	if m.FindByParticipantFunc != nil {
		return m.FindByParticipantFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	CreateFunc   func(ctx context.Context, event *domain.Event) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Event, error)
	SaveFunc     func(ctx context.Context, event *domain.Event) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockEventRepository) Save(ctx context.Context, event *domain.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	CreateFunc   func(ctx context.Context, review *domain.Review) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Review, error)
	SaveFunc     func(ctx context.Context, review *domain.Review) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockReviewRepository) Save(ctx context.Context, review *domain.Review) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, review)
	}
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
