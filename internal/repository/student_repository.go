package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// StudentRepository defines student profile data access
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	FindAll(ctx context.Context) ([]domain.Student, error)
	Save(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type studentRepository struct {
	conn
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{conn{injected: db}}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var student domain.Student
	if err := db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context) ([]domain.Student, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var students []domain.Student
	err = db.WithContext(ctx).Order("created_at ASC").Find(&students).Error
	return students, err
}

func (r *studentRepository) Save(ctx context.Context, student *domain.Student) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&domain.Student{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	db, err := r.get()
	if err != nil {
		return false, err
	}
	var count int64
	err = db.WithContext(ctx).Model(&domain.Student{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
