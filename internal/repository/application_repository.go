package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// ApplicationRepository defines application data access
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	FindAll(ctx context.Context) ([]domain.Application, error)
	Save(ctx context.Context, app *domain.Application) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationRepository struct {
	conn
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{conn{injected: db}}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var app domain.Application
	if err := db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindAll(ctx context.Context) ([]domain.Application, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var apps []domain.Application
	err = db.WithContext(ctx).Order("created_at ASC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) Save(ctx context.Context, app *domain.Application) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&domain.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
