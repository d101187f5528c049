package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// StartupRepository defines startup profile data access
type StartupRepository interface {
	Create(ctx context.Context, startup *domain.Startup) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error)
	FindAll(ctx context.Context) ([]domain.Startup, error)
	Save(ctx context.Context, startup *domain.Startup) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type startupRepository struct {
	conn
}

// NewStartupRepository creates a new StartupRepository
func NewStartupRepository(db *gorm.DB) StartupRepository {
	return &startupRepository{conn{injected: db}}
}

func (r *startupRepository) Create(ctx context.Context, startup *domain.Startup) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(startup).Error
}

func (r *startupRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var startup domain.Startup
	if err := db.WithContext(ctx).First(&startup, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &startup, nil
}

func (r *startupRepository) FindAll(ctx context.Context) ([]domain.Startup, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var startups []domain.Startup
	err = db.WithContext(ctx).Order("created_at ASC").Find(&startups).Error
	return startups, err
}

func (r *startupRepository) Save(ctx context.Context, startup *domain.Startup) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(startup).Error
}

func (r *startupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&domain.Startup{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *startupRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	db, err := r.get()
	if err != nil {
		return false, err
	}
	var count int64
	err = db.WithContext(ctx).Model(&domain.Startup{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
