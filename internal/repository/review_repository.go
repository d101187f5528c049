package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// ReviewRepository defines review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
	Save(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	conn
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{conn{injected: db}}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var review domain.Review
	if err := db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var reviews []domain.Review
	err = db.WithContext(ctx).Order("created_at ASC").Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) Save(ctx context.Context, review *domain.Review) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
