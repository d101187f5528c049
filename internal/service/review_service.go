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

// ReviewService defines the interface for peer review business logic
type ReviewService interface {
	Create(ctx context.Context, req dto.CreateReviewRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateReviewRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) ReviewService {
	return &reviewServiceImpl{reviewRepo: reviewRepo, userRepo: userRepo}
}

func (s *reviewServiceImpl) Create(ctx context.Context, req dto.CreateReviewRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Review, error) {
	if req.Reviewer != actorID && actorRole != domain.RoleAdmin {
		return nil, response.NewAppError(response.ErrCodeForbidden, "cannot review as another user", "")
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return nil, response.NewAppError(response.ErrCodeValidation, "rating must be between 1 and 5", "")
	}

	for _, id := range []uuid.UUID{req.Reviewer, req.Reviewee} {
		exists, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, response.NewAppError(response.ErrCodeValidation, "referenced user does not exist", "")
		}
	}

	review := &domain.Review{
		ID:         uuid.New(),
		ReviewerID: req.Reviewer,
		RevieweeID: req.Reviewee,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Review not found", "")
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewServiceImpl) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.FindAll(ctx)
}

func (s *reviewServiceImpl) Update(ctx context.Context, id uuid.UUID, req dto.UpdateReviewRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(review, actorID, actorRole); err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if *req.Rating < domain.MinRating || *req.Rating > domain.MaxRating {
			return nil, response.NewAppError(response.ErrCodeValidation, "rating must be between 1 and 5", "")
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewServiceImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(review, actorID, actorRole); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}

func (s *reviewServiceImpl) authorize(review *domain.Review, actorID uuid.UUID, actorRole domain.Role) error {
	if actorRole == domain.RoleAdmin || review.ReviewerID == actorID {
		return nil
	}
	return response.NewAppError(response.ErrCodeForbidden, "only the reviewer can modify a review", "")
}
