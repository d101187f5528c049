package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// MessageRepository defines direct message data access
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	FindAll(ctx context.Context) ([]domain.Message, error)
	// FindBetween returns every message exchanged between the two users,
	// regardless of direction, ordered by creation time ascending.
	FindBetween(ctx context.Context, a, b uuid.UUID) ([]domain.Message, error)
	// FindByParticipant returns every message the user sent or received.
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepository struct {
	conn
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{conn{injected: db}}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var message domain.Message
	if err := db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var messages []domain.Message
	err = db.WithContext(ctx).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindBetween(ctx context.Context, a, b uuid.UUID) ([]domain.Message, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var messages []domain.Message
	err = db.WithContext(ctx).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var messages []domain.Message
	err = db.WithContext(ctx).
		Where("from_id = ? OR to_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&domain.Message{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
