package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// EventRepository defines event data access
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	Save(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	conn
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{conn{injected: db}}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var event domain.Event
	if err := db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	db, err := r.get()
	if err != nil {
		return nil, err
	}
	var events []domain.Event
	err = db.WithContext(ctx).Order("created_at ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) Save(ctx context.Context, event *domain.Event) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.get()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&domain.Event{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
