package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
	"skill-match-api/internal/metrics"
	"skill-match-api/internal/repository"
	"skill-match-api/internal/response"
)

// MessageService defines the interface for direct message business logic
type MessageService interface {
	Send(ctx context.Context, req dto.SendMessageRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Message, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	// Between returns the full exchange between two users, oldest first.
	// Symmetric in its arguments.
	Between(ctx context.Context, a, b uuid.UUID) ([]domain.Message, error)
	// Conversations returns the distinct counterpart ids the user has
	// exchanged messages with. Never includes the user itself.
	Conversations(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error
}

type messageServiceImpl struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new instance of MessageService
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageServiceImpl{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *messageServiceImpl) Send(ctx context.Context, req dto.SendMessageRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Message, error) {
	from := actorID
	if req.From != nil {
		from = *req.From
	}
	if from != actorID && actorRole != domain.RoleAdmin {
		return nil, response.NewAppError(response.ErrCodeForbidden, "cannot send messages as another user", "")
	}

	for _, id := range []uuid.UUID{from, req.To} {
		exists, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, response.NewAppError(response.ErrCodeValidation, "referenced user does not exist", "")
		}
	}

	message := &domain.Message{
		ID:      uuid.New(),
		FromID:  from,
		ToID:    req.To,
		Content: req.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	metrics.RecordMessageSent()
	return message, nil
}

func (s *messageServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Message not found", "")
		}
		return nil, err
	}
	return message, nil
}

func (s *messageServiceImpl) List(ctx context.Context) ([]domain.Message, error) {
	return s.messageRepo.FindAll(ctx)
}

func (s *messageServiceImpl) Between(ctx context.Context, a, b uuid.UUID) ([]domain.Message, error) {
	return s.messageRepo.FindBetween(ctx, a, b)
}

func (s *messageServiceImpl) Conversations(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	messages, err := s.messageRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	counterparts := lo.FilterMap(messages, func(m domain.Message, _ int) (uuid.UUID, bool) {
		if m.FromID != userID {
			return m.FromID, true
		}
		if m.ToID != userID {
			return m.ToID, true
		}
		// Self-addressed message: no counterpart.
		return uuid.Nil, false
	})
	return lo.Uniq(counterparts), nil
}

func (s *messageServiceImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
	message, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if message.FromID != actorID && actorRole != domain.RoleAdmin {
		return response.NewAppError(response.ErrCodeForbidden, "only the sender can delete a message", "")
	}
	return s.messageRepo.Delete(ctx, id)
}
