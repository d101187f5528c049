package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
	"skill-match-api/internal/response"
)

func TestEventService_Create(t *testing.T) {
	actor := uuid.New()

	t.Run("stamps the caller as creator and keeps participant order", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		svc := NewEventService(&MockEventRepository{}, &MockUserRepository{})

		event, err := svc.Create(context.Background(), dto.CreateEventRequest{
			Title:        "Demo Day",
			Participants: []uuid.UUID{b, a, b},
		}, actor)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if event.CreatedByID != actor {
			t.Errorf("Expected creator %s, got %s", actor, event.CreatedByID)
		}
		// Stored as given: ordered, duplicates included
		if len(event.Participants) != 3 || event.Participants[0] != b || event.Participants[1] != a || event.Participants[2] != b {
			t.Errorf("Participant list was altered: %v", event.Participants)
		}
	})

	t.Run("every participant must exist", func(t *testing.T) {
		ghost := uuid.New()
		userRepo := &MockUserRepository{
			ExistsFunc: func(ctx context.Context, id uuid.UUID) (bool, error) {
				return id != ghost, nil
			},
		}
		svc := NewEventService(&MockEventRepository{}, userRepo)

		_, err := svc.Create(context.Background(), dto.CreateEventRequest{
			Title:        "Demo Day",
			Participants: []uuid.UUID{uuid.New(), ghost},
		}, actor)
		assertAppErrorCode(t, err, response.ErrCodeValidation)
	})
}

func TestEventService_Authorization(t *testing.T) {
	creator := uuid.New()
	eventID := uuid.New()
	eventRepo := &MockEventRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			return &domain.Event{ID: eventID, Title: "Demo Day", CreatedByID: creator}, nil
		},
	}
	svc := NewEventService(eventRepo, &MockUserRepository{})

	title := "Pitch Night"

	t.Run("creator can update", func(t *testing.T) {
		event, err := svc.Update(context.Background(), eventID, dto.UpdateEventRequest{Title: &title}, creator, domain.RoleStartup)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if event.Title != "Pitch Night" {
			t.Errorf("Expected updated title, got %s", event.Title)
		}
	})

	t.Run("non-creator cannot update or delete", func(t *testing.T) {
		_, err := svc.Update(context.Background(), eventID, dto.UpdateEventRequest{Title: &title}, uuid.New(), domain.RoleStudent)
		assertAppErrorCode(t, err, response.ErrCodeForbidden)

		err = svc.Delete(context.Background(), eventID, uuid.New(), domain.RoleStudent)
		assertAppErrorCode(t, err, response.ErrCodeForbidden)
	})

	t.Run("admin can delete", func(t *testing.T) {
		if err := svc.Delete(context.Background(), eventID, uuid.New(), domain.RoleAdmin); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
	})
}
