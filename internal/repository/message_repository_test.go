package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

func seedMessage(t *testing.T, db *gorm.DB, from, to uuid.UUID, content string, at time.Time) *domain.Message {
	t.Helper()
	msg := &domain.Message{
		ID:        uuid.New(),
		FromID:    from,
		ToID:      to,
		Content:   content,
		CreatedAt: at,
	}
	require.NoError(t, db.Create(msg).Error)
	return msg
}

func TestMessageRepository_FindBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedMessage(t, db, alice, bob, "first", base)
	seedMessage(t, db, bob, alice, "second", base.Add(time.Minute))
	seedMessage(t, db, alice, bob, "third", base.Add(2*time.Minute))
	// Unrelated exchange must not leak in
	seedMessage(t, db, alice, carol, "other", base.Add(30*time.Second))

	forward, err := repo.FindBetween(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, forward, 3)

	// Oldest first, both directions included
	assert.Equal(t, "first", forward[0].Content)
	assert.Equal(t, "second", forward[1].Content)
	assert.Equal(t, "third", forward[2].Content)

	// Symmetric in its arguments
	reverse, err := repo.FindBetween(ctx, bob, alice)
	require.NoError(t, err)
	require.Len(t, reverse, 3)
	for i := range forward {
		assert.Equal(t, forward[i].ID, reverse[i].ID)
	}
}

func TestMessageRepository_FindByParticipant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seedMessage(t, db, alice, bob, "sent", base)
	seedMessage(t, db, bob, alice, "received", base.Add(time.Minute))
	seedMessage(t, db, bob, uuid.New(), "unrelated", base.Add(2*time.Minute))

	messages, err := repo.FindByParticipant(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessageRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	msg := seedMessage(t, db, uuid.New(), uuid.New(), "bye", time.Now())

	require.NoError(t, repo.Delete(ctx, msg.ID))

	// Second delete of the same id reports not found
	err := repo.Delete(ctx, msg.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindByID(ctx, msg.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
