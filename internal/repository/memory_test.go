package repository

import (
	"context"
	"testing"
	"time"

	"oficina/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateRepository(t *testing.T) {
	repo := NewMemoryStateRepository(time.Hour)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("SetAndGetState", func(t *testing.T) {
		state := &models.UserState{UserID: 123, CurrentStep: models.StateCheckInRoom}
		require.NoError(t, repo.SetState(ctx, state))

		got, err := repo.GetState(ctx, 123)
		require.NoError(t, err)
		assert.Equal(t, state, got)
	})

	t.Run("StoredCopyIsIndependent", func(t *testing.T) {
		state := &models.UserState{UserID: 124, CurrentStep: "a"}
		require.NoError(t, repo.SetState(ctx, state))
		state.CurrentStep = "b"

		got, err := repo.GetState(ctx, 124)
		require.NoError(t, err)
		assert.Equal(t, "a", got.CurrentStep)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, repo.SetState(ctx, &models.UserState{UserID: 200}))
		now = now.Add(2 * time.Hour)
		got, err := repo.GetState(ctx, 200)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ClearState", func(t *testing.T) {
		require.NoError(t, repo.SetState(ctx, &models.UserState{UserID: 123}))
		require.NoError(t, repo.ClearState(ctx, 123))
		got, _ := repo.GetState(ctx, 123)
		assert.Nil(t, got)
	})

	t.Run("RateLimit", func(t *testing.T) {
		userID := int64(456)
		allowed, _ := repo.CheckRateLimit(ctx, userID, 2, time.Second)
		assert.True(t, allowed)
		allowed, _ = repo.CheckRateLimit(ctx, userID, 2, time.Second)
		assert.True(t, allowed)
		allowed, _ = repo.CheckRateLimit(ctx, userID, 2, time.Second)
		assert.False(t, allowed)

		now = now.Add(time.Second + time.Millisecond)
		allowed, _ = repo.CheckRateLimit(ctx, userID, 2, time.Second)
		assert.True(t, allowed)
	})
}
