package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) GetState(ctx context.Context, userID int64) (*models.UserState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserState), args.Error(1)
}

func (m *MockStateRepository) SetState(ctx context.Context, state *models.UserState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStateRepository) ClearState(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStateRepository) CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, userID, limit, window)
	return args.Bool(0), args.Error(1)
}

func TestStateService_GetUserState(t *testing.T) {
	mockRepo := new(MockStateRepository)
	logger := zerolog.Nop()
	s := NewStateService(mockRepo, &logger)
	ctx := context.Background()
	userID := int64(123)

	t.Run("Success", func(t *testing.T) {
		expected := &models.UserState{UserID: userID, CurrentStep: models.StateContactPhone}
		mockRepo.On("GetState", ctx, userID).Return(expected, nil).Once()

		state, err := s.GetUserState(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, expected, state)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo.On("GetState", ctx, userID).Return(nil, errors.New("redis down")).Once()

		state, err := s.GetUserState(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, state)
	})
}

func TestStateService_SetUserState(t *testing.T) {
	mockRepo := new(MockStateRepository)
	logger := zerolog.Nop()
	s := NewStateService(mockRepo, &logger)
	ctx := context.Background()

	mockRepo.On("SetState", ctx, mock.MatchedBy(func(state *models.UserState) bool {
		return state.UserID == 123 && state.CurrentStep == models.StateCheckInRoom && state.TempData != nil
	})).Return(nil).Once()

	assert.NoError(t, s.SetUserState(ctx, 123, models.StateCheckInRoom, nil))
	mockRepo.AssertExpectations(t)
}

func TestStateService_CheckRateLimit(t *testing.T) {
	mockRepo := new(MockStateRepository)
	logger := zerolog.Nop()
	s := NewStateService(mockRepo, &logger)
	ctx := context.Background()

	mockRepo.On("CheckRateLimit", ctx, int64(123), 5, time.Minute).Return(true, nil).Once()
	allowed, err := s.CheckRateLimit(ctx, 123, 5, time.Minute)
	assert.NoError(t, err)
	assert.True(t, allowed)
}
