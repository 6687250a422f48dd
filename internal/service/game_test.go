package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var errRedisDown = errors.New("redis down")

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a new game with a generated id", func(t *testing.T) {
		// Given: a repository accepting writes
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Game")).Return(nil).Once()

		// When: creating a game for a human playing X
		game, err := NewGameService(repo).CreateGame(ctx, tictactoe.PlayerX)

		// Then: the game is stored with a UUID and an empty board
		require.NoError(t, err)
		_, parseErr := uuid.Parse(game.ID)
		require.NoError(t, parseErr)
		assert.Equal(t, tictactoe.InitialState(), game.Board)
		assert.Equal(t, tictactoe.PlayerO, game.BotMark)
		repo.AssertExpectations(t)
	})

	t.Run("Returns error when storage fails", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", ctx, mock.Anything).Return(errRedisDown).Once()

		game, err := NewGameService(repo).CreateGame(ctx, tictactoe.PlayerO)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns stored game", func(t *testing.T) {
		expected := entity.NewGame("g1", tictactoe.PlayerX)
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "g1").Return(expected, nil).Once()

		game, err := NewGameService(repo).GetGameByID(ctx, "g1")

		require.NoError(t, err)
		assert.Equal(t, expected, game)
	})

	t.Run("Wraps not found", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", ctx, "missing").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := NewGameService(repo).GetGameByID(ctx, "missing")

		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	repo := &mockGameRepo{}
	repo.On("DeleteByID", ctx, "g1").Return(nil).Once()
	repo.On("DeleteByID", ctx, "missing").Return(apperror.ErrGameNotFound).Once()

	svc := NewGameService(repo)

	require.NoError(t, svc.DeleteGame(ctx, "g1"))
	require.ErrorIs(t, svc.DeleteGame(ctx, "missing"), apperror.ErrGameNotFound)
	repo.AssertExpectations(t)
}
