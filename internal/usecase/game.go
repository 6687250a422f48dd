package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GameUseCase interface {
	StartGame(ctx context.Context, mark string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string) error
}

type gameService interface {
	CreateGame(ctx context.Context, humanMark tictactoe.Mark) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

type gameUseCase struct {
	logger *slog.Logger

	gameService gameService
	botService  botService
}

func NewGameUseCase(logger *slog.Logger, gameService gameService, botService botService) GameUseCase {
	return &gameUseCase{
		logger:      logger.With("component", "usecase"),
		gameService: gameService,
		botService:  botService,
	}
}

// StartGame creates a game for the human with the requested mark. When the bot plays X it
// opens right away.
func (that *gameUseCase) StartGame(ctx context.Context, mark string) (*entity.Game, error) {
	humanMark, err := entity.ParseMark(mark)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	game, err := that.gameService.CreateGame(ctx, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}

		if err = that.gameService.UpdateGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
	}

	that.logger.Info("game started", "gameID", game.ID, "humanMark", game.HumanMark)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human move and, unless that ended the game, the bot's reply.
func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.MakeTurn(game.HumanMark, move); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	} else {
		log.Debug("turn played", "board", game.Board.String())
	}

	return game, nil
}

func (that *gameUseCase) AbandonGame(ctx context.Context, gameID string) error {
	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to abandon game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", gameID)

	return nil
}
