package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a human versus computer session around a single board.
type Game struct {
	ID        string          `json:"id"`
	Board     tictactoe.Board `json:"board"`
	HumanMark tictactoe.Mark  `json:"human_mark"`
	BotMark   tictactoe.Mark  `json:"bot_mark"`
	Turn      tictactoe.Mark  `json:"player_turn"`
	Winner    string          `json:"winner"`
	Status    string          `json:"status"`
}

func NewGame(id string, humanMark tictactoe.Mark) *Game {
	board := tictactoe.InitialState()

	return &Game{
		ID:        id,
		Board:     board,
		HumanMark: humanMark,
		BotMark:   tictactoe.Opponent(humanMark),
		Turn:      tictactoe.Player(board),
		Status:    StatusOngoing,
	}
}

// ParseMark validates a requested human mark. An empty value picks one at random.
func ParseMark(mark string) (tictactoe.Mark, error) {
	switch tictactoe.Mark(mark) {
	case tictactoe.PlayerX, tictactoe.PlayerO:
		return tictactoe.Mark(mark), nil
	case tictactoe.EmptyCell:
		return GetRandomMark(), nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}
}

func GetRandomMark() tictactoe.Mark {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return tictactoe.PlayerX
	}
	return tictactoe.PlayerO
}

// UpdateGameState derives winner, status and turn from the board.
func (that *Game) UpdateGameState() {
	if winner, ok := tictactoe.Winner(that.Board); ok {
		that.Winner = string(winner)
		that.Status = StatusFinished
		that.Turn = tictactoe.EmptyCell
		return
	}

	if tictactoe.Terminal(that.Board) {
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = tictactoe.EmptyCell
		return
	}

	that.Status = StatusOngoing
	that.Turn = tictactoe.Player(that.Board)
}

func (that *Game) MakeTurn(mark tictactoe.Mark, move tictactoe.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.Result(that.Board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
