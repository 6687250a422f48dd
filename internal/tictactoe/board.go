package tictactoe

import (
	"errors"
	"fmt"
)

// Mark is the content of a single cell. PlayerX and PlayerO double as player values.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const size = 3

var ErrInvalidMove = errors.New("invalid move")

// Board is a 3x3 grid indexed [row][col]. It is a value type, so assignment copies it.
type Board [size][size]Mark

// Move identifies a cell by zero-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that Move) inBounds() bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// Player returns the mark that moves next on board. X moves whenever the counts are equal.
func Player(board Board) Mark {
	var xMoves, oMoves int

	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				xMoves++
			case PlayerO:
				oMoves++
			}
		}
	}

	if xMoves > oMoves {
		return PlayerO
	}

	return PlayerX
}

// Actions returns every empty cell in row-major order.
func Actions(board Board) []Move {
	moves := make([]Move, 0, size*size)

	for i, row := range board {
		for j, cell := range row {
			if cell == EmptyCell {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Result returns a copy of board with the mover's mark placed at move.
// The input board is never modified.
func Result(board Board, move Move) (Board, error) {
	if !move.inBounds() {
		return board, fmt.Errorf("%w: %s is out of range", ErrInvalidMove, move)
	}

	if board[move.Row][move.Col] != EmptyCell {
		return board, fmt.Errorf("%w: %s is already occupied", ErrInvalidMove, move)
	}

	return place(board, move), nil
}

// place applies a move already known to be legal.
func place(board Board, move Move) Board {
	board[move.Row][move.Col] = Player(board)
	return board
}

// Opponent returns the other player's mark.
func Opponent(mark Mark) Mark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
