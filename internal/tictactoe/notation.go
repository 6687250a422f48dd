package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid board notation")

// String renders the board row by row, "X.O/.X./..O".
func (that Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			if cell == EmptyCell {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

// ParseBoard reads the notation produced by Board.String. Row separators are optional and
// '_', '-' or ' ' may stand for an empty cell. Turn parity is not checked.
func ParseBoard(notation string) (Board, error) {
	var (
		board Board
		n     int
	)

	for _, r := range notation {
		if r == '/' {
			continue
		}

		if n == size*size {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrInvalidNotation, size*size, notation)
		}

		var mark Mark
		switch r {
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '.', '_', '-', ' ':
			mark = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidNotation, r)
		}

		board[n/size][n%size] = mark
		n++
	}

	if n != size*size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidNotation, n, size*size)
	}

	return board, nil
}
