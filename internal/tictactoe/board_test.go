package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, notation string) Board {
	t.Helper()

	board, err := ParseBoard(notation)
	require.NoError(t, err)

	return board
}

func TestInitialState(t *testing.T) {
	// When: the initial state is requested
	board := InitialState()

	// Then: every cell should be empty
	for _, row := range board {
		for _, cell := range row {
			assert.Equal(t, EmptyCell, cell)
		}
	}
	assert.Len(t, Actions(board), 9)
}

func TestPlayer(t *testing.T) {
	t.Run("X moves first on the empty board", func(t *testing.T) {
		assert.Equal(t, PlayerX, Player(InitialState()))
	})

	t.Run("O moves when X has one more mark", func(t *testing.T) {
		// Given: a board with two X and one O
		board := mustParse(t, "XX./.O./...")

		// When: deriving the player to move
		mover := Player(board)

		// Then: it should be O
		assert.Equal(t, PlayerO, mover)
	})

	t.Run("X moves when counts are equal", func(t *testing.T) {
		board := mustParse(t, "XO./.../...")

		assert.Equal(t, PlayerX, Player(board))
	})

	t.Run("X is returned for a board where O leads", func(t *testing.T) {
		board := mustParse(t, "OO./.../...")

		assert.Equal(t, PlayerX, Player(board))
	})

	t.Run("Alternates along a played game", func(t *testing.T) {
		// Given: the empty board
		board := InitialState()

		// When: every cell is filled in row-major order
		for i, move := range Actions(board) {
			expected := PlayerX
			if i%2 == 1 {
				expected = PlayerO
			}

			// Then: the mover alternates starting with X
			require.Equal(t, expected, Player(board))

			var err error
			board, err = Result(board, move)
			require.NoError(t, err)
		}
	})
}

func TestActions(t *testing.T) {
	t.Run("Lists empty cells in row-major order", func(t *testing.T) {
		// Given: a partially played board
		board := mustParse(t, "X.O/.X./O..")

		// When: enumerating the legal moves
		moves := Actions(board)

		// Then: only the empty cells should be returned
		assert.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, moves)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		board := mustParse(t, "XOX/XOO/OXX")

		assert.Empty(t, Actions(board))
	})
}

func TestResult(t *testing.T) {
	t.Run("Places the mover's mark on a copy", func(t *testing.T) {
		// Given: a board where O is to move
		board := mustParse(t, "X../.../...")
		before := board

		// When: O plays the center
		next, err := Result(board, Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the new board holds O in the center and the input is unchanged
		assert.Equal(t, mustParse(t, "X../.O./..."), next)
		assert.Equal(t, before, board)
	})

	t.Run("Only the chosen cell differs", func(t *testing.T) {
		board := mustParse(t, "XO./.X./..O")

		for _, move := range Actions(board) {
			next, err := Result(board, move)
			require.NoError(t, err)

			for i := range next {
				for j := range next[i] {
					if i == move.Row && j == move.Col {
						assert.Equal(t, Player(board), next[i][j])
						continue
					}
					assert.Equal(t, board[i][j], next[i][j])
				}
			}
		}
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with X in the corner
		board := mustParse(t, "X../.../...")

		// When: O tries to play the same cell
		_, err := Result(board, Move{Row: 0, Col: 0})

		// Then: ErrInvalidMove should be returned
		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		board := InitialState()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {20, 20}} {
			_, err := Result(board, move)
			assert.ErrorIs(t, err, ErrInvalidMove, "move %s", move)
		}
	})
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, PlayerO, Opponent(PlayerX))
	assert.Equal(t, PlayerX, Opponent(PlayerO))
}
