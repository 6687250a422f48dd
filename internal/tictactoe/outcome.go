package tictactoe

const (
	UtilityXWins = 1
	UtilityOWins = -1
	UtilityDraw  = 0
)

// WinCombos lists the winning triples over the row-major flattening of the board:
// rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func flatten(board Board) [size * size]Mark {
	var cells [size * size]Mark
	for i, row := range board {
		copy(cells[i*size:], row[:])
	}
	return cells
}

// Winner returns the mark of the first completed line in WinCombos order.
func Winner(board Board) (Mark, bool) {
	cells := flatten(board)

	for _, combo := range WinCombos {
		a, b, c := cells[combo[0]], cells[combo[1]], cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return EmptyCell, false
}

// Terminal reports whether the game on board is over: someone won or no cell is left.
func Terminal(board Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return len(Actions(board)) == 0
}

// Utility scores a terminal board from X's side: +1 X won, -1 O won, 0 otherwise.
// The result is meaningless for a board that is not terminal.
func Utility(board Board) int {
	switch winner, _ := Winner(board); winner {
	case PlayerX:
		return UtilityXWins
	case PlayerO:
		return UtilityOWins
	default:
		return UtilityDraw
	}
}
