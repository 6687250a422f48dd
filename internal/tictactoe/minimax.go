package tictactoe

// Minimax returns the optimal move for the player to move on board, assuming both sides play
// optimally afterwards. It reports false when board is terminal.
//
// Among equally good moves the first one in Actions order wins. X's opening move on the empty
// board is fixed to (0,0) without searching: every opening is worth a draw.
func Minimax(board Board) (Move, bool) {
	if Terminal(board) {
		return Move{}, false
	}

	if Player(board) == PlayerO {
		return bestMove(board, maxValue, func(value, best int) bool { return value < best })
	}

	if board == InitialState() {
		return Move{Row: 0, Col: 0}, true
	}

	return bestMove(board, minValue, func(value, best int) bool { return value > best })
}

// bestMove scores every child of board with value and keeps the first strictly better one.
func bestMove(board Board, value func(Board) int, better func(value, best int) bool) (Move, bool) {
	var (
		selected Move
		best     int
		found    bool
	)

	for _, move := range Actions(board) {
		v := value(place(board, move))
		if !found || better(v, best) {
			selected, best, found = move, v, true
		}
	}

	return selected, found
}

// maxValue is the backed-up value of board when X is to move.
func maxValue(board Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	value := UtilityOWins
	for _, move := range Actions(board) {
		value = max(value, minValue(place(board, move)))
	}

	return value
}

// minValue is the backed-up value of board when O is to move.
func minValue(board Board) int {
	if Terminal(board) {
		return Utility(board)
	}

	value := UtilityXWins
	for _, move := range Actions(board) {
		value = min(value, maxValue(place(board, move)))
	}

	return value
}
