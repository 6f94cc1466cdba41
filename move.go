package asteroidfield

// Move is one of the four directional move labels.
type Move string

const (
	Up    Move = "UP"
	Down  Move = "DOWN"
	Left  Move = "LEFT"
	Right Move = "RIGHT"
)

// moveOrder fixes the enumeration order used by MoveGen. Frontier contents,
// and therefore DFS/BFS traversal order, depend on it.
var moveOrder = [4]Move{Up, Down, Left, Right}

// Delta returns the unit (row, col) vector for the move.
func (m Move) Delta() (dr, dc int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}
