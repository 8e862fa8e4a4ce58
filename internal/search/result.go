package search

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// NoMove is the coordinate returned when the position is already terminal.
const NoMove = -1

// Bounds outside the legal value range, used as initial best values and root window.
const (
	MinBound = -2
	MaxBound = 2
)

// Result is the value of a position for the maximizing side (B) together with the best move.
// Nodes counts the states visited to produce it, the root included.
type Result struct {
	Value int
	Row   int
	Col   int
	Nodes int
}

func (that Result) HasMove() bool {
	return that.Row != NoMove && that.Col != NoMove
}

func terminalResult(outcome entity.Outcome) Result {
	return Result{Value: outcome.Value(), Row: NoMove, Col: NoMove, Nodes: 1}
}
