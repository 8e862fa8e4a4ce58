package entity

// Outcome is the classification of a board produced by the terminal detector.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeWinA
	OutcomeWinB
	OutcomeDraw
)

// Values from the perspective of the maximizing side (B).
const (
	ValueLoss = -1
	ValueDraw = 0
	ValueWin  = 1
)

func (that Outcome) IsTerminal() bool {
	return that != OutcomeOngoing
}

// Value returns the game-theoretic value of a terminal outcome. Ongoing maps to ValueDraw
// and must not be used as a score.
func (that Outcome) Value() int {
	switch that {
	case OutcomeWinA:
		return ValueLoss
	case OutcomeWinB:
		return ValueWin
	default:
		return ValueDraw
	}
}

// Winner returns the mark that completed a line, or EmptyCell.
func (that Outcome) Winner() Cell {
	switch that {
	case OutcomeWinA:
		return MarkA
	case OutcomeWinB:
		return MarkB
	default:
		return EmptyCell
	}
}

// WinOutcome maps a winning mark to its outcome.
func WinOutcome(mark Cell) Outcome {
	if mark == MarkA {
		return OutcomeWinA
	}
	return OutcomeWinB
}

func (that Outcome) String() string {
	switch that {
	case OutcomeWinA:
		return "X wins"
	case OutcomeWinB:
		return "O wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}
