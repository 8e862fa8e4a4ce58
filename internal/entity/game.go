package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the state of a single match. The board is created once and reset between games.
type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Cell    `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
	Status  string  `json:"status"`
}

func NewGame(id string) *Game {
	game := &Game{}
	game.Reset(id)

	return game
}

// Reset clears the board and hands the first move to side A.
func (that *Game) Reset(id string) {
	that.ID = id
	that.Board = Board{}
	that.Turn = MarkA
	that.Outcome = OutcomeOngoing
	that.Status = StatusOngoing
}

// Finish records a terminal outcome. Nobody moves after the game is finished.
func (that *Game) Finish(outcome Outcome) {
	that.Outcome = outcome
	that.Status = StatusFinished
	that.Turn = EmptyCell
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
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
