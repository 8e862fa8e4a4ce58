package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// MakeTurn places mark at (row, col) after validating the move, then updates the game outcome.
func MakeTurn(game *entity.Game, mark entity.Cell, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := ValidateMove(&game.Board, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[row][col] = mark
	updateGameStatus(game, mark)

	return nil
}

// ValidateMove - checks that the coordinates are on the board and the cell is free.
func ValidateMove(board *entity.Board, row, col int) error {
	if !entity.InRange(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if board[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, mark entity.Cell) {
	if outcome := Evaluate(&game.Board); outcome.IsTerminal() {
		game.Finish(outcome)
		return
	}

	game.Turn = mark.Opponent()
}
