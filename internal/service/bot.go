package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type BotService interface {
	// Suggest searches the board for mark without changing it.
	Suggest(board *entity.Board, mark entity.Cell) search.Result
	// MakeTurn plays the searched move for the side whose turn it is.
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger    *slog.Logger
	evaluator search.Evaluator
}

func NewBotService(logger *slog.Logger, evaluator search.Evaluator) BotService {
	return &botService{
		logger:    logger.With("component", "bot", "algorithm", evaluator.Name()),
		evaluator: evaluator,
	}
}

func (that *botService) Suggest(board *entity.Board, mark entity.Cell) search.Result {
	start := time.Now()

	var result search.Result
	if mark == entity.MarkB {
		result = that.evaluator.MaxSearch(board)
	} else {
		result = that.evaluator.MinSearch(board)
	}

	that.logger.Info("search completed",
		"mark", mark.String(),
		"value", result.Value,
		"row", result.Row,
		"col", result.Col,
		"nodes", result.Nodes,
		"duration", time.Since(start),
	)

	return result
}

func (that *botService) MakeTurn(game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("bot can't move: %w", err)
	}

	result := that.Suggest(&game.Board, game.Turn)
	if !result.HasMove() {
		return apperror.ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(game, game.Turn, result.Row, result.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
