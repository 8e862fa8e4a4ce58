package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type moveSourceDep interface {
	NextMove(ctx context.Context, board entity.Board) (int, int, error)
}

type rendererDep interface {
	RenderBoard(board entity.Board) error
	RenderHint(row, col int) error
	RenderInvalidMove(err error) error
	RenderOutcome(outcome entity.Outcome) error
}

type botServiceDep interface {
	Suggest(board *entity.Board, mark entity.Cell) search.Result
	MakeTurn(game *entity.Game) error
}

type Options struct {
	// Hint shows the engine's recommended move before side A is asked for one.
	Hint bool
	// Autoplay lets the engine move for side A as well.
	Autoplay bool
}

// TurnLoop alternates side A (external move source) and side B (engine) and restarts
// the game every time one finishes.
type TurnLoop struct {
	logger *slog.Logger

	moveSource moveSourceDep
	renderer   rendererDep
	bot        botServiceDep

	options Options
	game    *entity.Game
}

func NewTurnLoop(logger *slog.Logger, moveSource moveSourceDep, renderer rendererDep, bot botServiceDep, options Options) *TurnLoop {
	return &TurnLoop{
		logger: logger.With("component", "turn_loop"),

		moveSource: moveSource,
		renderer:   renderer,
		bot:        bot,

		options: options,
		game:    entity.NewGame(""),
	}
}

// Run plays games until the limit is reached (0 means no limit), the move source runs dry
// or ctx is canceled. The last two end the session without an error.
func (that *TurnLoop) Run(ctx context.Context, games int) error {
	log := that.logger.With("method", "Run")

	for played := 0; games == 0 || played < games; played++ {
		outcome, err := that.PlayGame(ctx)
		switch {
		case errors.Is(err, io.EOF):
			log.Info("move source exhausted, stopping", "played", played)
			return nil
		case errors.Is(err, context.Canceled):
			log.Info("session canceled, stopping", "played", played)
			return nil
		case err != nil:
			return fmt.Errorf("failed to play game: %w", err)
		}

		log.Info("game finished", "gameID", that.game.ID, "outcome", outcome.String())
	}

	return nil
}

// PlayGame resets the board and plays one game to its end.
func (that *TurnLoop) PlayGame(ctx context.Context) (entity.Outcome, error) {
	that.game.Reset(pkg.GenerateGameID())

	for {
		if err := that.renderer.RenderBoard(that.game.Board); err != nil {
			return entity.OutcomeOngoing, fmt.Errorf("failed to render board: %w", err)
		}

		if outcome := tictactoe.Evaluate(&that.game.Board); outcome.IsTerminal() {
			that.game.Finish(outcome)

			if err := that.renderer.RenderOutcome(outcome); err != nil {
				return outcome, fmt.Errorf("failed to render outcome: %w", err)
			}

			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return entity.OutcomeOngoing, err
		}

		if err := that.takeTurn(ctx); err != nil {
			return entity.OutcomeOngoing, fmt.Errorf("turn of %s failed: %w", that.game.Turn, err)
		}
	}
}

func (that *TurnLoop) takeTurn(ctx context.Context) error {
	if that.game.Turn == entity.MarkA && !that.options.Autoplay {
		return that.humanTurn(ctx)
	}

	if err := that.bot.MakeTurn(that.game); err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	return nil
}

// humanTurn asks the move source until it supplies a legal move. Bad coordinates are
// reported back and never corrected.
func (that *TurnLoop) humanTurn(ctx context.Context) error {
	log := that.logger.With("method", "humanTurn", "gameID", that.game.ID)

	if that.options.Hint {
		if hint := that.bot.Suggest(&that.game.Board, entity.MarkA); hint.HasMove() {
			if err := that.renderer.RenderHint(hint.Row, hint.Col); err != nil {
				return fmt.Errorf("failed to render hint: %w", err)
			}
		}
	}

	for {
		row, col, err := that.moveSource.NextMove(ctx, that.game.Board)
		if err != nil {
			return fmt.Errorf("failed to get move: %w", err)
		}

		err = tictactoe.MakeTurn(that.game, entity.MarkA, row, col)
		if err == nil {
			return nil
		}

		if !errors.Is(err, apperror.ErrInvalidCell) && !errors.Is(err, apperror.ErrCellOccupied) {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move rejected", "row", row, "col", col, "error", err)

		if err = that.renderer.RenderInvalidMove(err); err != nil {
			return fmt.Errorf("failed to render rejection: %w", err)
		}
	}
}
