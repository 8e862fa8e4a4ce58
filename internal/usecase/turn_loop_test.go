package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/search"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-solver/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
)

var (
	errSomeError    = errors.New("some error")
	errTerminalGone = errors.New("terminal is gone")
)

// playFirstEmpty is a predictable stand-in for the engine: it takes the first free cell.
func playFirstEmpty(game *entity.Game) error {
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if game.Board[row][col] == entity.EmptyCell {
				return tictactoe.MakeTurn(game, game.Turn, row, col)
			}
		}
	}

	return apperror.ErrNoAvailableMoves
}

func isError(target error) interface{} {
	return mock.MatchedBy(func(err error) bool {
		return errors.Is(err, target)
	})
}

func TestTurnLoop_PlayGame(t *testing.T) {
	t.Run("Plays until a line is completed", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X plays the main diagonal while O takes the first free cell
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{})

		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 0, nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(1, 1, nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(2, 2, nil).Once()
		mockBot.EXPECT().MakeTurn(mock.Anything).RunAndReturn(playFirstEmpty).Times(2)
		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Times(6)
		mockRenderer.EXPECT().RenderOutcome(entity.OutcomeWinA).Return(nil).Once()

		// When: one game is played
		outcome, err := turnLoop.PlayGame(ctx)

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinA, outcome)
	})

	t.Run("Rejects bad moves and asks again", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a move source that sends an off-board move, then an occupied cell
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{})

		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(3, 0, nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 0, nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 1, nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 0, io.EOF).Once()
		mockBot.EXPECT().MakeTurn(mock.Anything).RunAndReturn(playFirstEmpty).Once()
		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Times(3)
		mockRenderer.EXPECT().RenderInvalidMove(isError(apperror.ErrInvalidCell)).Return(nil).Once()
		mockRenderer.EXPECT().RenderInvalidMove(isError(apperror.ErrCellOccupied)).Return(nil).Once()

		// When: the game is played
		outcome, err := turnLoop.PlayGame(ctx)

		// Then: both bad moves were reported and the game stops at the end of input
		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, entity.OutcomeOngoing, outcome)
	})

	t.Run("Shows the engine hint before asking", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: hints are enabled
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{Hint: true})

		mockBot.EXPECT().
			Suggest(mock.Anything, entity.MarkA).
			Return(search.Result{Value: entity.ValueDraw, Row: 1, Col: 1}).
			Once()
		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Once()
		mockRenderer.EXPECT().RenderHint(1, 1).Return(nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 0, io.EOF).Once()

		// When: the game is played
		_, err := turnLoop.PlayGame(ctx)

		// Then: the hint was rendered before input ran out
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Returns bot errors", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the engine drives X and fails
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{Autoplay: true})

		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Once()
		mockBot.EXPECT().MakeTurn(mock.Anything).Return(errSomeError).Once()

		// When: the game is played
		_, err := turnLoop.PlayGame(ctx)

		// Then: the error is returned
		require.ErrorIs(t, err, errSomeError)
	})

	t.Run("Returns renderer errors", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a renderer that can't write
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{})

		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(errTerminalGone).Once()

		// When: the game is played
		_, err := turnLoop.PlayGame(ctx)

		// Then: the error is returned
		require.ErrorIs(t, err, errTerminalGone)
	})
}

func TestTurnLoop_Run(t *testing.T) {
	t.Run("Restarts after every game until the limit", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: both sides take the first free cell, so X wins on the anti-diagonal
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{Autoplay: true})

		mockBot.EXPECT().MakeTurn(mock.Anything).RunAndReturn(playFirstEmpty).Times(21)
		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Times(24)
		mockRenderer.EXPECT().RenderOutcome(entity.OutcomeWinA).Return(nil).Times(3)

		// When: three games are requested
		err := turnLoop.Run(ctx, 3)

		// Then: all three are played from an empty board
		require.NoError(t, err)
	})

	t.Run("Engine against engine always draws", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the real engine on both sides
		evaluator, err := search.New(search.AlgorithmAlphaBeta)
		require.NoError(t, err)

		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		bot := service.NewBotService(st.Logger, evaluator)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, bot, Options{Autoplay: true})

		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Times(20)
		mockRenderer.EXPECT().RenderOutcome(entity.OutcomeDraw).Return(nil).Times(2)

		// When: two games are played
		err = turnLoop.Run(ctx, 2)

		// Then: both end in a draw
		require.NoError(t, err)
	})

	t.Run("The engine never loses to a naive player", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a human that always picks the first free cell against the real engine
		evaluator, err := search.New(search.AlgorithmMinimax)
		require.NoError(t, err)

		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		bot := service.NewBotService(st.Logger, evaluator)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, bot, Options{})

		mockMoveSource.EXPECT().
			NextMove(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, board entity.Board) (int, int, error) {
				for row := range entity.BoardSize {
					for col := range entity.BoardSize {
						if board[row][col] == entity.EmptyCell {
							return row, col, nil
						}
					}
				}
				return 0, 0, io.EOF
			}).
			Maybe()
		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Maybe()

		var outcome entity.Outcome
		mockRenderer.EXPECT().
			RenderOutcome(mock.Anything).
			Run(func(o entity.Outcome) { outcome = o }).
			Return(nil).
			Once()

		// When: one game is played
		err = turnLoop.Run(ctx, 1)

		// Then: X never wins
		require.NoError(t, err)
		assert.True(t, outcome.IsTerminal())
		assert.NotEqual(t, entity.OutcomeWinA, outcome)
	})

	t.Run("Stops cleanly at the end of input", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a move source with nothing to read
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{})

		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 0, io.EOF).Once()

		// When: running without a game limit
		err := turnLoop.Run(ctx, 0)

		// Then: the session ends without an error
		require.NoError(t, err)
	})

	t.Run("Stops cleanly when canceled", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// Given: a canceled context
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{})

		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Once()

		// When: running
		err := turnLoop.Run(ctx, 0)

		// Then: no move is requested and no error is returned
		require.NoError(t, err)
	})

	t.Run("Returns other failures", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a move source that fails
		mockMoveSource := mockedUseCase.NewMockmoveSourceDep(t)
		mockRenderer := mockedUseCase.NewMockrendererDep(t)
		mockBot := mockedUseCase.NewMockbotServiceDep(t)
		turnLoop := NewTurnLoop(st.Logger, mockMoveSource, mockRenderer, mockBot, Options{})

		mockRenderer.EXPECT().RenderBoard(mock.Anything).Return(nil).Once()
		mockMoveSource.EXPECT().NextMove(mock.Anything, mock.Anything).Return(0, 0, errSomeError).Once()

		// When: running
		err := turnLoop.Run(ctx, 0)

		// Then: the failure is returned
		require.ErrorIs(t, err, errSomeError)
	})
}
