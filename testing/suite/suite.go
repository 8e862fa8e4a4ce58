package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ParseBoard builds a board from three rows such as "XO.", where '.' is an empty cell.
func ParseBoard(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	if len(rows) != entity.BoardSize {
		t.Fatalf("expected %d rows, got %d", entity.BoardSize, len(rows))
	}

	var board entity.Board
	for row, line := range rows {
		if len(line) != entity.BoardSize {
			t.Fatalf("row %d: expected %d cells, got %q", row, entity.BoardSize, line)
		}

		for col, r := range line {
			switch r {
			case 'X':
				board[row][col] = entity.MarkA
			case 'O':
				board[row][col] = entity.MarkB
			case '.':
				board[row][col] = entity.EmptyCell
			default:
				t.Fatalf("row %d: unknown mark %q", row, r)
			}
		}
	}

	return board
}
