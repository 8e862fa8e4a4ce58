package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrMalformedInput = errors.New("expected two numbers: row and column")

const prompt = "Your move (row col): "

// Console reads moves from in and draws the game to out. It serves as both the move
// source and the renderer of the turn loop.
type Console struct {
	w      io.Writer
	output *termenv.Output
	color  bool

	scanner *bufio.Scanner
	lines   chan string
	scanErr error
	once    sync.Once
}

// New creates a console. Colors are used only when color is set and out is a terminal.
func New(in io.Reader, out io.Writer, color bool) *Console {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		w:       out,
		output:  termenv.NewOutput(out, opts...),
		color:   color,
		scanner: bufio.NewScanner(in),
		lines:   make(chan string),
	}
}

// NextMove prompts until a line with two integers is read. Range and occupancy are
// left to the caller. It returns io.EOF once the input is exhausted.
func (that *Console) NextMove(ctx context.Context, _ entity.Board) (int, int, error) {
	that.once.Do(func() {
		go that.readLines()
	})

	for {
		if _, err := fmt.Fprint(that.w, prompt); err != nil {
			return 0, 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		case text, ok := <-that.lines:
			if !ok {
				if that.scanErr != nil {
					return 0, 0, fmt.Errorf("failed to read move: %w", that.scanErr)
				}
				return 0, 0, io.EOF
			}

			row, col, err := parseMove(text)
			if err == nil {
				return row, col, nil
			}

			if _, err = fmt.Fprintf(that.w, "Invalid input %q: %v\n", text, err); err != nil {
				return 0, 0, fmt.Errorf("failed to write input error: %w", err)
			}
		}
	}
}

func (that *Console) readLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- that.scanner.Text()
	}

	that.scanErr = that.scanner.Err()
}

// parseMove accepts "1 2", "1,2" or "1, 2".
func parseMove(text string) (int, int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, ErrMalformedInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return row, col, nil
}
