package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func (that *Console) RenderBoard(board entity.Board) error {
	var sb strings.Builder

	sb.WriteString("    0   1   2\n")
	for row, line := range board {
		cells := make([]string, 0, len(line))
		for _, cell := range line {
			cells = append(cells, that.mark(cell))
		}

		fmt.Fprintf(&sb, "%d   %s\n", row, strings.Join(cells, " | "))
	}
	sb.WriteByte('\n')

	if _, err := fmt.Fprint(that.w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Console) RenderHint(row, col int) error {
	if _, err := fmt.Fprintf(that.w, "Recommended move: row %d, col %d\n", row, col); err != nil {
		return fmt.Errorf("failed to write hint: %w", err)
	}

	return nil
}

func (that *Console) RenderInvalidMove(err error) error {
	if _, werr := fmt.Fprintf(that.w, "Invalid move, try again: %v\n", err); werr != nil {
		return fmt.Errorf("failed to write rejection: %w", werr)
	}

	return nil
}

func (that *Console) RenderOutcome(outcome entity.Outcome) error {
	var text string
	if winner := outcome.Winner(); winner != entity.EmptyCell {
		text = fmt.Sprintf("The winner is %s!", that.mark(winner))
	} else {
		text = "It's a draw!"
	}

	if that.color {
		text = that.output.String(text).Bold().String()
	}

	if _, err := fmt.Fprintf(that.w, "%s\n\n", text); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}

	return nil
}

// mark - side A is drawn red, side B blue.
func (that *Console) mark(cell entity.Cell) string {
	if !that.color {
		return cell.String()
	}

	style := that.output.String(cell.String())

	switch cell {
	case entity.MarkA:
		style = style.Foreground(that.output.Color("1")).Bold()
	case entity.MarkB:
		style = style.Foreground(that.output.Color("4")).Bold()
	default:
		style = style.Faint()
	}

	return style.String()
}
