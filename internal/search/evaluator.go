package search

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	AlgorithmMinimax   = "minimax"
	AlgorithmAlphaBeta = "alphabeta"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// Evaluator searches a position for either side.
type Evaluator interface {
	Name() string
	MaxSearch(board *entity.Board) Result
	MinSearch(board *entity.Board) Result
}

// New returns the evaluator registered under name.
func New(name string) (Evaluator, error) {
	switch name {
	case AlgorithmMinimax:
		return minimax{}, nil
	case AlgorithmAlphaBeta:
		return alphaBeta{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

type minimax struct{}

func (minimax) Name() string { return AlgorithmMinimax }

func (minimax) MaxSearch(board *entity.Board) Result { return MaxSearch(board) }

func (minimax) MinSearch(board *entity.Board) Result { return MinSearch(board) }

type alphaBeta struct{}

func (alphaBeta) Name() string { return AlgorithmAlphaBeta }

func (alphaBeta) MaxSearch(board *entity.Board) Result {
	return MaxSearchAB(board, MinBound, MaxBound)
}

func (alphaBeta) MinSearch(board *entity.Board) Result {
	return MinSearchAB(board, MinBound, MaxBound)
}
