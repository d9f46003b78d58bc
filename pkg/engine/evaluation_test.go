package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

func TestEvaluateInitialPosition(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	require.NoError(t, err)
	require.Equal(t, 0, NewEvaluationService().Evaluate(&p))
}

func TestEvaluateSideToMove(t *testing.T) {
	var white, err = NewPositionFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	black, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	require.NoError(t, err)

	var e = NewEvaluationService()
	var score = e.Evaluate(&white)
	require.Greater(t, score, 800)
	require.Equal(t, -score, e.Evaluate(&black))
}

func TestEvaluateCentrality(t *testing.T) {
	var tests = []struct {
		fen  string
		want int
	}{
		// knight d1 -> d4: (-|7-0-3|-|0-3|)*4 = -28, (-|7-3-3|-|3-3|)*4 = -4
		{"4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", 300 - 4},
		{"4k3/8/8/8/8/8/8/3NK3 w - - 0 1", 300 - 28},
		// pawn on e4 and kings cancel out against each other
		{"4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", 100 - 5},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		require.NoError(t, err)
		var kings = pieceSquare[King][SquareE1] - pieceSquare[King][SquareE8]
		require.Equal(t, test.want+kings, e.Evaluate(&p), test.fen)
	}
}

func TestCentralPawnMovesScoreBest(t *testing.T) {
	var gain = func(from, to string) int {
		return pieceSquare[Pawn][ParseSquare(to)] - pieceSquare[Pawn][ParseSquare(from)]
	}
	require.Equal(t, 20, gain("e2", "e4"))
	require.Equal(t, 20, gain("d2", "d4"))
	require.Equal(t, 10, gain("c2", "c4"))
	require.Equal(t, 16, pieceSquare[Knight][ParseSquare("f3")]-pieceSquare[Knight][ParseSquare("g1")])
}
