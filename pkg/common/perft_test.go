package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{InitialPositionFen, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 3, 97862},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 5, 674624},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},
	}
	for _, test := range tests {
		var b, err = NewBoardFromFEN(test.fen)
		require.NoError(t, err)
		var key = b.Key
		require.Equal(t, test.nodes, perft(b, test.depth, false), test.fen)
		require.Equal(t, key, b.Key, "make/undo must restore the key")
	}
}

func TestPerftCaptures(t *testing.T) {
	var tests = []struct {
		fen      string
		depth    int
		captures int
	}{
		{InitialPositionFen, 4, 1576},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 1, 8},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 2, 351},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 87},
	}
	for _, test := range tests {
		var b, err = NewBoardFromFEN(test.fen)
		require.NoError(t, err)
		require.Equal(t, test.captures, perft(b, test.depth, true), test.fen)
	}
}

// perft counts leaf moves. With capturesOnly the last ply counts captures only.
func perft(b *Board, depth int, capturesOnly bool) int {
	var buffer [MaxMoves]Move
	if depth == 1 {
		return len(b.GenerateLegalMoves(capturesOnly, buffer[:]))
	}
	var result = 0
	for _, move := range b.GenerateLegalMoves(false, buffer[:]) {
		b.MakeMove(move)
		result += perft(b, depth-1, capturesOnly)
		b.UndoMove()
	}
	return result
}
