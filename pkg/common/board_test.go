package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/8/8/8/8/8/5k2/7K b - - 12 1",
	} {
		var p, err = NewPositionFromFEN(fen)
		require.NoError(t, err)
		require.Equal(t, strings.Fields(fen)[:5], strings.Fields(p.String())[:5])
	}
}

func TestFenErrors(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8 w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQXBNR w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	} {
		var _, err = NewPositionFromFEN(fen)
		require.Error(t, err, fen)
	}
}

func TestIncrementalKey(t *testing.T) {
	var b = NewBoard()
	for _, lan := range []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "d8d2", "b1d2", "b7c6", "g1f3", "c6b5", "e1g1"} {
		require.NoError(t, b.MakeMoveLAN(lan))
		require.Equal(t, b.computeKey(), b.Key, lan)
	}
	require.Equal(t, 13, b.GamePly())
	require.Equal(t, King, b.WhatPiece(SquareG1))
}

func TestUndoRestoresPosition(t *testing.T) {
	var b, err = NewBoardFromFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	require.NoError(t, err)
	var before = b.Position
	var buffer [MaxMoves]Move
	for _, mv := range b.GenerateLegalMoves(false, buffer[:]) {
		require.True(t, b.MakeMove(mv))
		b.UndoMove()
		require.Equal(t, before, b.Position, mv.String())
	}
}

func TestIllegalMoveRejected(t *testing.T) {
	// the e-file pin makes every knight move illegal
	var b, err = NewBoardFromFEN("4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	require.NoError(t, err)
	var before = b.Position
	require.False(t, b.MakeMove(makeMove(ParseSquare("e2"), ParseSquare("c3"), Knight, Empty)))
	require.Equal(t, before, b.Position)
	require.Equal(t, 0, b.GamePly())
}

func TestRepetition(t *testing.T) {
	var b = NewBoard()
	b.SetRoot()
	for _, lan := range []string{"g1f3", "g8f6", "f3g1"} {
		require.NoError(t, b.MakeMoveLAN(lan))
		require.False(t, b.IsRepeatedPosition())
	}
	require.NoError(t, b.MakeMoveLAN("f6g8"))
	require.True(t, b.IsRepeatedPosition())
	require.Equal(t, 2, b.RepetitionCount())
	require.Equal(t, 4, b.Ply())

	// before the root only a threefold repetition counts
	b.SetRoot()
	require.False(t, b.IsRepeatedPosition())
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		require.NoError(t, b.MakeMoveLAN(lan))
	}
	b.SetRoot()
	require.True(t, b.IsRepeatedPosition())
	require.Equal(t, 3, b.RepetitionCount())
}

func TestRepetitionResetByPawnMove(t *testing.T) {
	var b = NewBoard()
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "e2e4", "e7e5", "g1f3", "g8f6", "f3g1", "f6g8"} {
		require.NoError(t, b.MakeMoveLAN(lan))
	}
	b.SetRoot()
	require.False(t, b.IsRepeatedPosition())
	require.Equal(t, 2, b.RepetitionCount())
}

func TestEnPassantSquareOnlyWhenCapturable(t *testing.T) {
	var b = NewBoard()
	require.NoError(t, b.MakeMoveLAN("e2e4"))
	require.Equal(t, SquareNone, b.EpSquare)
	require.Equal(t, b.computeKey(), b.Key)

	b, err := NewBoardFromFEN("rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.NoError(t, b.MakeMoveLAN("e2e4"))
	require.Equal(t, ParseSquare("e3"), b.EpSquare)
	require.Equal(t, b.computeKey(), b.Key)

	p, err := NewPositionFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	require.Equal(t, SquareNone, p.EpSquare)
	require.Equal(t, "-", strings.Fields(p.String())[3])
}

func TestRepetitionOfDoublePushPosition(t *testing.T) {
	var b = NewBoard()
	require.NoError(t, b.MakeMoveLAN("e2e4"))
	require.NoError(t, b.MakeMoveLAN("e7e5"))
	var key = b.Key
	b.SetRoot()
	for _, lan := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		require.NoError(t, b.MakeMoveLAN(lan))
	}
	require.Equal(t, key, b.Key)
	require.True(t, b.IsRepeatedPosition())
	require.Equal(t, 2, b.RepetitionCount())
}

func TestSAN(t *testing.T) {
	var b, err = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	var tests = []struct {
		san, lan string
	}{
		{"O-O", "e1g1"},
		{"O-O-O", "e1c1"},
		{"Nxf7", "e5f7"},
		{"dxe6", "d5e6"},
		{"Qxf6", "f3f6"},
		{"gxh3", "g2h3"},
		{"Rb1", "a1b1"},
		{"Bxa6", "e2a6"},
		{"a4", "a2a4"},
	}
	for _, test := range tests {
		var mv, err = b.ParseMoveSAN(test.san)
		require.NoError(t, err, test.san)
		require.Equal(t, test.lan, mv.String())
		require.Equal(t, test.san, b.MoveToSAN(mv))
	}
	var _, errNotFound = b.ParseMoveSAN("Ke3")
	require.ErrorIs(t, errNotFound, errMoveNotFound)
}

func TestSANDisambiguation(t *testing.T) {
	var b, err = NewBoardFromFEN("3k4/8/8/8/8/8/4K3/R6R w - - 0 1")
	require.NoError(t, err)
	var mv Move
	mv, err = b.ParseMoveLAN("a1d1")
	require.NoError(t, err)
	require.Equal(t, "Rad1", b.MoveToSAN(mv))

	b, err = NewBoardFromFEN("4k3/8/8/8/8/8/1P1P4/2N1K1N1 w - - 0 1")
	require.NoError(t, err)
	mv, err = b.ParseMoveLAN("c1e2")
	require.NoError(t, err)
	require.Equal(t, "Nce2", b.MoveToSAN(mv))
}

func TestPromotionLAN(t *testing.T) {
	var b, err = NewBoardFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	require.NoError(t, b.MakeMoveLAN("a7a8n"))
	require.Equal(t, Knight, b.WhatPiece(SquareA8))
	b.UndoMove()
	require.NoError(t, b.MakeMoveSAN("a8=Q+"))
	require.Equal(t, Queen, b.WhatPiece(SquareA8))
}

func TestInsufficientMaterial(t *testing.T) {
	var b, err = NewBoardFromFEN("8/8/4k3/8/8/3NK3/8/8 w - - 0 1")
	require.NoError(t, err)
	require.True(t, b.IsInsufficientMaterial())
	b, err = NewBoardFromFEN("8/8/4k3/8/8/3RK3/8/8 w - - 0 1")
	require.NoError(t, err)
	require.False(t, b.IsInsufficientMaterial())
}
