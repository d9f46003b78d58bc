package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

// expiringTimer runs out of time on the given RemainingMs call once armed.
type expiringTimer struct {
	armed bool
	calls int
	after int
}

func (t *expiringTimer) ElapsedMs() int64 {
	return 0
}

func (t *expiringTimer) RemainingMs() int64 {
	if t.armed {
		t.calls++
		if t.calls >= t.after {
			return -1
		}
	}
	return 1 << 40
}

func isLegal(b *Board, move Move) bool {
	return isLegalMove(b, move)
}

func TestChooseMoveIsLegal(t *testing.T) {
	var e = newTestEngine(3)
	for _, fen := range []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	} {
		var b, err = NewBoardFromFEN(fen)
		require.NoError(t, err)
		var key = b.Key
		var move = e.ChooseMove(context.Background(), e.NewSession(), b, NewClock(24*time.Hour))
		require.True(t, isLegal(b, move), fen)
		require.Equal(t, key, b.Key)
	}
}

func TestChooseMoveNoLegalMoves(t *testing.T) {
	var e = newTestEngine(3)
	var b, err = NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, MoveEmpty, e.ChooseMove(context.Background(), e.NewSession(), b, NewClock(time.Second)))
}

func TestThinkMateInOne(t *testing.T) {
	var e = newTestEngine(3)
	var b, err = NewBoardFromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	var session = e.NewSession()
	var info = e.Think(context.Background(), session, b, NewClock(24*time.Hour))
	require.Equal(t, "a1a8", info.BestMove().String())
	require.Equal(t, 1, info.Score.Mate)
	require.Equal(t, 3, info.Depth)
	require.Equal(t, session.transTable.Fill(), info.HashFull)
	require.Contains(t, info.String(), "hashfull")
}

func TestThinkStopsAfterProvenMate(t *testing.T) {
	var e = newTestEngine(100)
	var b, err = NewBoardFromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	var info = e.Think(context.Background(), e.NewSession(), b, NewClock(24*time.Hour))
	require.Equal(t, "a1a8", info.BestMove().String())
	require.Equal(t, 1, info.Score.Mate)
	// mate in one ply is proven once depth-5 reaches it
	require.Equal(t, 6, info.Depth)
}

func TestThinkOpening(t *testing.T) {
	var e = newTestEngine(1)
	var b = NewBoard()
	var move = e.ChooseMove(context.Background(), e.NewSession(), b, NewClock(24*time.Hour))
	require.Equal(t, "d2d4", move.String())
	require.Contains(t, []string{"e2e4", "d2d4", "g1f3", "c2c4"}, move.String())
}

func TestThinkOpeningWithGameClock(t *testing.T) {
	var e = NewEngine(NewOptions())
	var b = NewBoard()
	var key = b.Key
	var info = e.Think(context.Background(), e.NewSession(), b, NewClock(60*time.Second))
	require.GreaterOrEqual(t, info.Depth, 1)
	require.True(t, isLegal(b, info.BestMove()))
	require.Equal(t, key, b.Key)
	// the safety factor ends the search once elapsed time passes remaining/301
	require.Less(t, info.Time, 10*time.Second)
}

func TestThinkDepths(t *testing.T) {
	// the knight check forks king and rook
	const fen = "r3k3/8/8/3N4/8/8/8/4K3 w - - 0 1"
	for depth := 1; depth <= 5; depth++ {
		var e = newTestEngine(depth)
		var b, err = NewBoardFromFEN(fen)
		require.NoError(t, err)
		var info = e.Think(context.Background(), e.NewSession(), b, NewClock(24*time.Hour))
		require.Equal(t, depth, info.Depth)
		require.True(t, isLegal(b, info.BestMove()))
		if depth >= 3 {
			require.Equal(t, "d5c7", info.BestMove().String(), "depth %v", depth)
			require.Greater(t, info.Score.Centipawns, 200)
		}
	}
}

func TestThinkStopsOnExhaustedClock(t *testing.T) {
	var e = newTestEngine(100)
	var b = NewBoard()
	var clock = NewClock(0)
	time.Sleep(2 * time.Millisecond)
	var info = e.Think(context.Background(), e.NewSession(), b, clock)
	require.Equal(t, 1, info.Depth)
	require.True(t, isLegal(b, info.BestMove()))
}

func TestThinkDiscardsAbortedIteration(t *testing.T) {
	var timer = &expiringTimer{after: 2}
	var completed []SearchInfo
	var options = NewOptions()
	options.Hash = 4
	options.Progress = func(si SearchInfo) {
		completed = append(completed, si)
		timer.armed = true
	}
	var e = NewEngine(options)
	var b, err = NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var info = e.Think(context.Background(), e.NewSession(), b, timer)
	require.Len(t, completed, 1)
	require.Equal(t, 1, info.Depth)
	require.Equal(t, completed[0].BestMove(), info.BestMove())
	require.Greater(t, info.Nodes, completed[0].Nodes)
	require.Equal(t, 0, b.Ply())
}

func TestThinkCancelledContext(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	var options = NewOptions()
	options.Hash = 4
	options.Progress = func(si SearchInfo) {
		if si.Depth == 2 {
			cancel()
		}
	}
	var e = NewEngine(options)
	var info = e.Think(ctx, e.NewSession(), NewBoard(), NewClock(24*time.Hour))
	require.Equal(t, 2, info.Depth)
}

func TestSessionPersistsAcrossTurns(t *testing.T) {
	var e = newTestEngine(4)
	var session = e.NewSession()
	require.NotEmpty(t, session.ID)
	require.NotEqual(t, session.ID, e.NewSession().ID)

	var b = NewBoard()
	var first = e.Think(context.Background(), session, b, NewClock(24*time.Hour))
	var entry, ok = session.transTable.Probe(b.Key)
	require.True(t, ok)
	require.Equal(t, first.BestMove(), entry.move)

	var second = e.Think(context.Background(), session, b, NewClock(24*time.Hour))
	require.Less(t, second.Nodes, first.Nodes)

	session.Clear()
	_, ok = session.transTable.Probe(b.Key)
	require.False(t, ok)
}

func TestUciScore(t *testing.T) {
	require.Equal(t, UciScore{Mate: 1}, newUciScore(winIn(1)))
	require.Equal(t, UciScore{Mate: 2}, newUciScore(winIn(3)))
	require.Equal(t, UciScore{Mate: -1}, newUciScore(lossIn(2)))
	require.Equal(t, UciScore{Centipawns: 35}, newUciScore(35))
	require.Equal(t, "mate -1", newUciScore(lossIn(2)).String())
}
