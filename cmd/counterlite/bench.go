package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

var benchmarkFens = []string{
	common.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

type benchmarkResult struct {
	nodes   int64
	elapsed time.Duration
}

func (r benchmarkResult) knps() int64 {
	var ms = r.elapsed.Milliseconds()
	if ms == 0 {
		return 0
	}
	return r.nodes / ms
}

func benchmarkHandler(ctx context.Context, eng *engine.Engine) error {
	log.Info().Int("depth", eng.Options.MaxDepth).Msg("benchmark started")
	defer log.Info().Msg("benchmark finished")

	var result, err = benchmark(ctx, eng, benchmarkFens)
	if err != nil {
		return err
	}
	fmt.Println("Time", result.elapsed)
	fmt.Println("Nodes", result.nodes)
	fmt.Println("kNPS", result.knps())
	return nil
}

// benchmark searches each position to the engine's depth limit, clearing the session in between.
func benchmark(ctx context.Context, eng *engine.Engine, fens []string) (benchmarkResult, error) {
	var start = time.Now()
	var session = eng.NewSession()
	var nodes int64
	for _, fen := range fens {
		var board, err = common.NewBoardFromFEN(fen)
		if err != nil {
			return benchmarkResult{}, err
		}
		session.Clear()
		var searchInfo = eng.Think(ctx, session, board, engine.NewClock(24*time.Hour))
		nodes += searchInfo.Nodes
	}
	return benchmarkResult{nodes: nodes, elapsed: time.Since(start)}, nil
}
