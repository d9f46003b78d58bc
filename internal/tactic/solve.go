package tactic

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

type Result struct {
	Solved int
	Total  int
}

// SolveTactic searches the positions on concurrency workers. Each worker owns one
// Session and clears it before every position, so results do not depend on order.
func SolveTactic(ctx context.Context, eng *engine.Engine, tests []EpdItem,
	moveTime time.Duration, concurrency int) (Result, error) {

	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	concurrency = min(concurrency, len(tests))
	log.Info().
		Int("positions", len(tests)).
		Dur("moveTime", moveTime).
		Int("concurrency", concurrency).
		Msg("solveTactic started")
	var start = time.Now()

	var solved atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	var items = make(chan *EpdItem)
	g.Go(func() error {
		defer close(items)
		for i := range tests {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case items <- &tests[i]:
			}
		}
		return nil
	})
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			var session = eng.NewSession()
			for test := range items {
				var ok, err = solve(ctx, eng, session, test, moveTime)
				if err != nil {
					return err
				}
				if ok {
					solved.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var result = Result{Solved: int(solved.Load()), Total: len(tests)}
	log.Info().
		Int("solved", result.Solved).
		Int("total", result.Total).
		Dur("elapsed", time.Since(start)).
		Msg("solveTactic finished")
	return result, nil
}

func solve(ctx context.Context, eng *engine.Engine, session *engine.Session,
	test *EpdItem, moveTime time.Duration) (bool, error) {
	var board, err = common.NewBoardFromFEN(test.Fen)
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	session.Clear()
	var info = eng.Think(ctx, session, board,
		engine.NewMoveTimer(moveTime, eng.Options.SafetyFactor))
	var ok = test.IsBestMove(info.BestMove())
	log.Debug().
		Bool("solved", ok).
		Str("move", board.MoveToSAN(info.BestMove())).
		Int("depth", info.Depth).
		Str("score", info.Score.String()).
		Msg(test.Content)
	return ok, nil
}
