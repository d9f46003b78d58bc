package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CounterLite/internal/arena"
	"github.com/ChizhovVadim/CounterLite/internal/logx"
	"github.com/ChizhovVadim/CounterLite/internal/tactic"
	"github.com/ChizhovVadim/CounterLite/pkg/common"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

func main() {
	var err = run(os.Args)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	var cliArgs = NewCommandArgs(args)
	log.Logger = logx.NewLogger(logx.ParseLevel(cliArgs.GetString("loglevel", "info")))

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var handler = NewCommandHandler()
	handler.Add("think", func() error {
		var fen = cliArgs.GetString("fen", common.InitialPositionFen)
		var moveTime = cliArgs.GetDuration("movetime", 3*time.Second)
		return thinkHandler(ctx, newEngine(cliArgs, "", 100, 0), fen, moveTime)
	})
	handler.Add("bench", func() error {
		var depth = cliArgs.GetInt("depth", 6)
		return benchmarkHandler(ctx, newEngine(cliArgs, "", depth, 0))
	})
	handler.Add("tactic", func() error {
		var path = mapPath(cliArgs.GetString("testpath", "~/chess/tests/tests.epd"))
		var moveTime = cliArgs.GetDuration("movetime", 3*time.Second)
		var concurrency = cliArgs.GetInt("concurrency", 0)
		return tacticHandler(ctx, newEngine(cliArgs, "", 100, toolHash), path, moveTime, concurrency)
	})
	handler.Add("arena", func() error {
		var engineA = newEngine(cliArgs, "a", 100, toolHash)
		var engineB = newEngine(cliArgs, "b", 100, toolHash)
		engineA.Options.Logger = engineA.Options.Logger.Level(zerolog.WarnLevel)
		engineB.Options.Logger = engineB.Options.Logger.Level(zerolog.WarnLevel)
		var config = arena.Config{
			EngineA: engineA,
			EngineB: engineB,
			TimeControl: arena.TimeControl{
				Main:      cliArgs.GetDuration("main", 10*time.Second),
				Increment: cliArgs.GetDuration("inc", 100*time.Millisecond),
			},
			Concurrency: cliArgs.GetInt("concurrency", 0),
			MaxPlies:    cliArgs.GetInt("maxplies", 400),
			Seed:        uint64(cliArgs.GetInt("seed", 0)),
		}
		var stats, err = arena.Run(ctx, config)
		if err != nil {
			return err
		}
		fmt.Println(stats)
		return nil
	})
	return handler.Execute(cliArgs.CommandName())
}

// toolHash is the default hash size in MB for commands that keep a Session per worker.
const toolHash = 128

// newEngine reads engine options from the arguments. A non-empty prefix
// selects per-engine overrides such as -ahash or -bdepth in the arena.
// Zero defaultHash keeps the engine default.
func newEngine(cliArgs *CommandArgs, prefix string, defaultDepth, defaultHash int) *engine.Engine {
	var options = engine.NewOptions()
	if defaultHash != 0 {
		options.Hash = defaultHash
	}
	options.Hash = cliArgs.GetInt("hash", options.Hash)
	options.Hash = cliArgs.GetInt(prefix+"hash", options.Hash)
	options.MaxDepth = cliArgs.GetInt("depth", defaultDepth)
	options.MaxDepth = cliArgs.GetInt(prefix+"depth", options.MaxDepth)
	options.SafetyFactor = cliArgs.GetInt(prefix+"safety", options.SafetyFactor)
	options.Logger = log.Logger
	return engine.NewEngine(options)
}

func thinkHandler(ctx context.Context, eng *engine.Engine, fen string, moveTime time.Duration) error {
	var board, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	var info = eng.Think(ctx, eng.NewSession(), board,
		engine.NewMoveTimer(moveTime, eng.Options.SafetyFactor))
	if info.BestMove() == common.MoveEmpty {
		return fmt.Errorf("no legal moves in %v", fen)
	}
	fmt.Println(info)
	fmt.Println("bestmove", info.BestMove(), board.MoveToSAN(info.BestMove()))
	return nil
}

func tacticHandler(ctx context.Context, eng *engine.Engine, path string,
	moveTime time.Duration, concurrency int) error {
	var tests, err = tactic.LoadEpd(path)
	if err != nil {
		return err
	}
	// per-iteration records would interleave across workers
	eng.Options.Logger = eng.Options.Logger.Level(zerolog.WarnLevel)
	result, err := tactic.SolveTactic(ctx, eng, tests, moveTime, concurrency)
	if err != nil {
		return err
	}
	fmt.Printf("Solved %v of %v\n", result.Solved, result.Total)
	return nil
}
