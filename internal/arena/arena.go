package arena

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Run plays every opening twice, once with each colour for EngineA, and
// returns the match score from EngineA's point of view.
func Run(ctx context.Context, config Config) (Stats, error) {
	if config.EngineA == nil || config.EngineB == nil {
		return Stats{}, errors.New("arena needs two engines")
	}
	var openings = config.Openings
	if len(openings) == 0 {
		openings = getOpenings()
	}
	openings = shuffleOpenings(openings, config.Seed)
	var gameConcurrency = config.Concurrency
	if gameConcurrency <= 0 {
		gameConcurrency = runtime.NumCPU()
	}

	log.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("gameConcurrency", gameConcurrency).
		Int("openings", len(openings)).
		Dur("main", config.TimeControl.Main).
		Dur("increment", config.TimeControl.Increment).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	g.Go(func() error {
		for res := range gameResults {
			stats.add(res)
			log.Info().
				Int("game", res.gameInfo.gameNumber).
				Str("result", gameResultString(res.result)).
				Str("comment", res.comment).
				Int("plies", len(res.moves)).
				Msg("finished game")
			log.Info().Msg(stats.String())
		}
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < gameConcurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	log.Info().Msg("arena finished")
	return stats, nil
}

func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		var fen, err = parseOpening(opening)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: fen, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var contestantA = newContestant(config.EngineA)
	var contestantB = newContestant(config.EngineB)
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, contestantA, contestantB,
			config.TimeControl, config.MaxPlies, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
