package arena

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

// unlimited stands in for a missing clock.
const unlimited = 24 * time.Hour

// contestant is an engine with the Session a worker reuses from game to game.
type contestant struct {
	engine  *engine.Engine
	session *engine.Session
}

func newContestant(eng *engine.Engine) contestant {
	return contestant{engine: eng, session: eng.NewSession()}
}

type player struct {
	contestant
	remaining time.Duration
}

// playGame plays one game. Both Sessions are cleared first and then kept for the whole game.
func playGame(
	ctx context.Context,
	contestantA, contestantB contestant,
	tc TimeControl,
	maxPlies int,
	info gameInfo,
) (gameResult, error) {

	log.Debug().Int("game", info.gameNumber).Msg("started game")

	contestantA.session.Clear()
	contestantB.session.Clear()

	var b, err = common.NewBoardFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var main = tc.Main
	if main == 0 {
		main = unlimited
	}
	var a = &player{contestant: contestantA, remaining: main}
	var o = &player{contestant: contestantB, remaining: main}
	var white, black = a, o
	if !info.engineAIsWhite {
		white, black = o, a
	}

	var moves []string
	var finish = func(comment string, result int) (gameResult, error) {
		return gameResult{gameInfo: info, moves: moves, comment: comment, result: result}, nil
	}
	var buffer [common.MaxMoves]common.Move

	for {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var ml = b.GenerateLegalMoves(false, buffer[:])
		if len(ml) == 0 {
			if b.IsCheck() {
				return finish("checkmate", winner(!b.WhiteMove))
			}
			return finish("stalemate", gameResultDraw)
		}
		if b.Rule50 >= 100 {
			return finish("50 moves", gameResultDraw)
		}
		if b.IsInsufficientMaterial() {
			return finish("low material", gameResultDraw)
		}
		if b.RepetitionCount() >= 3 {
			return finish("3 fold repetition", gameResultDraw)
		}
		if maxPlies != 0 && len(moves) >= maxPlies {
			return finish("max plies", gameResultDraw)
		}

		var p = white
		if !b.WhiteMove {
			p = black
		}
		var start = time.Now()
		var bestMove = p.engine.ChooseMove(ctx, p.session, b, engine.NewClock(p.remaining))
		if tc.Main != 0 {
			p.remaining -= time.Since(start)
			if p.remaining < 0 {
				return finish("time forfeit", winner(!b.WhiteMove))
			}
			p.remaining += tc.Increment
		}
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if !containsMove(ml, bestMove) {
			return gameResult{}, fmt.Errorf("game %v: illegal move %v in %v", info.gameNumber, bestMove, b.String())
		}
		moves = append(moves, b.MoveToSAN(bestMove))
		b.MakeMove(bestMove)
	}
}

func winner(white bool) int {
	if white {
		return gameResultWhiteWins
	}
	return gameResultBlackWins
}

func containsMove(ml []common.Move, move common.Move) bool {
	for _, m := range ml {
		if m == move {
			return true
		}
	}
	return false
}
