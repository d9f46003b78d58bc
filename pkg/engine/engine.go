package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

type Evaluator interface {
	Evaluate(p *Position) int
}

// Engine holds configuration only. All search memory lives in a Session,
// so one Engine may serve several games at once.
type Engine struct {
	Options   Options
	evaluator Evaluator
}

// Session is the memory of one game: the transposition table and the history
// table survive from one turn to the next. A Session must not be used by two
// searches at the same time.
type Session struct {
	ID         string
	transTable *transTable
	history    historyTable
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options:   options,
		evaluator: NewEvaluationService(),
	}
}

func (e *Engine) NewSession() *Session {
	return &Session{
		ID:         uuid.NewString(),
		transTable: newTransTable(e.Options.Hash),
	}
}

// Clear forgets everything learned so far, as if a new game started.
func (s *Session) Clear() {
	s.transTable.Clear()
	s.history.Clear()
}

// ChooseMove returns the best move found within the time budget, or MoveEmpty
// when the side to move has no legal move.
func (e *Engine) ChooseMove(ctx context.Context, session *Session, b *Board, timer Timer) Move {
	return e.Think(ctx, session, b, timer).BestMove()
}

// Think searches with iterative deepening and reports the last completed iteration.
// An iteration cut short by the clock or by ctx is thrown away.
// The board is marked as the search root and is restored on return.
func (e *Engine) Think(ctx context.Context, session *Session, b *Board, timer Timer) SearchInfo {
	var start = time.Now()
	var logger = e.Options.Logger.With().Str("session", session.ID).Logger()
	b.SetRoot()

	var buffer [MaxMoves]Move
	var orderBuffer [MaxMoves]OrderedMove
	var rootMoves = b.GenerateLegalMoves(false, buffer[:])
	if len(rootMoves) == 0 {
		return SearchInfo{}
	}
	var transMove = MoveEmpty
	if entry, ok := session.transTable.Probe(b.Key); ok {
		transMove = entry.move
	}
	var ordered = orderMoves(rootMoves, orderBuffer[:], transMove, &session.history)

	var s = newSearcher(ctx, e, session, b, timer)
	var result = SearchInfo{
		MainLine: []Move{ordered[0].Move},
	}

	for depth := 1; depth <= e.Options.MaxDepth; depth++ {
		s.rootMove = MoveEmpty
		var score = s.search(depth, -valueInfinity, valueInfinity, 0)
		if s.aborted || s.rootMove == MoveEmpty {
			logger.Debug().
				Int("depth", depth).
				Int64("nodes", s.nodes).
				Msg("iteration aborted")
			break
		}

		result = SearchInfo{
			Depth:    depth,
			Score:    newUciScore(score),
			Nodes:    s.nodes,
			Time:     time.Since(start),
			MaxPly:   s.maxPly,
			HashFull: session.transTable.Fill(),
			MainLine: s.principalVariation(depth),
		}
		logger.Info().
			Int("depth", depth).
			Str("score", result.Score.String()).
			Int64("time", result.Time.Milliseconds()).
			Str("pv", pvString(result.MainLine)).
			Int64("nodes", result.Nodes).
			Int64("nps", result.Nps()).
			Int("maxply", result.MaxPly).
			Int("hashfull", result.HashFull).
			Msg("iteration complete")
		if e.Options.Progress != nil {
			e.Options.Progress(result)
		}

		if ctx.Err() != nil || s.timeUp() {
			break
		}
		if score >= winIn(depth-5) || score <= lossIn(depth-5) {
			break
		}
	}

	result.Nodes = s.nodes
	result.Time = time.Since(start)
	return result
}
