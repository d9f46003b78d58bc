package engine

import (
	"context"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

// searcher runs one ChooseMove. It mutates the board in place and restores it
// before every return.
type searcher struct {
	ctx        context.Context
	options    *Options
	evaluator  Evaluator
	session    *Session
	transTable *transTable
	board      *Board
	timer      Timer
	nodes      int64
	maxPly     int
	aborted    bool
	rootMove   Move
	rootScore  int
}

func newSearcher(ctx context.Context, e *Engine, session *Session, b *Board, timer Timer) *searcher {
	return &searcher{
		ctx:        ctx,
		options:    &e.Options,
		evaluator:  e.evaluator,
		session:    session,
		transTable: session.transTable,
		board:      b,
		timer:      timer,
	}
}

// timeUp is true when the rest of the clock is less than SafetyFactor times what this turn already used.
func (s *searcher) timeUp() bool {
	return s.timer.ElapsedMs()*int64(s.options.SafetyFactor) > s.timer.RemainingMs()
}

// isAborted polls the clock and the context every 256 nodes. Once set, the tag stays set.
func (s *searcher) isAborted() bool {
	if !s.aborted && s.nodes&255 == 0 {
		if s.ctx.Err() != nil || s.timeUp() {
			s.aborted = true
		}
	}
	return s.aborted
}

// search is fail-soft negamax with alpha-beta. depth <= 0 searches captures only.
// An aborted search returns 0 and leaves the transposition table untouched.
func (s *searcher) search(depth, alpha, beta, ply int) int {
	s.nodes++
	if ply > s.maxPly {
		s.maxPly = ply
	}
	var b = s.board

	if ply > 0 && b.IsRepeatedPosition() {
		return s.options.RepetitionScore
	}
	if s.isAborted() {
		return 0
	}

	var key = b.Key
	var transMove = MoveEmpty
	if entry, ok := s.transTable.Probe(key); ok {
		transMove = entry.move
		if ply > 0 && int(entry.depth) >= depth {
			var ttScore = int(entry.score)
			if entry.bound == boundExact ||
				entry.bound == boundLower && ttScore >= beta ||
				entry.bound == boundUpper && ttScore <= alpha {
				return ttScore
			}
		}
	}

	var isQuiescent = depth <= 0
	var inCheck = b.IsCheck()
	var bestScore = -valueInfinity

	if isQuiescent {
		// stand pat
		bestScore = s.evaluator.Evaluate(&b.Position)
		if bestScore >= beta {
			if bestScore > 0 {
				return bestScore - ply
			}
			return bestScore + ply
		}
		if bestScore < alpha-s.options.DeltaMargin {
			return alpha
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	var buffer [MaxMoves]Move
	var orderBuffer [MaxMoves]OrderedMove
	var ml = orderMoves(b.GenerateLegalMoves(isQuiescent, buffer[:]), orderBuffer[:],
		transMove, &s.session.history)

	if inCheck {
		depth++
	}

	var origAlpha = alpha
	var bestMove = MoveEmpty
	for i := range ml {
		var move = ml[i].Move
		b.MakeMove(move)
		var score int
		if i == 0 {
			score = -s.search(depth-1, -beta, -alpha, ply+1)
		} else {
			var reduction = 0
			if depth >= 3 && i >= 3 && !inCheck {
				reduction = 1
			}
			score = -s.search(depth-1-reduction, -(alpha + 1), -alpha, ply+1)
			if score > alpha && reduction > 0 {
				score = -s.search(depth-1, -(alpha + 1), -alpha, ply+1)
			}
			if alpha < score && score < beta {
				score = -s.search(depth-1, -beta, -alpha, ply+1)
			}
		}
		b.UndoMove()

		if s.aborted {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
			if ply == 0 {
				s.rootMove = move
				s.rootScore = score
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				s.session.history.OnCutoff(move, depth)
				break
			}
		}
	}

	if !isQuiescent && len(ml) == 0 {
		if inCheck {
			return lossIn(ply)
		}
		return valueDraw
	}

	var bound int
	if bestScore >= beta {
		bound = boundLower
	} else if bestScore > origAlpha {
		bound = boundExact
	} else {
		bound = boundUpper
	}
	s.transTable.Store(key, depth, bestScore, bound, bestMove)
	return bestScore
}

// principalVariation follows hash moves from the root, starting with the root move.
func (s *searcher) principalVariation(maxLength int) []Move {
	if s.rootMove == MoveEmpty {
		return nil
	}
	var b = s.board
	var line = []Move{s.rootMove}
	b.MakeMove(s.rootMove)
	for len(line) < maxLength && !b.IsRepeatedPosition() {
		var entry, ok = s.transTable.Probe(b.Key)
		if !ok || !isLegalMove(b, entry.move) {
			break
		}
		b.MakeMove(entry.move)
		line = append(line, entry.move)
	}
	for range line {
		b.UndoMove()
	}
	return line
}

func isLegalMove(b *Board, move Move) bool {
	if move == MoveEmpty {
		return false
	}
	var buffer [MaxMoves]Move
	for _, m := range b.GenerateLegalMoves(false, buffer[:]) {
		if m == move {
			return true
		}
	}
	return false
}
