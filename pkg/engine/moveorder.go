package engine

import (
	"math"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

// sortKeyTransMove puts the hash move ahead of every other key.
const sortKeyTransMove = math.MaxInt64

const sortKeyCapture = 10000

var sortPieceValues = [...]int64{Empty: 0, Pawn: 1, Knight: 2, Bishop: 3, Rook: 4, Queen: 5, King: 6}

// mvvlva prefers the most valuable victim, then the least valuable attacker.
func mvvlva(move Move) int64 {
	return sortKeyCapture + 10*sortPieceValues[move.CapturedPiece()] - sortPieceValues[move.MovingPiece()]
}

// orderMoves scores ml into buffer and sorts it by descending key.
// Moves with equal keys keep generation order.
func orderMoves(ml []Move, buffer []OrderedMove, transMove Move, history *historyTable) []OrderedMove {
	var result = buffer[:len(ml)]
	for i, m := range ml {
		var key int64
		if m == transMove {
			key = sortKeyTransMove
		} else if m.IsCapture() {
			key = mvvlva(m)
		} else {
			key = history.Score(m.From(), m.To())
		}
		result[i] = OrderedMove{Move: m, Key: key}
	}
	sortMoves(result)
	return result
}

func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}

func isSorted(moves []OrderedMove) bool {
	for i := 1; i < len(moves); i++ {
		if moves[i-1].Key < moves[i].Key {
			return false
		}
	}
	return true
}
