package engine

import (
	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

var pieceValues = [...]int{Empty: 0, Pawn: 100, Knight: 300, Bishop: 320, Rook: 500, Queen: 900, King: 10000}

// pieceSquare[kind][sq] is material plus centrality, from white's side of the board.
// Centrality is symmetric under the vertical flip, so the same table serves black.
var pieceSquare [King + 1][64]int

func init() {
	for kind := Pawn; kind <= King; kind++ {
		for sq := 0; sq < 64; sq++ {
			var r, f = Rank(sq), File(sq)
			var centrality = -AbsDelta(7-r, f) - AbsDelta(r, f)
			pieceSquare[kind][sq] = pieceValues[kind] + centrality*(6-kind)
		}
	}
}

// EvaluationService scores a position from the side to move. It keeps no state.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *Position) int {
	var eval = 0
	for kind := Pawn; kind <= King; kind++ {
		for bb := p.PieceOccupancy(kind, true); bb != 0; bb &= bb - 1 {
			eval += pieceSquare[kind][FirstOne(bb)]
		}
		for bb := p.PieceOccupancy(kind, false); bb != 0; bb &= bb - 1 {
			eval -= pieceSquare[kind][FirstOne(bb)]
		}
	}
	if !p.WhiteMove {
		eval = -eval
	}
	return eval
}
