package common

import (
	"errors"
	"strings"
)

// Move packs from (6 bits), to (6), moving piece (3), captured piece (3)
// and promotion piece (3). The zero value is the "no move" sentinel.
type Move int32

const MoveEmpty = Move(0)

type OrderedMove struct {
	Move Move
	Key  int64
}

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^ (capturedPiece << 15))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var promotion = ""
	if m.Promotion() != Empty {
		promotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + promotion
}

var errMoveNotFound = errors.New("move not found")

// ParseMoveLAN finds the legal move written in long algebraic notation (e2e4, e7e8q).
func (b *Board) ParseMoveLAN(lan string) (Move, error) {
	var buffer [MaxMoves]Move
	for _, mv := range b.GenerateLegalMoves(false, buffer[:]) {
		if strings.EqualFold(mv.String(), lan) {
			return mv, nil
		}
	}
	return MoveEmpty, errMoveNotFound
}

// ParseMoveSAN finds the legal move written in standard algebraic notation (Nf3, exd5, O-O).
func (b *Board) ParseMoveSAN(san string) (Move, error) {
	if index := strings.IndexAny(san, "+#?!"); index >= 0 {
		san = san[:index]
	}
	var buffer [MaxMoves]Move
	var ml = b.GenerateLegalMoves(false, buffer[:])
	for _, mv := range ml {
		if san == moveToSAN(ml, mv) {
			return mv, nil
		}
	}
	return MoveEmpty, errMoveNotFound
}

// MoveToSAN writes a legal move of the current position in standard algebraic notation.
func (b *Board) MoveToSAN(mv Move) string {
	var buffer [MaxMoves]Move
	return moveToSAN(b.GenerateLegalMoves(false, buffer[:]), mv)
}

func moveToSAN(ml []Move, mv Move) string {
	const pieceNames = "NBRQK"
	if mv.MovingPiece() == King && AbsDelta(mv.From(), mv.To()) == 2 {
		if File(mv.To()) == FileG {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	if mv.MovingPiece() != Pawn {
		sb.WriteByte(pieceNames[mv.MovingPiece()-Knight])
	}

	var ambiguous, uniqueFile, uniqueRank = false, true, true
	for _, other := range ml {
		if other.From() == mv.From() ||
			other.To() != mv.To() ||
			other.MovingPiece() != mv.MovingPiece() {
			continue
		}
		ambiguous = true
		if File(other.From()) == File(mv.From()) {
			uniqueFile = false
		}
		if Rank(other.From()) == Rank(mv.From()) {
			uniqueRank = false
		}
	}
	var from = SquareName(mv.From())
	switch {
	case mv.MovingPiece() == Pawn:
		if mv.IsCapture() {
			sb.WriteByte(from[0])
		}
	case ambiguous && uniqueFile:
		sb.WriteByte(from[0])
	case ambiguous && uniqueRank:
		sb.WriteByte(from[1])
	case ambiguous:
		sb.WriteString(from)
	}

	if mv.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(SquareName(mv.To()))
	if mv.Promotion() != Empty {
		sb.WriteByte('=')
		sb.WriteByte(pieceNames[mv.Promotion()-Knight])
	}
	return sb.String()
}
