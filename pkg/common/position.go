package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/rand"
)

// Position is a value snapshot of the game state. Board layers make/undo on top of it.
type Position struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, White, Black, Checkers uint64
	WhiteMove                                                             bool
	CastleRights, Rule50, EpSquare                                        int
	Key                                                                   uint64
	LastMove                                                              Move
}

type coloredPiece struct {
	Type  int
	White bool
}

var (
	sideKey        uint64
	enpassantKey   [8]uint64
	castlingKey    [16]uint64
	pieceSquareKey [2 * 7 * 64]uint64
	castleMask     [64]int
)

func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var board [64]coloredPiece
	var i = 0
	for _, ch := range tokens[0] {
		switch {
		case unicode.IsDigit(ch):
			i += int(ch - '0')
		case ch == '/':
		default:
			var index = strings.IndexRune("pnbrqk", unicode.ToLower(ch))
			if index < 0 || i >= 64 {
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			board[FlipSquare(i)] = coloredPiece{Type: Pawn + index, White: unicode.IsUpper(ch)}
			i++
		}
	}
	if i != 64 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var cr = 0
	for _, ch := range tokens[2] {
		switch ch {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		}
	}

	var rule50 = 0
	if len(tokens) > 4 {
		rule50, _ = strconv.Atoi(tokens[4])
	}

	var p = Position{
		WhiteMove:    tokens[1] == "w",
		CastleRights: cr,
		EpSquare:     ParseSquare(tokens[3]),
		Rule50:       rule50,
	}
	for sq, piece := range board {
		if piece.Type != Empty {
			xorPiece(&p, piece.Type, piece.White, sq)
		}
	}
	if p.EpSquare != SquareNone && !p.canCaptureEnPassant(p.EpSquare) {
		p.EpSquare = SquareNone
	}
	if PopCount(p.Kings&p.White) != 1 || PopCount(p.Kings&p.Black) != 1 || !p.isLegal() {
		return Position{}, fmt.Errorf("illegal position %v", fen)
	}
	p.Key = p.computeKey()
	p.Checkers = p.computeCheckers()
	return p, nil
}

func (p *Position) String() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var pieceType, white = p.GetPieceTypeAndSide(MakeSquare(file, rank))
			if pieceType == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			var ch = "pnbrqk"[pieceType-Pawn]
			if white {
				ch = byte(unicode.ToUpper(rune(ch)))
			}
			sb.WriteByte(ch)
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteByte('/')
		}
	}

	if p.WhiteMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		for i, ch := range "KQkq" {
			if p.CastleRights&(1<<uint(i)) != 0 {
				sb.WriteRune(ch)
			}
		}
	}

	if p.EpSquare == SquareNone {
		sb.WriteString(" -")
	} else {
		sb.WriteString(" " + SquareName(p.EpSquare))
	}

	fmt.Fprintf(&sb, " %d %d", p.Rule50, p.Rule50/2+1)
	return sb.String()
}

func (p *Position) GetPieceTypeAndSide(sq int) (pieceType int, white bool) {
	var bb = SquareMask[sq]
	if p.White&bb != 0 {
		white = true
	} else if p.Black&bb == 0 {
		return Empty, false
	}
	return p.WhatPiece(sq), white
}

func (p *Position) WhatPiece(sq int) int {
	var bb = SquareMask[sq]
	switch {
	case (p.White|p.Black)&bb == 0:
		return Empty
	case p.Pawns&bb != 0:
		return Pawn
	case p.Knights&bb != 0:
		return Knight
	case p.Bishops&bb != 0:
		return Bishop
	case p.Rooks&bb != 0:
		return Rook
	case p.Queens&bb != 0:
		return Queen
	default:
		return King
	}
}

func (p *Position) PiecesByColor(white bool) uint64 {
	if white {
		return p.White
	}
	return p.Black
}

// PieceOccupancy returns the squares holding pieces of the given kind and colour.
func (p *Position) PieceOccupancy(pieceType int, white bool) uint64 {
	var bb uint64
	switch pieceType {
	case Pawn:
		bb = p.Pawns
	case Knight:
		bb = p.Knights
	case Bishop:
		bb = p.Bishops
	case Rook:
		bb = p.Rooks
	case Queen:
		bb = p.Queens
	case King:
		bb = p.Kings
	}
	return bb & p.PiecesByColor(white)
}

func (p *Position) IsCheck() bool {
	return p.Checkers != 0
}

// MakeMove writes the position after a pseudo-legal move into result.
// It returns false when the move leaves the own king in check.
func (src *Position) MakeMove(move Move, result *Position) bool {
	var from, to = move.From(), move.To()
	var movingPiece, capturedPiece = move.MovingPiece(), move.CapturedPiece()
	var white = src.WhiteMove

	*result = *src
	result.WhiteMove = !white
	result.Key ^= sideKey

	result.CastleRights = src.CastleRights & castleMask[from] & castleMask[to]
	result.Key ^= castlingKey[result.CastleRights^src.CastleRights]

	if movingPiece == Pawn || capturedPiece != Empty {
		result.Rule50 = 0
	} else {
		result.Rule50++
	}

	result.EpSquare = SquareNone
	if src.EpSquare != SquareNone {
		result.Key ^= enpassantKey[File(src.EpSquare)]
	}

	if capturedPiece != Empty {
		if capturedPiece == Pawn && movingPiece == Pawn && to == src.EpSquare {
			xorPiece(result, Pawn, !white, to+let(white, -8, 8))
		} else {
			xorPiece(result, capturedPiece, !white, to)
		}
	}

	movePiece(result, movingPiece, white, from, to)

	switch movingPiece {
	case Pawn:
		if AbsDelta(from, to) == 16 && result.canCaptureEnPassant((from+to)/2) {
			result.EpSquare = (from + to) / 2
			result.Key ^= enpassantKey[File(from)]
		}
		if move.Promotion() != Empty {
			xorPiece(result, Pawn, white, to)
			xorPiece(result, move.Promotion(), white, to)
		}
	case King:
		if AbsDelta(from, to) == 2 {
			var rank = Rank(from)
			if to > from {
				movePiece(result, Rook, white, MakeSquare(FileH, rank), MakeSquare(FileF, rank))
			} else {
				movePiece(result, Rook, white, MakeSquare(FileA, rank), MakeSquare(FileD, rank))
			}
		}
	}

	if !result.isLegal() {
		return false
	}
	result.Checkers = result.computeCheckers()
	result.LastMove = move
	return true
}

func xorPiece(p *Position, piece int, white bool, square int) {
	var b = SquareMask[square]
	togglePiece(p, piece, white, b)
	p.Key ^= PieceSquareKey(piece, white, square)
}

func movePiece(p *Position, piece int, white bool, from, to int) {
	togglePiece(p, piece, white, SquareMask[from]|SquareMask[to])
	p.Key ^= PieceSquareKey(piece, white, from) ^ PieceSquareKey(piece, white, to)
}

func togglePiece(p *Position, piece int, white bool, b uint64) {
	if white {
		p.White ^= b
	} else {
		p.Black ^= b
	}
	switch piece {
	case Pawn:
		p.Pawns ^= b
	case Knight:
		p.Knights ^= b
	case Bishop:
		p.Bishops ^= b
	case Rook:
		p.Rooks ^= b
	case Queen:
		p.Queens ^= b
	case King:
		p.Kings ^= b
	}
}

// canCaptureEnPassant reports whether a pawn of the side to move attacks ep.
// Without one the square is left out of the position and its key.
func (p *Position) canCaptureEnPassant(ep int) bool {
	return PawnAttacks(ep, !p.WhiteMove)&p.Pawns&p.PiecesByColor(p.WhiteMove) != 0
}

func (p *Position) isAttackedBySide(sq int, white bool) bool {
	var enemy = p.PiecesByColor(white)
	var occ = p.White | p.Black
	return PawnAttacks(sq, !white)&p.Pawns&enemy != 0 ||
		KnightAttacks[sq]&p.Knights&enemy != 0 ||
		KingAttacks[sq]&p.Kings&enemy != 0 ||
		BishopAttacks(sq, occ)&(p.Bishops|p.Queens)&enemy != 0 ||
		RookAttacks(sq, occ)&(p.Rooks|p.Queens)&enemy != 0
}

func (p *Position) computeCheckers() uint64 {
	var own = p.PiecesByColor(p.WhiteMove)
	var enemy = p.PiecesByColor(!p.WhiteMove)
	var sq = FirstOne(p.Kings & own)
	var occ = p.White | p.Black
	return (PawnAttacks(sq, p.WhiteMove)&p.Pawns |
		KnightAttacks[sq]&p.Knights |
		BishopAttacks(sq, occ)&(p.Bishops|p.Queens) |
		RookAttacks(sq, occ)&(p.Rooks|p.Queens)) & enemy
}

// isLegal reports whether the side that just moved left its king safe.
func (p *Position) isLegal() bool {
	var kingSq = FirstOne(p.Kings & p.PiecesByColor(!p.WhiteMove))
	return !p.isAttackedBySide(kingSq, p.WhiteMove)
}

func PieceSquareKey(piece int, white bool, square int) uint64 {
	var index = piece
	if !white {
		index += 7
	}
	return pieceSquareKey[index*64+square]
}

func (p *Position) computeKey() uint64 {
	var result uint64
	if p.WhiteMove {
		result ^= sideKey
	}
	result ^= castlingKey[p.CastleRights]
	if p.EpSquare != SquareNone {
		result ^= enpassantKey[File(p.EpSquare)]
	}
	for sq := 0; sq < 64; sq++ {
		if piece, white := p.GetPieceTypeAndSide(sq); piece != Empty {
			result ^= PieceSquareKey(piece, white, sq)
		}
	}
	return result
}

func initKeys() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enpassantKey {
		enpassantKey[i] = r.Uint64()
	}
	for i := range pieceSquareKey {
		pieceSquareKey[i] = r.Uint64()
	}
	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}
	for i := range castlingKey {
		for j := range castle {
			if i&(1<<uint(j)) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}
}

func init() {
	initKeys()
	for i := range castleMask {
		castleMask[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}
