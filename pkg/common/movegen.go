package common

const (
	f1g1Mask = (uint64(1) << SquareF1) | (uint64(1) << SquareG1)
	b1d1Mask = (uint64(1) << SquareB1) | (uint64(1) << SquareC1) | (uint64(1) << SquareD1)
	f8g8Mask = (uint64(1) << SquareF8) | (uint64(1) << SquareG8)
	b8d8Mask = (uint64(1) << SquareB8) | (uint64(1) << SquareC8) | (uint64(1) << SquareD8)
)

var (
	whiteKingSideCastle  = makeMove(SquareE1, SquareG1, King, Empty)
	whiteQueenSideCastle = makeMove(SquareE1, SquareC1, King, Empty)
	blackKingSideCastle  = makeMove(SquareE8, SquareG8, King, Empty)
	blackQueenSideCastle = makeMove(SquareE8, SquareC8, King, Empty)
)

func addPromotions(ml []Move, move Move) int {
	ml[0] = move ^ Move(Queen<<18)
	ml[1] = move ^ Move(Rook<<18)
	ml[2] = move ^ Move(Bishop<<18)
	ml[3] = move ^ Move(Knight<<18)
	return 4
}

// pawnGeometry describes pawn moves of one side as square offsets.
type pawnGeometry struct {
	push, captureWest, captureEast int
	startRank, promoRank           uint64
}

var (
	whitePawnGeometry = pawnGeometry{push: 8, captureWest: 7, captureEast: 9, startRank: Rank2Mask, promoRank: Rank7Mask}
	blackPawnGeometry = pawnGeometry{push: -8, captureWest: -9, captureEast: -7, startRank: Rank7Mask, promoRank: Rank2Mask}
)

func sideGeometry(white bool) *pawnGeometry {
	if white {
		return &whitePawnGeometry
	}
	return &blackPawnGeometry
}

// generatePawnMoves appends pawn moves. With capturesOnly set, quiet pushes
// and quiet promotions are skipped.
func generatePawnMoves(ml []Move, p *Position, capturesOnly bool) int {
	var count = 0
	var g = sideGeometry(p.WhiteMove)
	var ownPieces = p.PiecesByColor(p.WhiteMove)
	var oppPieces = p.PiecesByColor(!p.WhiteMove)
	var allPieces = p.White | p.Black
	var ownPawns = p.Pawns & ownPieces

	if p.EpSquare != SquareNone {
		for fromBB := PawnAttacks(p.EpSquare, !p.WhiteMove) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			ml[count] = makeMove(FirstOne(fromBB), p.EpSquare, Pawn, Pawn)
			count++
		}
	}

	for fromBB := ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		var promotes = SquareMask[from]&g.promoRank != 0
		var add = func(to, captured int) {
			var move = makeMove(from, to, Pawn, captured)
			if promotes {
				count += addPromotions(ml[count:], move)
			} else {
				ml[count] = move
				count++
			}
		}

		if !capturesOnly && SquareMask[from+g.push]&allPieces == 0 {
			add(from+g.push, Empty)
			if SquareMask[from]&g.startRank != 0 && SquareMask[from+2*g.push]&allPieces == 0 {
				add(from+2*g.push, Empty)
			}
		}
		if File(from) > FileA && SquareMask[from+g.captureWest]&oppPieces != 0 {
			add(from+g.captureWest, p.WhatPiece(from+g.captureWest))
		}
		if File(from) < FileH && SquareMask[from+g.captureEast]&oppPieces != 0 {
			add(from+g.captureEast, p.WhatPiece(from+g.captureEast))
		}
	}
	return count
}

// generatePieceMoves appends knight, bishop, rook and queen moves onto target squares.
func generatePieceMoves(ml []Move, p *Position, target uint64) int {
	var count = 0
	var ownPieces = p.PiecesByColor(p.WhiteMove)
	var allPieces = p.White | p.Black

	var emit = func(from int, piece int, toBB uint64) {
		for ; toBB != 0; toBB &= toBB - 1 {
			var to = FirstOne(toBB)
			ml[count] = makeMove(from, to, piece, p.WhatPiece(to))
			count++
		}
	}

	for fromBB := p.Knights & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		emit(from, Knight, KnightAttacks[from]&target)
	}
	for fromBB := p.Bishops & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		emit(from, Bishop, BishopAttacks(from, allPieces)&target)
	}
	for fromBB := p.Rooks & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		emit(from, Rook, RookAttacks(from, allPieces)&target)
	}
	for fromBB := p.Queens & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		emit(from, Queen, QueenAttacks(from, allPieces)&target)
	}
	return count
}

// GenerateMoves returns pseudo-legal moves. In check, non-king moves are
// restricted to capturing the checker or blocking.
func GenerateMoves(ml []Move, p *Position) []Move {
	var ownPieces = p.PiecesByColor(p.WhiteMove)
	var allPieces = p.White | p.Black
	var kingSq = FirstOne(p.Kings & ownPieces)

	var target = ^ownPieces
	if p.Checkers != 0 {
		target = p.Checkers | betweenMask[FirstOne(p.Checkers)][kingSq]
	}

	var count = generatePawnMoves(ml, p, false)
	count += generatePieceMoves(ml[count:], p, target)

	for toBB := KingAttacks[kingSq] &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
		var to = FirstOne(toBB)
		ml[count] = makeMove(kingSq, to, King, p.WhatPiece(to))
		count++
	}

	if p.WhiteMove {
		if p.CastleRights&WhiteKingSide != 0 &&
			allPieces&f1g1Mask == 0 &&
			!p.isAttackedBySide(SquareE1, false) &&
			!p.isAttackedBySide(SquareF1, false) {
			ml[count] = whiteKingSideCastle
			count++
		}
		if p.CastleRights&WhiteQueenSide != 0 &&
			allPieces&b1d1Mask == 0 &&
			!p.isAttackedBySide(SquareE1, false) &&
			!p.isAttackedBySide(SquareD1, false) {
			ml[count] = whiteQueenSideCastle
			count++
		}
	} else {
		if p.CastleRights&BlackKingSide != 0 &&
			allPieces&f8g8Mask == 0 &&
			!p.isAttackedBySide(SquareE8, true) &&
			!p.isAttackedBySide(SquareF8, true) {
			ml[count] = blackKingSideCastle
			count++
		}
		if p.CastleRights&BlackQueenSide != 0 &&
			allPieces&b8d8Mask == 0 &&
			!p.isAttackedBySide(SquareE8, true) &&
			!p.isAttackedBySide(SquareD8, true) {
			ml[count] = blackQueenSideCastle
			count++
		}
	}

	return ml[:count]
}

// GenerateCaptures returns pseudo-legal captures only, en passant and
// capture-promotions included. Quiet promotions are not captures.
func GenerateCaptures(ml []Move, p *Position) []Move {
	var ownPieces = p.PiecesByColor(p.WhiteMove)
	var oppPieces = p.PiecesByColor(!p.WhiteMove)
	var kingSq = FirstOne(p.Kings & ownPieces)

	var count = generatePawnMoves(ml, p, true)
	count += generatePieceMoves(ml[count:], p, oppPieces)

	for toBB := KingAttacks[kingSq] & oppPieces; toBB != 0; toBB &= toBB - 1 {
		var to = FirstOne(toBB)
		ml[count] = makeMove(kingSq, to, King, p.WhatPiece(to))
		count++
	}
	return ml[:count]
}
