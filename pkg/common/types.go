package common

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Piece kinds. The order matters: the evaluator weights centrality by 6-kind.
const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const MaxMoves = 256

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareNone = -1

// Named squares used by castling.
const (
	SquareA1 = 0
	SquareB1 = 1
	SquareC1 = 2
	SquareD1 = 3
	SquareE1 = 4
	SquareF1 = 5
	SquareG1 = 6
	SquareH1 = 7
	SquareA8 = 56
	SquareB8 = 57
	SquareC8 = 58
	SquareD8 = 59
	SquareE8 = 60
	SquareF8 = 61
	SquareG8 = 62
	SquareH8 = 63
)
