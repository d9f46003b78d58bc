package common

import "fmt"

// Board is a mutable game: the current Position plus the positions that led to it.
// MakeMove and UndoMove must be paired.
type Board struct {
	Position
	history []Position
	root    int
}

func NewBoard() *Board {
	var b, err = NewBoardFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return b
}

func NewBoardFromFEN(fen string) (*Board, error) {
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Board{
		Position: p,
		history:  make([]Position, 0, 256),
	}, nil
}

// MakeMove plays a pseudo-legal move. It returns false and leaves the board
// unchanged when the move is illegal.
func (b *Board) MakeMove(m Move) bool {
	var next Position
	if !b.Position.MakeMove(m, &next) {
		return false
	}
	b.history = append(b.history, b.Position)
	b.Position = next
	return true
}

func (b *Board) UndoMove() {
	var n = len(b.history) - 1
	b.Position = b.history[n]
	b.history = b.history[:n]
	if b.root > n {
		b.root = n
	}
}

func (b *Board) MakeMoveLAN(lan string) error {
	var mv, err = b.ParseMoveLAN(lan)
	if err != nil {
		return fmt.Errorf("%v: %w", lan, err)
	}
	b.MakeMove(mv)
	return nil
}

func (b *Board) MakeMoveSAN(san string) error {
	var mv, err = b.ParseMoveSAN(san)
	if err != nil {
		return fmt.Errorf("%v: %w", san, err)
	}
	b.MakeMove(mv)
	return nil
}

// GenerateLegalMoves writes legal moves into buffer and returns the filled slice.
// buffer must hold MaxMoves entries.
func (b *Board) GenerateLegalMoves(capturesOnly bool, buffer []Move) []Move {
	var pseudo [MaxMoves]Move
	var ml []Move
	if capturesOnly {
		ml = GenerateCaptures(pseudo[:], &b.Position)
	} else {
		ml = GenerateMoves(pseudo[:], &b.Position)
	}
	var count = 0
	var child Position
	for _, mv := range ml {
		if b.Position.MakeMove(mv, &child) {
			buffer[count] = mv
			count++
		}
	}
	return buffer[:count]
}

// SetRoot marks the current position as the root of a search.
// Repetitions after the root count as draws on the first recurrence.
func (b *Board) SetRoot() {
	b.root = len(b.history)
}

// Ply is the number of moves made since SetRoot.
func (b *Board) Ply() int {
	return len(b.history) - b.root
}

// GamePly is the number of moves made since the board was created.
func (b *Board) GamePly() int {
	return len(b.history)
}

// IsRepeatedPosition reports a twofold repetition inside the search tree
// or a threefold repetition of the game.
func (b *Board) IsRepeatedPosition() bool {
	var n = len(b.history)
	var earlier = 0
	for i := n - 2; i >= 0 && i >= n-b.Rule50; i -= 2 {
		if b.history[i].Key != b.Key {
			continue
		}
		if i >= b.root {
			return true
		}
		earlier++
	}
	return earlier >= 2
}

// RepetitionCount is how many times the current position occurred, itself included.
func (b *Board) RepetitionCount() int {
	var n = len(b.history)
	var count = 1
	for i := n - 2; i >= 0 && i >= n-b.Rule50; i -= 2 {
		if b.history[i].Key == b.Key {
			count++
		}
	}
	return count
}

func (b *Board) IsInsufficientMaterial() bool {
	return (b.Pawns|b.Rooks|b.Queens) == 0 &&
		!MoreThanOne(b.Knights|b.Bishops)
}
