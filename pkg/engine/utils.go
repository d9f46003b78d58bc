package engine

import (
	"fmt"
	"strings"
	"time"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

const (
	valueDraw     = 0
	valueMate     = 20_000_000
	valueInfinity = valueMate
	// scores beyond valueWin are forced mates
	valueWin  = valueMate - 10_000
	valueLoss = -valueWin
)

func winIn(ply int) int {
	return valueMate - ply
}

func lossIn(ply int) int {
	return ply - valueMate
}

type UciScore struct {
	Centipawns int
	Mate       int
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}

func (s UciScore) String() string {
	if s.Mate != 0 {
		return fmt.Sprintf("mate %d", s.Mate)
	}
	return fmt.Sprintf("cp %d", s.Centipawns)
}

type SearchInfo struct {
	Depth  int
	Score  UciScore
	Nodes  int64
	Time   time.Duration
	MaxPly int
	// HashFull is the permille of used transposition table slots.
	HashFull int
	MainLine []Move
}

func (si SearchInfo) BestMove() Move {
	if len(si.MainLine) == 0 {
		return MoveEmpty
	}
	return si.MainLine[0]
}

func (si SearchInfo) Nps() int64 {
	var ms = si.Time.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return si.Nodes * 1000 / ms
}

func (si SearchInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d score %v nodes %d time %d nps %d seldepth %d hashfull %d",
		si.Depth, si.Score, si.Nodes, si.Time.Milliseconds(), si.Nps(), si.MaxPly, si.HashFull)
	if len(si.MainLine) != 0 {
		sb.WriteString(" pv")
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(move.String())
		}
	}
	return sb.String()
}

func pvString(line []Move) string {
	var parts = make([]string, len(line))
	for i, move := range line {
		parts[i] = move.String()
	}
	return strings.Join(parts, " ")
}
