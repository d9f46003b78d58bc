package arena

import (
	"time"

	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

// TimeControl is a per-game clock for each side. Zero Main means unlimited time.
type TimeControl struct {
	Main      time.Duration
	Increment time.Duration
}

type Config struct {
	EngineA, EngineB *engine.Engine
	TimeControl      TimeControl
	Concurrency      int
	// MaxPlies adjudicates a draw once the game reaches it. Zero means no cap.
	MaxPlies int
	// Openings are move lists in SAN. Empty means the built-in book.
	Openings []string
	// Seed shuffles the openings; zero keeps the book order.
	Seed uint64
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []string
	comment  string
	result   int
}
