package engine

import (
	"github.com/rs/zerolog"
)

type Options struct {
	// Hash is the transposition table size in megabytes.
	Hash     int
	MaxDepth int
	// SafetyFactor stops the search once elapsed*SafetyFactor exceeds the remaining time.
	SafetyFactor    int
	RepetitionScore int
	// DeltaMargin is how far below alpha stand-pat may fall before quiescence gives up on the node.
	DeltaMargin int
	Logger      zerolog.Logger
	Progress    func(SearchInfo)
}

func NewOptions() Options {
	return Options{
		Hash:            256,
		MaxDepth:        100,
		SafetyFactor:    300,
		RepetitionScore: -2000,
		DeltaMargin:     1000,
		Logger:          zerolog.Nop(),
	}
}
