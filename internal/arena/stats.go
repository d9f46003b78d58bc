package arena

import (
	"fmt"
	"math"
)

// Stats is the match score from EngineA's point of view.
type Stats struct {
	Wins, Losses, Draws int
}

func (s *Stats) add(res gameResult) {
	if res.result == gameResultDraw {
		s.Draws++
	} else if res.result == gameResultWhiteWins && res.gameInfo.engineAIsWhite ||
		res.result == gameResultBlackWins && !res.gameInfo.engineAIsWhite {
		s.Wins++
	} else {
		s.Losses++
	}
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}

func (s Stats) String() string {
	var stat = computeStat(s.Wins, s.Losses, s.Draws)
	return fmt.Sprintf("Score: %v - %v - %v  [%.3f] %v Elo difference: %.1f, LOS: %.1f %%",
		s.Wins, s.Losses, s.Draws, stat.winningFraction, s.Games(),
		stat.eloDifference, stat.los*100)
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{winningFraction: 0.5, los: 0.5}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses != 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return "1-0"
	case gameResultBlackWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
