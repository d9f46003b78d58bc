package engine

import . "github.com/ChizhovVadim/CounterLite/pkg/common"

// historyTable scores quiet moves by the cutoffs they produced, indexed by from and to.
// Entries only grow for the lifetime of a Session.
type historyTable struct {
	scores [64][64]int64
}

func (h *historyTable) Score(from, to int) int64 {
	return h.scores[from][to]
}

// Bump ignores non-positive amounts.
func (h *historyTable) Bump(from, to int, amount int64) {
	if amount > 0 {
		h.scores[from][to] += amount
	}
}

// OnCutoff credits a quiet move that failed high at the given depth.
func (h *historyTable) OnCutoff(move Move, depth int) {
	if move.IsCapture() {
		return
	}
	h.Bump(move.From(), move.To(), int64(depth*depth))
}

func (h *historyTable) Clear() {
	h.scores = [64][64]int64{}
}
