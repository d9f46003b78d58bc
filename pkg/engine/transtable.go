package engine

import (
	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

// transEntryBytes is the nominal slot size used to turn megabytes into a slot count.
const transEntryBytes = 24

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// 24 bytes
type transEntry struct {
	key   uint64
	move  Move
	depth int32
	score int32
	bound uint8
}

// transTable is a direct-mapped table. Writes always replace the slot.
// It is not safe for concurrent use.
type transTable struct {
	entries []transEntry
	mask    uint64
}

func newTransTable(megabytes int) *transTable {
	var size = roundPowerOfTwo(Max(1, 1024*1024*megabytes/transEntryBytes))
	return &transTable{
		entries: make([]transEntry, size),
		mask:    uint64(size - 1),
	}
}

func (tt *transTable) Len() int {
	return len(tt.entries)
}

func (tt *transTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

// Probe misses when the slot holds another position.
func (tt *transTable) Probe(key uint64) (transEntry, bool) {
	var entry = tt.entries[key&tt.mask]
	return entry, entry.key == key && entry.bound != 0
}

func (tt *transTable) Store(key uint64, depth, score, bound int, move Move) {
	tt.entries[key&tt.mask] = transEntry{
		key:   key,
		move:  move,
		depth: int32(depth),
		score: int32(score),
		bound: uint8(bound),
	}
}

// Fill is the share of used slots in permille, sampled on the first thousand slots.
func (tt *transTable) Fill() int {
	var n = Min(1000, len(tt.entries))
	var used = 0
	for i := 0; i < n; i++ {
		if tt.entries[i].bound != 0 {
			used++
		}
	}
	return used * 1000 / n
}
