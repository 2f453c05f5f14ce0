package engine

import (
	"unsafe"

	"gander-engine/board"
)

// Transposition table entry flags.
const (
	AlphaFlag = iota
	BetaFlag
	ExactFlag
)

const defaultTTSizeMB = 64

// TTEntry is one transposition table slot.
type TTEntry struct {
	Hash  uint64
	Move  board.Move
	Score int32
	Depth int8
	Flag  int8
}

// TransTable is a fixed-size depth-preferred transposition table.
type TransTable struct {
	entries []TTEntry
	mask    uint64
}

// NewTransTable allocates a table of roughly the given size in MB.
func NewTransTable(sizeMB int) *TransTable {
	tt := &TransTable{}
	tt.Resize(sizeMB)
	return tt
}

// Resize reallocates the table; all stored entries are lost.
func (tt *TransTable) Resize(sizeMB int) {
	if sizeMB <= 0 {
		sizeMB = defaultTTSizeMB
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	count := uint64(sizeMB) * 1024 * 1024 / entrySize

	// Round down to a power of two so indexing is a mask.
	size := uint64(1)
	for size<<1 <= count {
		size <<= 1
	}
	tt.entries = make([]TTEntry, size)
	tt.mask = size - 1
}

// Clear wipes the table, keeping its size.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Probe looks up the entry for hash; ok is false on a miss.
func (tt *TransTable) Probe(hash uint64) (entry TTEntry, ok bool) {
	e := tt.entries[hash&tt.mask]
	if e.Hash != hash {
		return TTEntry{}, false
	}
	return e, true
}

// Store writes an entry, preferring deeper searches over shallower ones
// except that entries from older positions are always replaced.
func (tt *TransTable) Store(hash uint64, m board.Move, score int32, depth int8, flag int8) {
	idx := hash & tt.mask
	e := &tt.entries[idx]
	if e.Hash == hash && e.Depth > depth && e.Flag == ExactFlag && flag != ExactFlag {
		return
	}
	*e = TTEntry{Hash: hash, Move: m, Score: score, Depth: depth, Flag: flag}
}
