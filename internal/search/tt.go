package search

// entry holds one transposition table slot. A zero-value entry has
// present == false, so an empty slot never matches a probe, even for a
// position that zobrist-hashes to 0.
type entry struct {
	hash    uint64
	depth   int
	score   int
	present bool
}

// Table is a fixed-size, direct-mapped transposition table keyed by the
// low bits of a Zobrist hash, with full-key verification on lookup
// (spec.md 9: "implementers should prefer correctness" over the
// source's collision-prone structural hash). One Table belongs to
// exactly one search worker; it is never shared (spec.md 4.G, 5).
type Table struct {
	entries []entry
	mask    uint64
}

// NewTable allocates a table with 2^bits entries.
func NewTable(bits int) *Table {
	if bits <= 0 {
		bits = 1
	}
	size := uint64(1) << uint(bits)
	return &Table{
		entries: make([]entry, size),
		mask:    size - 1,
	}
}

// Probe looks up hash at depth. ok is true iff a stored entry's hash
// matches exactly and its depth is at least the probe depth (spec.md
// 4.G: "stored-depth >= probe-depth").
func (t *Table) Probe(hash uint64, depth int) (score int, ok bool) {
	e := &t.entries[hash&t.mask]
	if !e.present || e.hash != hash || e.depth < depth {
		return 0, false
	}
	return e.score, true
}

// Store records a result under the depth-preferred replacement policy:
// a new entry always overwrites the slot's occupant once its depth is
// at least the incumbent's (spec.md 4.G).
func (t *Table) Store(hash uint64, depth, score int) {
	e := &t.entries[hash&t.mask]
	if e.present && e.depth > depth {
		return
	}
	*e = entry{hash: hash, depth: depth, score: score, present: true}
}
