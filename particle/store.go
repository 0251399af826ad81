package particle

// Store is a dense arena of particle entries addressed by stable integer
// index (spec.md §4.1, component C1).
//
// Unlike the teacher library's core.Graph, Store carries no internal
// mutex: the engine's concurrency model (spec.md §5) guarantees a single
// cooperative caller per step and forbids any other party from mutating
// the arena concurrently, so a lock here would only hide misuse rather
// than prevent it.
type Store struct {
	entries  []Entry
	freelist []int
}

// NewStore returns an empty arena.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of slots in the arena, including tombstoned ones.
func (s *Store) Len() int { return len(s.entries) }

// EntryAt returns a pointer to the entry at i for in-place mutation.
// The pointer is valid until the next Compact.
func (s *Store) EntryAt(i int) (*Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return nil, ErrIndexOutOfRange
	}
	return &s.entries[i], nil
}

// Activate inserts entry into the arena and returns its stable index.
// Compact removes tombstoned slots outright and leaves the free list
// empty, so in practice the arena grows by one: after a Compact the new
// index is the one just past the compacted entries.
func (s *Store) Activate(entry Entry) int {
	entry.Deactivated = false
	if n := len(s.freelist); n > 0 {
		idx := s.freelist[n-1]
		s.freelist = s.freelist[:n-1]
		s.entries[idx] = entry
		return idx
	}
	s.entries = append(s.entries, entry)
	return len(s.entries) - 1
}

// Deactivate tombstones the entry at i. The index remains allocated (and
// EntryAt still resolves it) until the next Compact; it is never reused by
// Activate before that point, which preserves index stability within a
// step as required by spec.md §4.1.
func (s *Store) Deactivate(i int) error {
	e, err := s.EntryAt(i)
	if err != nil {
		return err
	}
	if e.Deactivated {
		return ErrAlreadyDeactivated
	}
	e.Deactivated = true
	return nil
}

// Compact reclaims tombstoned slots for future Activate calls. It must
// only be invoked at a step boundary (spec.md §4.1: "the store may reuse
// indices only across step boundaries"). It returns a map from old index
// to new index for every entry that was relocated, so callers that hold
// cross-references (e.g. topostore.Store's particle-index bookkeeping)
// can rewrite them; entries left in place are omitted from the map. Each
// tombstoned slot is filled by the last live entry, so only entries from
// the tail of the arena move.
func (s *Store) Compact() map[int]int {
	remap := make(map[int]int)
	end := len(s.entries)
	for i := 0; i < end; i++ {
		if !s.entries[i].Deactivated {
			continue
		}
		for end > i && s.entries[end-1].Deactivated {
			end--
		}
		if end <= i {
			break
		}
		end--
		s.entries[i] = s.entries[end]
		remap[end] = i
	}
	s.entries = s.entries[:end]
	s.freelist = s.freelist[:0]
	return remap
}

// Active calls f for every non-deactivated entry's index, in ascending
// order. f must not mutate the arena's length.
func (s *Store) Active(f func(index int, e *Entry) error) error {
	for i := range s.entries {
		if s.entries[i].Deactivated {
			continue
		}
		if err := f(i, &s.entries[i]); err != nil {
			return err
		}
	}
	return nil
}
