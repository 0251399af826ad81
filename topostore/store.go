package topostore

import "github.com/reactopo/reactopo/topology"

// Store is the live collection of topologies (component C4).
//
// As with particle.Store, slots are never reused by Add between Reap
// calls: a topology's Handle must stay valid for every reference taken
// to it earlier in the same step, and fission/fusion can retire handles
// at arbitrary points within a step, not just at its start.
type Store struct {
	slots []slot
}

// NewStore returns an empty topology store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts g and returns its handle.
func (s *Store) Add(g *topology.Graph) Handle {
	s.slots = append(s.slots, slot{graph: g})
	return Handle(len(s.slots) - 1)
}

// Get returns the graph behind h. It returns ErrHandleNotFound for an
// out-of-range handle and ErrAlreadyDeactivated for a retired one —
// callers that need to treat a deactivated handle as "no topology"
// rather than an error should check IsDeactivated first.
func (s *Store) Get(h Handle) (*topology.Graph, error) {
	sl, err := s.slot(h)
	if err != nil {
		return nil, err
	}
	if sl.deactivated {
		return nil, ErrAlreadyDeactivated
	}
	return sl.graph, nil
}

// IsDeactivated reports whether h refers to a retired topology. An
// out-of-range handle reports true, matching the event gatherer's need
// to treat any non-live handle as "no topology" (spec.md §4.4).
func (s *Store) IsDeactivated(h Handle) bool {
	if h < 0 || int(h) >= len(s.slots) {
		return true
	}
	return s.slots[h].deactivated
}

// Deactivate retires h. The slot remains addressable by Get's error path
// until the next Reap.
func (s *Store) Deactivate(h Handle) error {
	sl, err := s.slot(h)
	if err != nil {
		return err
	}
	if sl.deactivated {
		return ErrAlreadyDeactivated
	}
	s.slots[h].deactivated = true
	return nil
}

// Len returns the number of handles, including deactivated ones.
func (s *Store) Len() int { return len(s.slots) }

// Active calls f for every live topology's handle and graph, in
// ascending handle order — the iteration order the event gatherer's
// structural scan requires (spec.md §4.4: "iterate active topologies in
// handle order").
func (s *Store) Active(f func(h Handle, g *topology.Graph) error) error {
	for i, sl := range s.slots {
		if sl.deactivated {
			continue
		}
		if err := f(Handle(i), sl.graph); err != nil {
			return err
		}
	}
	return nil
}

// Reap discards every deactivated topology, sliding the retained ones
// down in their original order, and returns a map from old handle to new
// handle for every retained topology whose handle changed. Unlike
// particle.Store.Compact, which fills each tombstone from the tail, Reap
// keeps the retained topologies' relative order. Must only be called at a
// step boundary: every handle issued during the step becomes invalid once
// Reap returns.
func (s *Store) Reap() map[Handle]Handle {
	remap := make(map[Handle]Handle)
	write := 0
	for read, sl := range s.slots {
		if sl.deactivated {
			continue
		}
		if write != read {
			s.slots[write] = sl
			remap[Handle(read)] = Handle(write)
		}
		write++
	}
	s.slots = s.slots[:write]
	return remap
}

func (s *Store) slot(h Handle) (*slot, error) {
	if h < 0 || int(h) >= len(s.slots) {
		return nil, ErrHandleNotFound
	}
	return &s.slots[h], nil
}
