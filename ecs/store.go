package ecs

import "sort"

// ArchetypeStore indexes every archetype by its component set. The index is a
// sorted slice rather than a hash map: sets are already sorted 64-bit
// handles, lexicographic comparison is cheap, and key order makes iteration
// deterministic for reproducible tests.
type ArchetypeStore struct {
	archetypes []*Archetype
	version    uint64
	iterating  int
}

func newArchetypeStore() *ArchetypeStore {
	return &ArchetypeStore{}
}

func (s *ArchetypeStore) findIndex(set ComponentSet) (int, bool) {
	i := sort.Search(len(s.archetypes), func(i int) bool {
		return s.archetypes[i].set.Compare(set) >= 0
	})
	if i < len(s.archetypes) && s.archetypes[i].set.Equal(set) {
		return i, true
	}
	return i, false
}

// Find returns the archetype stored for set, or nil. At most one archetype
// exists per set.
func (s *ArchetypeStore) Find(set ComponentSet) *Archetype {
	if i, ok := s.findIndex(set); ok {
		return s.archetypes[i]
	}
	return nil
}

// create inserts a new archetype for set. Columns for kinds present in seed
// are cloned as empty peers of the seed's columns; extraKind's column, when
// given, covers the one kind the seed cannot supply.
func (s *ArchetypeStore) create(set ComponentSet, seed *Archetype, extraKind Id, extraColumn column) *Archetype {
	ar := newArchetype(set)
	for i, kind := range set {
		switch {
		case kind == extraKind && extraColumn != nil:
			ar.columns[i] = extraColumn
		case seed != nil && seed.hasKind(kind):
			ar.columns[i] = seed.columnFor(kind).spawnEmptyPeer()
		default:
			fail(ErrUnregisteredKind, "no column schema available for kind %#x", uint64(kind))
		}
	}
	i, _ := s.findIndex(set)
	s.archetypes = append(s.archetypes, nil)
	copy(s.archetypes[i+1:], s.archetypes[i:])
	s.archetypes[i] = ar
	s.version++
	return ar
}

// Query returns the archetypes whose set is a superset of required, in key
// order. Archetypes emptied of rows are retained and still match; they may
// gain members again.
func (s *ArchetypeStore) Query(required []Id) []*Archetype {
	var out []*Archetype
	for _, ar := range s.archetypes {
		if ar.set.ContainsAll(required) {
			out = append(out, ar)
		}
	}
	return out
}

// Archetypes returns every archetype in key order, for diagnostics and tests.
func (s *ArchetypeStore) Archetypes() []*Archetype {
	return s.archetypes
}

// Version counts structural changes. The scheduler samples it before and
// after every iterate pass.
func (s *ArchetypeStore) Version() uint64 {
	return s.version
}

func (s *ArchetypeStore) beginIterate() {
	s.iterating++
}

func (s *ArchetypeStore) endIterate() {
	s.iterating--
}

// ensureMutable panics if any system iterate pass is open. Structural
// mutation would invalidate the row alignment of outstanding column views.
func (s *ArchetypeStore) ensureMutable() {
	if s.iterating > 0 {
		fail(ErrStructuralMutationDuringIteration, "add/remove during a system row walk")
	}
}
