package automaton

import "github.com/bits-and-blooms/bitset"

var _ IntSet = &StateSet{}

// StateSet accumulates NFA states (as dense indexes) while a successor set is
// being computed. It can be used directly as a lookup key and is frozen once
// it turns out to be a new DFA state.
type StateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashInts(s.GetArray())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	return equalIntSets(s, other)
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, s.Size())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		keys = append(keys, int(i))
	}
	return keys
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

func (s *StateSet) Add(state int) {
	if s.bits.Test(uint(state)) {
		return
	}
	s.bits.Set(uint(state))
	s.keyChanged()
}

// AddAll adds every member of other.
func (s *StateSet) AddAll(other IntSet) {
	for _, state := range other.GetArray() {
		s.Add(state)
	}
}

func (s *StateSet) Reset() {
	s.bits.ClearAll()
	s.keyChanged()
}

func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), s.Hash(), state)
}
