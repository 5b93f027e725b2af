package automaton

import "slices"

// IntSet is a set of dense state indexes usable as a HashMap key. Two sets
// are equal when they hold the same members.
type IntSet interface {
	Hashable

	// GetArray returns the members in ascending order.
	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is the immutable form of a StateSet, tagged with the DFA state
// it was assigned during subset construction.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		o, ok := other.(*FrozenIntSet)
		return ok && o == nil
	}
	return equalIntSets(f, other)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State the DFA state this set was frozen as.
func (f *FrozenIntSet) State() int {
	return f.state
}

func equalIntSets(a IntSet, other Hashable) bool {
	b, ok := other.(IntSet)
	if !ok {
		return false
	}
	switch v := b.(type) {
	case *FrozenIntSet:
		if v == nil {
			return false
		}
	case *StateSet:
		if v == nil {
			return false
		}
	}
	if a.Size() != b.Size() || a.Hash() != b.Hash() {
		return false
	}
	return slices.Equal(a.GetArray(), b.GetArray())
}
