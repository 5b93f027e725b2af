package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

type determinizeOptions struct {
	workLimit int
}

type DeterminizeOption func(*determinizeOptions)

// WithWorkLimit bounds the number of DFA transitions subset construction may
// compute before giving up with ErrTooComplexToDeterminize. A limit <= 0
// means no bound.
func WithWorkLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.workLimit = limit
	}
}

// Determinize converts n into an equivalent DFA by subset construction.
//
// Each DFA state stands for a set of NFA states. Construction starts from
// {initial}. The successor of a set S on symbol a is the union over s in S
// of the targets of (s, a) plus s itself, then widened by the epsilon
// closure of each member. Sets are numbered in breadth-first discovery
// order, so the result is identical for identical input. A set is final if
// it holds at least one final NFA state.
//
// Worst case complexity: exponential in number of states.
func Determinize(n *NFA, opts ...DeterminizeOption) (*DFA, error) {
	o := &determinizeOptions{}
	for _, fn := range opts {
		fn(o)
	}

	a, err := n.compile()
	if err != nil {
		return nil, err
	}

	numStates := len(a.states)
	numSymbols := len(a.alphabet)
	closures := epsilonClosures(a)

	// Same initial values and state will always have the same hashCode
	initialSet := NewStateSet(numStates)
	initialSet.Add(a.initial)

	worklist := []*FrozenIntSet{initialSet.Freeze(0)}
	newState := NewHashMap[int](WithCapacity(16))
	newState.Set(worklist[0], 0)

	// Sets are dequeued in the order they were numbered, so row i of table
	// belongs to DFA state i.
	table := make([]int, 0, numSymbols)
	raw := NewStateSet(numStates)
	next := NewStateSet(numStates)
	work := 0

	for upto := 0; upto < len(worklist); upto++ {
		members := worklist[upto].GetArray()
		for col := 0; col < numSymbols; col++ {
			work++
			if o.workLimit > 0 && work > o.workLimit {
				return nil, fmt.Errorf("%w: more than %d transitions", ErrTooComplexToDeterminize, o.workLimit)
			}

			raw.Reset()
			for _, s := range members {
				raw.Add(s)
				for _, t := range a.moves[s][col] {
					raw.Add(t)
				}
			}

			next.Reset()
			for _, s := range raw.GetArray() {
				next.AddAll(closures[s])
			}

			dest, ok := newState.Get(next)
			if !ok {
				dest = len(worklist)
				frozen := next.Freeze(dest)
				worklist = append(worklist, frozen)
				newState.Set(frozen, dest)
			}
			table = append(table, dest)
		}
	}

	states := make([]int, len(worklist))
	finals := make([]int, 0)
	for i, set := range worklist {
		states[i] = set.State()
		for _, s := range set.GetArray() {
			if a.isAccept.Test(uint(s)) {
				finals = append(finals, set.State())
				break
			}
		}
	}

	transitions := make(map[Transition]int, len(table))
	for i := range worklist {
		for col, c := range a.alphabet {
			transitions[Transition{Source: i, Symbol: c}] = table[i*numSymbols+col]
		}
	}

	return NewDFA(states, a.alphabet, transitions, 0, finals)
}

// epsilonClosures returns, for every NFA state, the state itself plus its
// direct epsilon targets. Only one level of epsilon transitions is followed.
func epsilonClosures(a *compiledNFA) []*FrozenIntSet {
	closures := make([]*FrozenIntSet, len(a.states))
	scratch := NewStateSet(len(a.states))
	for s := range a.states {
		scratch.Reset()
		scratch.Add(s)
		for _, t := range a.epsilons[s] {
			scratch.Add(t)
		}
		closures[s] = scratch.Freeze(s)
	}
	return closures
}

// reachableStates returns the dense indexes of the states reachable from the
// initial state, by a breadth-first walk over every symbol.
func reachableStates(d *DFA) *bitset.BitSet {
	numSymbols := len(d.alphabet)
	seen := bitset.New(uint(d.NumStates()))
	workList := make([]int, 0)

	workList = append(workList, d.initial)
	seen.Set(uint(d.initial))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		for col := 0; col < numSymbols; col++ {
			dest := d.next(state, col)
			if seen.Test(uint(dest)) == false {
				workList = append(workList, dest)
				seen.Set(uint(dest))
			}
		}
	}
	return seen
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(d *DFA) bool {
	if d.isAccept.Test(uint(d.initial)) {
		// Common case: it accepts the empty string
		return false
	}
	if d.isAccept.None() {
		return true
	}
	return reachableStates(d).IntersectionCardinality(d.isAccept) == 0
}

// Complement returns a DFA over the same alphabet accepting exactly the
// strings d rejects. DFAs are total, so inverting the final states suffices.
func Complement(d *DFA) (*DFA, error) {
	finals := make([]int, 0, d.NumStates())
	for i, s := range d.states {
		if !d.isAccept.Test(uint(i)) {
			finals = append(finals, s)
		}
	}
	return NewDFA(d.states, d.alphabet, d.Transitions(), d.Initial(), finals)
}
