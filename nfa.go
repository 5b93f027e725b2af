package automaton

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NFA describes a nondeterministic automaton with epsilon transitions. It is
// plain input data for Determinize; a transition on Epsilon is consumed
// without reading input. Epsilon must not be a member of Alphabet.
type NFA struct {
	States      []int
	Alphabet    []rune
	Transitions map[Transition][]int
	Initial     int
	Finals      []int
	Epsilon     rune
}

// compiledNFA is an NFA with states renumbered to dense indexes (their rank
// in ascending order) and transitions grouped per state.
type compiledNFA struct {
	states   []int
	index    map[int]int
	alphabet []rune

	// moves[state][column] are the targets on alphabet[column], ascending.
	moves [][][]int

	// epsilons[state] are the epsilon targets, ascending.
	epsilons [][]int

	initial  int
	isAccept *bitset.BitSet
}

// compile validates n and renumbers it. The epsilon collision is reported
// before any structural check.
func (n *NFA) compile() (*compiledNFA, error) {
	alphabet := sortedUnique(n.Alphabet)
	if _, found := slices.BinarySearch(alphabet, n.Epsilon); found {
		return nil, fmt.Errorf("%w: %q", ErrEpsilonSymbolInAlphabet, n.Epsilon)
	}

	a := &compiledNFA{
		states:   sortedUnique(n.States),
		alphabet: alphabet,
	}
	a.index = make(map[int]int, len(a.states))
	for i, s := range a.states {
		a.index[s] = i
	}

	var ok bool
	if a.initial, ok = a.index[n.Initial]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInitialState, n.Initial)
	}

	a.isAccept = bitset.New(uint(len(a.states)))
	for _, f := range n.Finals {
		i, ok := a.index[f]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidFinalState, f)
		}
		a.isAccept.Set(uint(i))
	}

	columns := make(map[rune]int, len(a.alphabet))
	for i, c := range a.alphabet {
		columns[c] = i
	}
	a.moves = make([][][]int, len(a.states))
	for i := range a.moves {
		a.moves[i] = make([][]int, len(a.alphabet))
	}
	a.epsilons = make([][]int, len(a.states))

	keys := slices.SortedFunc(maps.Keys(n.Transitions), compareTransitions)
	for _, k := range keys {
		source, ok := a.index[k.Source]
		if !ok {
			return nil, fmt.Errorf("%w: %d on %q", ErrInvalidTransitionSource, k.Source, k.Symbol)
		}
		targets := make([]int, 0, len(n.Transitions[k]))
		for _, dest := range n.Transitions[k] {
			t, ok := a.index[dest]
			if !ok {
				return nil, fmt.Errorf("%w: %d on %q -> %d", ErrInvalidTransitionTarget, k.Source, k.Symbol, dest)
			}
			targets = append(targets, t)
		}
		targets = sortedUnique(targets)

		if k.Symbol == n.Epsilon {
			a.epsilons[source] = targets
		} else if col, ok := columns[k.Symbol]; ok {
			a.moves[source][col] = targets
		}
	}

	return a, nil
}
