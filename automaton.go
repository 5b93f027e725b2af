package automaton

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Transition is the (source state, symbol) side of a transition; the
// transition function maps it to the destination state(s).
type Transition struct {
	Source int
	Symbol rune
}

func compareTransitions(a, b Transition) int {
	if c := cmp.Compare(a.Source, b.Source); c != 0 {
		return c
	}
	return cmp.Compare(a.Symbol, b.Symbol)
}

// DFA is a validated, total, deterministic finite automaton. States are
// arbitrary ints; internally each is given a dense index (its rank in
// ascending order) and the transition function is packed into a single
// table of numStates*len(alphabet) destination indexes. A DFA is never
// modified after NewDFA returns, so it is safe for concurrent use.
type DFA struct {
	// States in ascending order; the position is the dense index.
	states []int

	// State to dense index.
	index map[int]int

	// Alphabet in ascending order; the position is the table column.
	alphabet []rune

	// Symbol to table column.
	symbols map[rune]int

	// Row per state, column per symbol, holding the dense destination index.
	table []int

	// Dense index of the initial state.
	initial int

	// Set for each dense index that is a final state.
	isAccept *bitset.BitSet
}

// NewDFA validates and builds a DFA. Checks run in order: the initial state,
// the final states, the endpoints of every transition and finally totality
// of the transition function over states x alphabet. The first violation is
// returned and no automaton is built. Duplicated states, symbols and finals
// are collapsed. Transitions on symbols outside the alphabet are checked for
// valid endpoints but are otherwise unused.
func NewDFA(states []int, alphabet []rune, transitions map[Transition]int, initial int, finals []int) (*DFA, error) {
	d := &DFA{
		states:   sortedUnique(states),
		alphabet: sortedUnique(alphabet),
	}

	d.index = make(map[int]int, len(d.states))
	for i, s := range d.states {
		d.index[s] = i
	}
	d.symbols = make(map[rune]int, len(d.alphabet))
	for i, c := range d.alphabet {
		d.symbols[c] = i
	}

	var ok bool
	if d.initial, ok = d.index[initial]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInitialState, initial)
	}

	d.isAccept = bitset.New(uint(len(d.states)))
	for _, f := range finals {
		i, ok := d.index[f]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidFinalState, f)
		}
		d.isAccept.Set(uint(i))
	}

	keys := slices.SortedFunc(maps.Keys(transitions), compareTransitions)
	for _, k := range keys {
		if _, ok := d.index[k.Source]; !ok {
			return nil, fmt.Errorf("%w: %d on %q", ErrInvalidTransitionSource, k.Source, k.Symbol)
		}
		if dest := transitions[k]; !d.HasState(dest) {
			return nil, fmt.Errorf("%w: %d on %q -> %d", ErrInvalidTransitionTarget, k.Source, k.Symbol, dest)
		}
	}

	numSymbols := len(d.alphabet)
	d.table = make([]int, len(d.states)*numSymbols)
	for i, s := range d.states {
		for j, c := range d.alphabet {
			dest, ok := transitions[Transition{Source: s, Symbol: c}]
			if !ok {
				return nil, fmt.Errorf("%w: no transition from %d on %q", ErrIncompleteTransitionFunction, s, c)
			}
			d.table[i*numSymbols+j] = d.index[dest]
		}
	}

	return d, nil
}

func sortedUnique[T cmp.Ordered](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// Accept reports whether the automaton accepts input, read as a sequence of
// runes. It fails if input holds a rune that is not in the alphabet.
func (d *DFA) Accept(input string) (bool, error) {
	p := d.initial
	for _, c := range input {
		col, ok := d.symbols[c]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, c)
		}
		p = d.next(p, col)
	}
	return d.isAccept.Test(uint(p)), nil
}

// Step returns the destination of state on symbol, or false if either is
// unknown to the automaton.
func (d *DFA) Step(state int, symbol rune) (int, bool) {
	i, ok := d.index[state]
	if !ok {
		return 0, false
	}
	col, ok := d.symbols[symbol]
	if !ok {
		return 0, false
	}
	return d.states[d.next(i, col)], true
}

func (d *DFA) next(i, col int) int {
	return d.table[i*len(d.alphabet)+col]
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// States returns the states in ascending order.
func (d *DFA) States() []int {
	return slices.Clone(d.states)
}

// Alphabet returns the symbols in ascending order.
func (d *DFA) Alphabet() []rune {
	return slices.Clone(d.alphabet)
}

func (d *DFA) Initial() int {
	return d.states[d.initial]
}

// Finals returns the final states in ascending order.
func (d *DFA) Finals() []int {
	finals := make([]int, 0, d.isAccept.Count())
	for i, ok := d.isAccept.NextSet(0); ok; i, ok = d.isAccept.NextSet(i + 1) {
		finals = append(finals, d.states[i])
	}
	return finals
}

func (d *DFA) HasState(state int) bool {
	_, ok := d.index[state]
	return ok
}

func (d *DFA) HasSymbol(symbol rune) bool {
	_, ok := d.symbols[symbol]
	return ok
}

// IsFinal Returns true if state is a final (accept) state.
func (d *DFA) IsFinal(state int) bool {
	i, ok := d.index[state]
	return ok && d.isAccept.Test(uint(i))
}

// Transitions returns a copy of the transition function.
func (d *DFA) Transitions() map[Transition]int {
	transitions := make(map[Transition]int, len(d.table))
	for i, s := range d.states {
		for j, c := range d.alphabet {
			transitions[Transition{Source: s, Symbol: c}] = d.states[d.next(i, j)]
		}
	}
	return transitions
}
