package automaton

// Automata builds small canonical DFAs over a given alphabet.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new one-state DFA with the empty language.
func (*Automata) MakeEmpty(alphabet []rune) (*DFA, error) {
	return NewDFA([]int{0}, alphabet, loop(0, alphabet), 0, nil)
}

// MakeEmptyString
// Returns a new DFA that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet []rune) (*DFA, error) {
	transitions := loop(1, alphabet)
	for _, c := range alphabet {
		transitions[Transition{Source: 0, Symbol: c}] = 1
	}
	return NewDFA([]int{0, 1}, alphabet, transitions, 0, []int{0})
}

// MakeAnyString
// Returns a new one-state DFA that accepts all strings over alphabet.
func (*Automata) MakeAnyString(alphabet []rune) (*DFA, error) {
	return NewDFA([]int{0}, alphabet, loop(0, alphabet), 0, []int{0})
}

func loop(state int, alphabet []rune) map[Transition]int {
	transitions := make(map[Transition]int, len(alphabet))
	for _, c := range alphabet {
		transitions[Transition{Source: state, Symbol: c}] = state
	}
	return transitions
}
