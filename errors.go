package automaton

import "errors"

// Validation failures. Operations wrap one of these with the offending
// state or symbol, test for them with errors.Is.
var (
	// ErrInvalidInitialState the initial state is not a member of the state set.
	ErrInvalidInitialState = errors.New("initial state not included in states")

	// ErrInvalidFinalState a final state is not a member of the state set.
	ErrInvalidFinalState = errors.New("final state not included in states")

	// ErrInvalidTransitionSource a transition leaves a state outside the state set.
	ErrInvalidTransitionSource = errors.New("transition source state not included in states")

	// ErrInvalidTransitionTarget a transition enters a state outside the state set.
	ErrInvalidTransitionTarget = errors.New("transition target state not included in states")

	// ErrIncompleteTransitionFunction some (state, symbol) pair has no target.
	ErrIncompleteTransitionFunction = errors.New("transition function is not total")

	// ErrEpsilonSymbolInAlphabet the epsilon symbol is also an alphabet symbol.
	ErrEpsilonSymbolInAlphabet = errors.New("epsilon symbol must not be in alphabet")

	// ErrSymbolNotInAlphabet the input of Accept contains an unknown symbol.
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

	// ErrTooComplexToDeterminize subset construction exceeded its work limit.
	ErrTooComplexToDeterminize = errors.New("automaton too complex to determinize")
)
