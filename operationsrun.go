package automaton

// Run is Accept for callers that treat a symbol outside the alphabet as a
// rejection rather than an error.
func Run(d *DFA, s string) bool {
	ok, err := d.Accept(s)
	return err == nil && ok
}
