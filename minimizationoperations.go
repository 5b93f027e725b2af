package automaton

// Minimize returns the smallest DFA accepting the same language as d.
//
// States unreachable from the initial state are dropped. The remaining
// states start in two classes, non-final and final, and every pass splits
// each class so that two states stay together only if, on every symbol,
// their destinations sit in the same class of the previous pass. Passes
// repeat until the number of classes stops changing. Class i of the final
// partition becomes state i of the result.
func Minimize(d *DFA) (*DFA, error) {
	reachable := reachableStates(d)

	var nonFinals, finals []int
	for i, ok := reachable.NextSet(0); ok; i, ok = reachable.NextSet(i + 1) {
		if d.isAccept.Test(i) {
			finals = append(finals, int(i))
		} else {
			nonFinals = append(nonFinals, int(i))
		}
	}

	partition := make([][]int, 0, 2)
	for _, class := range [][]int{nonFinals, finals} {
		if len(class) > 0 {
			partition = append(partition, class)
		}
	}

	// classOf[i] is the class of dense state i in partition, -1 if unreachable.
	classOf := make([]int, d.NumStates())
	for {
		indexPartition(partition, classOf)
		refined := make([][]int, 0, len(partition))
		for _, class := range partition {
			start := len(refined)
		NEXT:
			for _, s := range class {
				for k := start; k < len(refined); k++ {
					if nextEqual(d, s, refined[k][0], classOf) {
						refined[k] = append(refined[k], s)
						continue NEXT
					}
				}
				refined = append(refined, []int{s})
			}
		}

		stable := len(refined) == len(partition)
		partition = refined
		if stable {
			break
		}
	}
	indexPartition(partition, classOf)

	numSymbols := len(d.alphabet)
	states := make([]int, len(partition))
	transitions := make(map[Transition]int, len(partition)*numSymbols)
	for i, class := range partition {
		states[i] = i
		representative := class[0]
		for col, c := range d.alphabet {
			transitions[Transition{Source: i, Symbol: c}] = classOf[d.next(representative, col)]
		}
	}

	newFinals := make([]int, 0)
	for _, f := range finals {
		newFinals = append(newFinals, classOf[f])
	}

	return NewDFA(states, d.alphabet, transitions, classOf[d.initial], newFinals)
}

func indexPartition(partition [][]int, classOf []int) {
	for i := range classOf {
		classOf[i] = -1
	}
	for i, class := range partition {
		for _, s := range class {
			classOf[s] = i
		}
	}
}

// nextEqual reports whether dense states a and b move into the same class
// on every symbol.
func nextEqual(d *DFA, a, b int, classOf []int) bool {
	for col := range d.alphabet {
		if classOf[d.next(a, col)] != classOf[d.next(b, col)] {
			return false
		}
	}
	return true
}
