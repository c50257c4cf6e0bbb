package cnf

// Formula is a multiset of clauses over variables [1, V], stored
// column-packed: all clause literals concatenated in lits, with
// starts[i] the offset of clause i, so clause i occupies
// lits[starts[i]:starts[i+1]].
//
// Invariants (established by Load, relied on everywhere):
//   - starts[0] == 0, starts[len(starts)-1] == len(lits), monotone
//   - every literal's variable lies in [1, NumVars()]
//   - every clause strictly sorted by (variable, sign); no clause
//     holds both polarities of one variable
//
// A Formula is immutable after construction.
type Formula struct {
	lits   []Lit
	starts []uint32
	nVars  int
	maxLen int
}

// NumVars returns V, the number of distinct variables after
// renumbering.
func (f *Formula) NumVars() int { return f.nVars }

// NumClauses returns the number of stored clauses.
func (f *Formula) NumClauses() int { return len(f.starts) - 1 }

// NumLiterals returns the total literal count over all clauses.
func (f *Formula) NumLiterals() int { return len(f.lits) }

// MaxClauseLength returns the length of the longest clause, 0 for a
// formula without clauses.
func (f *Formula) MaxClauseLength() int { return f.maxLen }

// Clause returns the literals of clause i as a borrowed slice into the
// formula's backing array. Callers must not modify or retain it past
// the formula's lifetime.
func (f *Formula) Clause(i int) []Lit {
	return f.lits[f.starts[i]:f.starts[i+1]]
}
