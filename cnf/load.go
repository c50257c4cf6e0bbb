package cnf

import (
	"slices"

	"github.com/katalvlaran/cnfid/cnfio"
)

// Load parses the DIMACS CNF file at path (possibly gz/bz2/xz/lzma
// compressed) into its canonical Formula. See the package comment for
// the canonical form. On any parse or I/O error the partial formula is
// discarded and the error surfaced.
func Load(path string, opts LoadOptions) (*Formula, error) {
	if opts.MaxVariable < 1 {
		return nil, ErrBadOptions
	}

	reader, err := cnfio.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return Parse(reader, opts)
}

// Parse reads a DIMACS CNF stream from an open cnfio.Reader. Comment
// ('c') and header ('p') lines are skipped; every other integer
// sequence terminated by 0 is one clause. The header's declared counts
// are not trusted.
func Parse(reader *cnfio.Reader, opts LoadOptions) (*Formula, error) {
	if opts.MaxVariable < 1 {
		return nil, ErrBadOptions
	}

	f := &Formula{starts: []uint32{0}}
	var clause []int
	maxVar := 0

	for {
		reader.SkipWhitespace()
		if reader.EOF() {
			if err := reader.Err(); err != nil {
				return nil, err
			}

			break
		}

		if b := reader.Peek(); b == 'c' || b == 'p' {
			if !reader.SkipLine() {
				break
			}

			continue
		}

		ok, err := reader.ReadClause(&clause)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		for _, dimacs := range clause {
			v := dimacs
			if v < 0 {
				v = -v
			}
			if v > opts.MaxVariable {
				return nil, &cnfio.ParseError{
					Path: reader.Path(),
					Line: reader.Line(),
					Msg:  "variable identifier out of range",
					Err:  ErrVariableRange,
				}
			}
			if v > maxVar {
				maxVar = v
			}
			f.lits = append(f.lits, NewLit(dimacs))
		}
		f.starts = append(f.starts, uint32(len(f.lits)))
	}

	f.canonicalise()
	f.renumber(maxVar)

	return f, nil
}

// canonicalise sorts every clause by (variable, sign), collapses
// duplicate literals and drops tautological clauses entirely. Empty
// clauses from the input survive; a clause is only removed when it
// contains a complementary pair. Runs before renumbering so that
// variables whose every occurrence sat in a tautology do not count
// towards V.
func (f *Formula) canonicalise() {
	newStarts := f.starts[:1]
	write := 0
	start := f.starts[0]

	for i := 0; i+1 < len(f.starts); i++ {
		// newStarts shares the backing array of f.starts and may already
		// have overwritten entry i, so the clause start is carried over.
		end := f.starts[i+1]
		cl := f.lits[start:end]
		start = end
		slices.Sort(cl)

		// Dedup in place; sorted order puts the two polarities of one
		// variable next to each other, so a tautology shows up as an
		// adjacent complementary pair after duplicate collapse.
		kept := 0
		tautology := false
		for j := 0; j < len(cl); j++ {
			if kept > 0 {
				prev := cl[kept-1]
				if cl[j] == prev {
					continue
				}
				if cl[j] == prev.Neg() {
					tautology = true

					break
				}
			}
			cl[kept] = cl[j]
			kept++
		}
		if tautology {
			continue
		}

		copy(f.lits[write:], cl[:kept])
		write += kept
		newStarts = append(newStarts, uint32(write))
		if kept > f.maxLen {
			f.maxLen = kept
		}
	}

	f.lits = f.lits[:write]
	f.starts = newStarts
}

// renumber maps each distinct variable, in order of first appearance
// in the literal array, to 1, 2, ..., V. The map itself is not
// observable from outside; only the gap-free result is. Renumbering
// can reorder literals relative to the per-clause sort, so each clause
// is re-sorted under its new identifiers (duplicates and tautologies
// cannot reappear under a bijection).
func (f *Formula) renumber(maxVar int) {
	if maxVar == 0 {
		return
	}

	remap := make([]int32, maxVar+1)
	next := int32(0)
	for i, lit := range f.lits {
		v := lit.Var()
		if remap[v] == 0 {
			next++
			remap[v] = next
		}
		f.lits[i] = MkLit(int(remap[v]), lit.Sign())
	}
	f.nVars = int(next)

	for i := 0; i+1 < len(f.starts); i++ {
		slices.Sort(f.lits[f.starts[i]:f.starts[i+1]])
	}
}
