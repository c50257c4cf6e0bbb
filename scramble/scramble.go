package scramble

import (
	"bytes"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/cnfid/cnf"
)

// defaultSeed is the fixed seed used when callers pass seed==0, kept
// stable so reproducible defaults stay reproducible.
const defaultSeed int64 = 1

// Scrambler derives random permutations from a seeded source.
// Not safe for concurrent use; create one per goroutine.
type Scrambler struct {
	rng *rand.Rand
}

// New returns a deterministic Scrambler. seed==0 selects the fixed
// default seed.
func New(seed int64) *Scrambler {
	if seed == 0 {
		seed = defaultSeed
	}

	return &Scrambler{rng: rand.New(rand.NewSource(seed))}
}

// Clauses extracts a formula's clauses as signed DIMACS integers, the
// mutable working form every scramble operation consumes and returns.
func Clauses(f *cnf.Formula) [][]int {
	out := make([][]int, f.NumClauses())
	for i := range out {
		clause := f.Clause(i)
		row := make([]int, len(clause))
		for j, lit := range clause {
			row[j] = lit.Dimacs()
		}
		out[i] = row
	}

	return out
}

// ShuffleClauses returns a copy with the clause order permuted.
func (s *Scrambler) ShuffleClauses(cls [][]int) [][]int {
	out := make([][]int, len(cls))
	copy(out, cls)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// ShuffleLiterals returns a copy with the literal order inside every
// clause permuted.
func (s *Scrambler) ShuffleLiterals(cls [][]int) [][]int {
	out := make([][]int, len(cls))
	for i, clause := range cls {
		row := make([]int, len(clause))
		copy(row, clause)
		s.rng.Shuffle(len(row), func(a, b int) { row[a], row[b] = row[b], row[a] })
		out[i] = row
	}

	return out
}

// RenameVariables returns a copy with variables renamed by a random
// bijection over [1, nVars]. Signs are preserved.
func (s *Scrambler) RenameVariables(cls [][]int, nVars int) [][]int {
	perm := make([]int, nVars+1)
	for old, image := range s.rng.Perm(nVars) {
		perm[old+1] = image + 1
	}

	return RenameWith(cls, perm)
}

// RenameWith applies a fixed bijection: perm[old] = new, 1-based.
// Entries for unused variables may be zero.
func RenameWith(cls [][]int, perm []int) [][]int {
	out := make([][]int, len(cls))
	for i, clause := range cls {
		row := make([]int, len(clause))
		for j, dimacs := range clause {
			v := dimacs
			sign := 1
			if v < 0 {
				v, sign = -v, -1
			}
			row[j] = sign * perm[v]
		}
		out[i] = row
	}

	return out
}

// Scramble composes the three isomorphism-preserving operations:
// clause shuffle, in-clause literal shuffle and variable renaming.
func (s *Scrambler) Scramble(cls [][]int, nVars int) [][]int {
	return s.RenameVariables(s.ShuffleLiterals(s.ShuffleClauses(cls)), nVars)
}

// Flip negates every literal. The image is generally NOT isomorphic
// to the original as signed CNF; it exists to assert polarity
// sensitivity.
func Flip(cls [][]int) [][]int {
	out := make([][]int, len(cls))
	for i, clause := range cls {
		row := make([]int, len(clause))
		for j, dimacs := range clause {
			row[j] = -dimacs
		}
		out[i] = row
	}

	return out
}

// Dimacs renders clauses as a DIMACS CNF document with a header
// reflecting the observed counts.
func Dimacs(cls [][]int) []byte {
	maxVar := 0
	for _, clause := range cls {
		for _, dimacs := range clause {
			v := dimacs
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("p cnf ")
	buf.WriteString(strconv.Itoa(maxVar))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(len(cls)))
	buf.WriteByte('\n')
	for _, clause := range cls {
		for _, dimacs := range clause {
			buf.WriteString(strconv.Itoa(dimacs))
			buf.WriteByte(' ')
		}
		buf.WriteString("0\n")
	}

	return buf.Bytes()
}
