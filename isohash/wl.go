package isohash

import (
	"fmt"
	"os"
	"slices"

	"github.com/katalvlaran/cnfid/cnf"
)

// initialColor is the color every literal starts with. It must be
// non-zero: a zero start would make the first round's clause hashes
// collapse into the all-zero attractor.
const initialColor = 1

// litColors holds the current colors of the two literals of one
// variable.
type litColors struct {
	pos, neg uint64
}

// signature is one row of the finaliser's canonical table: the
// polarity-coupled feature hashes of a variable plus the variable
// itself for the write-back.
type signature struct {
	hPos, hNeg uint64
	v          int32
}

// fingerprint summarises one round's coloring as commutative (sum,
// xor) accumulators. Every executed round's fingerprint is chained
// into the final hash.
type fingerprint struct {
	sum, xor uint64
}

// engine runs Weisfeiler–Leman refinement over one formula. It owns
// the color double-buffer and scratch tables for the duration of one
// hashing call; nothing is shared between calls.
type engine struct {
	formula *cnf.Formula

	cur, next []litColors // V+1 entries, index 0 unused
	sig       []signature // V entries, reused every round

	emptyClauses uint64
	iterations   int
	trace        uint64
}

// newEngine allocates the per-call state for f.
func newEngine(f *cnf.Formula) *engine {
	nVars := f.NumVars()
	e := &engine{
		formula: f,
		cur:     make([]litColors, nVars+1),
		next:    make([]litColors, nVars+1),
		sig:     make([]signature, nVars),
	}
	for v := 1; v <= nVars; v++ {
		e.cur[v] = litColors{pos: initialColor, neg: initialColor}
	}
	for i := 0; i < f.NumClauses(); i++ {
		if len(f.Clause(i)) == 0 {
			e.emptyClauses++
		}
	}

	return e
}

// color reads the current color of one literal.
func (e *engine) color(lit cnf.Lit) uint64 {
	lc := &e.cur[lit.Var()]
	if lit.Sign() {
		return lc.neg
	}

	return lc.pos
}

// add accumulates a clause hash into the next color of one literal.
// Addition modulo 2^64 is commutative, so neither clause iteration
// order nor literal order can influence the result.
func (e *engine) add(lit cnf.Lit, clauseHash uint64) {
	lc := &e.next[lit.Var()]
	if lit.Sign() {
		lc.neg += clauseHash
	} else {
		lc.pos += clauseHash
	}
}

// step runs one refinement round: clause aggregation into the next
// buffer, then canonical finalisation. It returns the round's
// fingerprint and the number of distinct variable signatures, the
// partition size the stabilisation check watches.
func (e *engine) step() (fingerprint, int) {
	for v := range e.next {
		e.next[v] = litColors{}
	}

	f := e.formula
	for i := 0; i < f.NumClauses(); i++ {
		clause := f.Clause(i)
		if len(clause) == 0 {
			continue
		}
		var sum uint64
		for _, lit := range clause {
			sum += e.color(lit)
		}
		clauseHash := mix64(sum)
		for _, lit := range clause {
			e.add(lit, clauseHash)
		}
	}

	fp, distinct := e.finalise()
	e.cur, e.next = e.next, e.cur
	e.iterations++

	return fp, distinct
}

// finalise canonicalises the aggregated colors and produces the
// round's fingerprint.
//
// For each variable the two polarities are coupled into the feature
// hashes
//
//	hPos = H(cur.pos ‖ agg.pos ‖ cur.neg)
//	hNeg = H(cur.neg ‖ agg.neg ‖ cur.pos)
//
// The signature table is sorted by (hPos, hNeg) and replaced by mixed
// ranks, which are written into both polarity slots: the next round
// then depends only on the canonical per-variable color, which is what
// makes the fingerprint stable under variable renaming. Polarity
// asymmetry still reaches the fingerprint, because the accumulators
// fold in the *ordered* pair hash H(hPos ‖ hNeg) of every variable
// before the ranks erase orientation.
//
// Empty clauses have no literal slot to aggregate into; their count is
// folded into the fingerprint directly so that the empty clause is not
// invisible to the hash.
func (e *engine) finalise() (fingerprint, int) {
	nVars := e.formula.NumVars()
	for v := 1; v <= nVars; v++ {
		cur, agg := &e.cur[v], &e.next[v]
		e.sig[v-1] = signature{
			hPos: hash3(cur.pos, agg.pos, cur.neg),
			hNeg: hash3(cur.neg, agg.neg, cur.pos),
			v:    int32(v),
		}
	}

	var fp fingerprint
	for i := range e.sig {
		pair := hash2(e.sig[i].hPos, e.sig[i].hNeg)
		fp.sum += pair
		fp.xor ^= pair
	}

	slices.SortFunc(e.sig, func(a, b signature) int {
		switch {
		case a.hPos != b.hPos:
			if a.hPos < b.hPos {
				return -1
			}

			return 1
		case a.hNeg != b.hNeg:
			if a.hNeg < b.hNeg {
				return -1
			}

			return 1
		}

		return 0
	})

	rank := uint64(0)
	for i := range e.sig {
		if i > 0 && (e.sig[i].hPos != e.sig[i-1].hPos || e.sig[i].hNeg != e.sig[i-1].hNeg) {
			rank++
		}
		stable := mix64(rank)
		e.next[e.sig[i].v] = litColors{pos: stable, neg: stable}
	}
	distinct := 0
	if len(e.sig) > 0 {
		distinct = int(rank) + 1
	}

	if e.emptyClauses > 0 {
		h := mix64(e.emptyClauses)
		fp.sum += h
		fp.xor ^= h
	}

	return fp, distinct
}

// run executes refinement rounds until the variable partition
// stabilises or the round budget is exhausted, chaining every round's
// fingerprint into the final 64-bit hash.
//
// Refinement only ever splits color classes, so a round whose distinct
// signature count does not grow past the previous round's has reached
// the fixed point. At least two rounds must execute before the check
// can fire.
func (e *engine) run(maxIterations int) (hash uint64, stabilized bool) {
	prevDistinct := -1
	for e.iterations < maxIterations {
		fp, distinct := e.step()
		e.trace = hash3(e.trace, fp.sum, fp.xor)
		if e.iterations >= 2 && distinct <= prevDistinct {
			return e.trace, true
		}
		prevDistinct = distinct
	}

	return e.trace, false
}

// HashFormula computes ISO-Hash2 of an already-loaded formula.
func HashFormula(f *cnf.Formula, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	e := newEngine(f)
	hash, stabilized := e.run(opts.MaxIterations)
	res := Result{
		Hash:       fmt.Sprintf("%016x", hash),
		Iterations: e.iterations,
		Stabilized: stabilized,
	}

	if opts.PrintStats {
		w := opts.StatsWriter
		if w == nil {
			w = os.Stderr
		}
		fmt.Fprintf(w, "c isohash2 vars=%d clauses=%d literals=%d max_clause=%d iterations=%d stabilized=%t\n",
			f.NumVars(), f.NumClauses(), f.NumLiterals(), f.MaxClauseLength(), res.Iterations, res.Stabilized)
	}

	return res, nil
}

// Hash computes ISO-Hash2 of the DIMACS CNF file at path, possibly
// gz/bz2/xz/lzma compressed. Option validation happens before any
// parsing.
func Hash(path string, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	f, err := cnf.Load(path, cnf.DefaultLoadOptions())
	if err != nil {
		return Result{}, err
	}

	return HashFormula(f, opts)
}
