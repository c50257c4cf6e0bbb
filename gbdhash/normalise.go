package gbdhash

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"io"
	"slices"
	"strconv"

	"github.com/katalvlaran/cnfid/cnf"
)

// Normalise writes the canonical textual form of the CNF at path to w:
// exactly one "p cnf V C" header reflecting the observed counts,
// followed by every clause in input order, literals separated by a
// single space and terminated by " 0\n". The output is deterministic
// to the byte.
func Normalise(path string, w io.Writer) error {
	raw, err := readRaw(path)
	if err != nil {
		return err
	}

	return emit(raw.clauses, raw.maxVar, w)
}

// Sanitise writes the canonical textual form with every clause
// pre-canonicalised: literals sorted by (variable, sign), duplicate
// literals collapsed, tautological clauses dropped. The header counts
// reflect the sanitised formula.
func Sanitise(path string, w io.Writer) error {
	raw, err := readRaw(path)
	if err != nil {
		return err
	}

	sanitised := make([][]int, 0, len(raw.clauses))
	maxVar := 0
	for _, clause := range raw.clauses {
		kept, tautology := canonicalClause(clause)
		if tautology {
			continue
		}
		sanitised = append(sanitised, kept)
		for _, dimacs := range kept {
			v := dimacs
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	return emit(sanitised, maxVar, w)
}

// Hash returns the GBD-Hash of path: the MD5 digest of its normalised
// textual form as 32 lowercase hex characters.
func Hash(path string) (string, error) {
	digest := md5.New()
	if err := Normalise(path, digest); err != nil {
		return "", err
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// HashSanitised returns the MD5 digest of the sanitised textual form.
// Sanitisation changes the byte stream, so this is a different
// identifier from Hash whenever the input held duplicates or
// tautologies.
func HashSanitised(path string) (string, error) {
	digest := md5.New()
	if err := Sanitise(path, digest); err != nil {
		return "", err
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// canonicalClause sorts one clause by (variable, sign) and collapses
// duplicate literals. tautology reports a complementary pair, in which
// case the returned slice must be discarded with the clause.
func canonicalClause(clause []int) (kept []int, tautology bool) {
	lits := make([]cnf.Lit, len(clause))
	for i, dimacs := range clause {
		lits[i] = cnf.NewLit(dimacs)
	}
	slices.Sort(lits)

	kept = make([]int, 0, len(lits))
	for i, lit := range lits {
		if i > 0 {
			if lit == lits[i-1] {
				continue
			}
			if lit == lits[i-1].Neg() {
				return nil, true
			}
		}
		kept = append(kept, lit.Dimacs())
	}

	return kept, false
}

// emit streams the canonical text for the given clauses and variable
// count. Buffered so that hashing large instances does not degrade to
// one write per token.
func emit(clauses [][]int, maxVar int, w io.Writer) error {
	out := bufio.NewWriter(w)

	out.WriteString("p cnf ")
	out.WriteString(strconv.Itoa(maxVar))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(len(clauses)))
	out.WriteByte('\n')

	for _, clause := range clauses {
		for _, dimacs := range clause {
			out.WriteString(strconv.Itoa(dimacs))
			out.WriteByte(' ')
		}
		out.WriteString("0\n")
	}

	return out.Flush()
}
