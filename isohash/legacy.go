package isohash

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/katalvlaran/cnfid/cnf"
)

// degrees counts how often each polarity of a variable occurs.
type degrees struct {
	lo, hi uint32
}

// Legacy computes the first-generation ISO-Hash of the file at path:
// the MD5 digest of the sorted variable degree sequence, 32 lowercase
// hex characters.
//
// Each variable contributes its two per-polarity occurrence counts,
// normalised so the smaller comes first; the pairs are sorted and
// hashed as text. The result is invariant under clause order, literal
// order, variable renaming *and* polarity flips — strictly coarser
// than ISO-Hash2, which is why it only survives here as the legacy
// database identifier.
func Legacy(path string) (string, error) {
	f, err := cnf.Load(path, cnf.DefaultLoadOptions())
	if err != nil {
		return "", err
	}

	return LegacyFormula(f), nil
}

// LegacyFormula computes the legacy degree-sequence hash of an
// already-loaded formula.
func LegacyFormula(f *cnf.Formula) string {
	seq := make([]degrees, f.NumVars())
	for i := 0; i < f.NumClauses(); i++ {
		for _, lit := range f.Clause(i) {
			d := &seq[lit.Var()-1]
			if lit.Sign() {
				d.hi++
			} else {
				d.lo++
			}
		}
	}
	for i := range seq {
		if seq[i].lo > seq[i].hi {
			seq[i].lo, seq[i].hi = seq[i].hi, seq[i].lo
		}
	}
	slices.SortFunc(seq, func(a, b degrees) int {
		switch {
		case a.lo != b.lo:
			if a.lo < b.lo {
				return -1
			}

			return 1
		case a.hi != b.hi:
			if a.hi < b.hi {
				return -1
			}

			return 1
		}

		return 0
	})

	digest := md5.New()
	for _, d := range seq {
		fmt.Fprintf(digest, "%d %d ", d.lo, d.hi)
	}

	return hex.EncodeToString(digest.Sum(nil))
}
