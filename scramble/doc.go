// Package scramble produces isomorphic images of CNF formulas for
// robustness testing: permuted clause order, permuted literal order
// within clauses, renamed variables, and (deliberately
// non-isomorphic) polarity flips. There is no clause-duplication
// operation.
//
// All randomness is seeded and deterministic: the same seed yields the
// same scrambled family on every platform, so test failures reproduce
// exactly.
//
// ⚙️ Usage:
//
//	f, _ := cnf.Load("ref.cnf", cnf.DefaultLoadOptions())
//	cls := scramble.Clauses(f)
//	s := scramble.New(42)
//	copy1 := scramble.Dimacs(s.Scramble(cls, f.NumVars()))
//	copy2 := scramble.Dimacs(s.Scramble(cls, f.NumVars()))
//	// copy1, copy2, ... must all ISO-Hash2 to the reference value
package scramble
