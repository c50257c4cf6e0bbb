// Package cnf defines the canonical in-memory CNF representation and
// the streaming DIMACS loader that produces it.
//
// 🚀 What is cnf?
//
//	The data model every fingerprint in cnfid operates on:
//	  • Lit — a dense literal encoding, 2·(v−1)+s with s=1 for negated
//	  • Formula — a column-packed (CSR) clause store: one flat literal
//	    array plus clause start offsets
//	  • Load — a lenient DIMACS parser that renumbers variables by
//	    first appearance and canonicalises every clause
//
// Canonical form after Load:
//
//   - every clause strictly sorted by (variable, sign), duplicates
//     collapsed
//   - tautological clauses (x ∨ ¬x ∨ ...) dropped entirely
//   - variable identifiers renumbered to [1, V] with no gaps
//   - empty clauses present in the input are preserved
//
// The declared counts of the "p cnf" header are advisory and ignored;
// the loader computes its own. Comments may appear anywhere and
// clauses may span lines.
//
// ⚙️ Usage:
//
//	f, err := cnf.Load("instance.cnf.bz2", cnf.DefaultLoadOptions())
//	if err != nil { ... }
//	for i := 0; i < f.NumClauses(); i++ {
//		clause := f.Clause(i) // borrowed []Lit, do not retain
//		...
//	}
//
// A Formula is immutable after Load and safe for concurrent reads.
package cnf
