// Package gbdhash produces the canonical textual form of a DIMACS CNF
// file and the byte-exact MD5 content identifier (GBD-Hash) computed
// over it.
//
// 🚀 What is gbdhash?
//
//	The content-identity side of cnfid:
//	  • Normalise — one "p cnf V C" header with the observed counts,
//	    then every clause in input order, single-space separated,
//	    " 0\n" terminated. Comments are dropped, whitespace collapsed.
//	  • Sanitise — Normalise plus per-clause canonicalisation: literals
//	    sorted by (variable, sign), duplicates collapsed, tautological
//	    clauses dropped.
//	  • Hash / HashSanitised — lowercase-hex MD5 of the respective
//	    canonical stream (32 characters).
//	  • Check — sanitation report: header consistency, whitespace
//	    normalisation, comments, tautologies, duplicate literals and
//	    empty clauses.
//
// The hash is byte-exact: the same logical formula with different
// clause order, or sanitised versus merely normalised, yields a
// different GBD-Hash. Use isohash for isomorphism invariance.
//
// MD5 is retained here as the legacy benchmark-database identifier;
// it plays no role inside ISO-Hash2.
//
// ⚙️ Usage:
//
//	id, err := gbdhash.Hash("instance.cnf")        // 32 hex chars
//	err = gbdhash.Normalise("instance.cnf", os.Stdout)
//	report, err := gbdhash.Check("instance.cnf")
package gbdhash
