// Package isohash computes isomorphism-invariant fingerprints of CNF
// formulas by Weisfeiler–Leman color refinement on the literal
// hypergraph.
//
// 🚀 What is isohash?
//
//	Two formulas that differ only by
//	  • clause order,
//	  • literal order within clauses, or
//	  • a renaming of their variables
//	receive the same ISO-Hash2, while formulas differing in clause
//	multiset, clause sizes or polarity structure hash apart (with the
//	usual high probability of a 64-bit invariant).
//
// Algorithm sketch (ISO-Hash2):
//
//  1. Every literal starts with color 1.
//  2. Each round, every clause hashes the sum of its literal colors
//     through a 64-bit avalanche mix and adds the result back into
//     each member literal's next color (commutative, so clause and
//     literal order cannot matter).
//  3. A finaliser couples the two polarities of every variable into a
//     signature pair, canonically sorts the signature table, replaces
//     colors by mixed ranks, and folds the table into a (sum, xor)
//     fingerprint.
//  4. Rounds stop when the variable partition stabilises (its class
//     count stops growing) or MaxIterations is reached; fingerprints
//     of all executed rounds are chained into the final 64-bit hash,
//     printed as 16 lowercase hex characters.
//
// The chained final hash keeps polarity asymmetry observable: a
// formula and its polarity-flipped image disagree in the first round's
// fingerprint even though rank canonicalisation later merges their
// refinement states.
//
// The legacy degree-sequence hash (ISO-Hash, MD5-based) is kept as
// Legacy for compatibility with existing benchmark databases.
//
// ⚙️ Usage:
//
//	res, err := isohash.Hash("instance.cnf.xz", isohash.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Hash, res.Iterations, res.Stabilized)
//
// Complexity per round: O(L + V·log V). Memory: O(V).
package isohash
