// Package cnfid assigns stable identifiers to SAT instances in DIMACS
// CNF — from byte-exact content hashes to isomorphism-invariant
// fingerprints.
//
// 🚀 What is cnfid?
//
//	A toolkit for fingerprinting CNF formulas that brings together:
//		• Streaming DIMACS parsing with transparent gz/bz2/xz/lzma input
//		• A compact column-packed formula store with canonical clauses
//		• GBD-Hash: MD5 of the normalised textual form (content identity)
//		• ISO-Hash2: a Weisfeiler–Leman color-refinement fingerprint that
//		  is invariant under clause order, literal order and variable
//		  renaming — but sensitive to polarity structure
//		• A deterministic scrambler for isomorphism robustness testing
//
// ✨ Why choose cnfid?
//
//   - Deterministic – same input, same fingerprint, on every platform
//   - Lean – O(V + L) peak memory, single streaming parse
//   - Honest invariance – two equal ISO-Hash2 values mean the formulas
//     are, with high probability, isomorphic as CNF
//
// Everything is organized under per-concern subpackages:
//
//	cnfio/    — buffered byte lexer over possibly-compressed streams
//	cnf/      — Lit, Formula (CSR layout) and the DIMACS loader
//	gbdhash/  — canonical text form, sanitiser and the MD5 byte hash
//	isohash/  — WL color refinement and the fingerprint finaliser
//	scramble/ — seeded clause/literal/variable scrambling for tests
//	rlimit/   — CPU-time, memory and output-size limits for the CLI
//	cmd/cnfid — the command line: id, isohash, isohash2, normalize, ...
//
// Quick taste:
//
//	result, err := isohash.Hash("instance.cnf.gz", isohash.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(result.Hash) // 16 lowercase hex characters
//
//	go get github.com/katalvlaran/cnfid
package cnfid
