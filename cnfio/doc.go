// Package cnfio provides the forward-only byte lexer used by every CNF
// reader in cnfid, with transparent decompression of gzip, bzip2, xz
// and lzma inputs.
//
// 🚀 What is cnfio?
//
//	A thin, allocation-shy reading layer:
//	  • Peek / Advance — single-byte lookahead over a buffered stream
//	  • SkipWhitespace / SkipLine — DIMACS-grade token skipping
//	  • ReadInteger / ReadUint64 — signed and unsigned decimal lexing
//	  • ReadClause — integers up to the 0 terminator of one clause
//
// Compression is detected by file extension: a path ending in .gz,
// .bz2, .xz or .lzma is unwrapped before lexing, so "instance.cnf.gz"
// reads exactly like "instance.cnf".
//
// ⚙️ Usage:
//
//	r, err := cnfio.Open("instance.cnf.xz")
//	if err != nil { ... }
//	defer r.Close()
//
//	var lit int
//	for {
//		ok, err := r.ReadInteger(&lit)
//		...
//	}
//
// All lexing failures are reported as *cnfio.ParseError carrying the
// path, the 1-based line number and a reason.
package cnfio
