package isohash_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/cnfid/cnf"
	"github.com/katalvlaran/cnfid/isohash"
)

// randomInstance renders a deterministic random 3-SAT instance.
func randomInstance(nVars, nClauses int) []byte {
	rng := rand.New(rand.NewSource(1))
	var buf bytes.Buffer
	for i := 0; i < nClauses; i++ {
		for j := 0; j < 3; j++ {
			v := rng.Intn(nVars) + 1
			if rng.Intn(2) == 1 {
				v = -v
			}
			buf.WriteString(strconv.Itoa(v))
			buf.WriteByte(' ')
		}
		buf.WriteString("0\n")
	}

	return buf.Bytes()
}

// benchmarkHash loads a random instance once and times the refinement
// alone.
func benchmarkHash(b *testing.B, nVars, nClauses int) {
	path := filepath.Join(b.TempDir(), "bench.cnf")
	if err := os.WriteFile(path, randomInstance(nVars, nClauses), 0o644); err != nil {
		b.Fatalf("write instance: %v", err)
	}
	f, err := cnf.Load(path, cnf.DefaultLoadOptions())
	if err != nil {
		b.Fatalf("load instance: %v", err)
	}
	opts := isohash.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := isohash.HashFormula(f, opts); err != nil {
			b.Fatalf("hash failed: %v", err)
		}
	}
}

// BenchmarkHash_Small refines 100 variables over 400 clauses.
func BenchmarkHash_Small(b *testing.B) { benchmarkHash(b, 100, 400) }

// BenchmarkHash_Medium refines 2000 variables over 8000 clauses.
func BenchmarkHash_Medium(b *testing.B) { benchmarkHash(b, 2000, 8000) }

// BenchmarkLoad_Medium measures parsing and canonicalisation.
func BenchmarkLoad_Medium(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.cnf")
	if err := os.WriteFile(path, randomInstance(2000, 8000), 0o644); err != nil {
		b.Fatalf("write instance: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cnf.Load(path, cnf.DefaultLoadOptions()); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}
