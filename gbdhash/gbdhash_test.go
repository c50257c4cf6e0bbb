package gbdhash_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cnfid/cnf"
	"github.com/katalvlaran/cnfid/gbdhash"
)

// goldenHash is the MD5 of exactly "p cnf 3 2\n1 2 0\n-2 3 0\n".
const goldenHash = "0bfd50f6a60136c8f72c82c9c5fda669"

var hexMD5 = regexp.MustCompile(`^[0-9a-f]{32}$`)

// writeCNF drops DIMACS content into a fresh temp file.
func writeCNF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.cnf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// normalised returns the canonical text of content.
func normalised(t *testing.T, content string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gbdhash.Normalise(writeCNF(t, content), &buf))

	return buf.String()
}

// sanitised returns the sanitised canonical text of content.
func sanitised(t *testing.T, content string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gbdhash.Sanitise(writeCNF(t, content), &buf))

	return buf.String()
}

// TestNormalise_AlreadyCanonical leaves canonical input byte-identical.
func TestNormalise_AlreadyCanonical(t *testing.T) {
	const content = "p cnf 3 2\n1 2 0\n-2 3 0\n"

	assert.Equal(t, content, normalised(t, content))
}

// TestNormalise_Messy collapses whitespace, drops comments, rebuilds
// the header from observed counts, and keeps clause order and literal
// order untouched.
func TestNormalise_Messy(t *testing.T) {
	const content = "c noise\np cnf 99 99\n  2    1 0 \nc more noise\n-2\n3 0\n"

	assert.Equal(t, "p cnf 3 2\n2 1 0\n-2 3 0\n", normalised(t, content))
}

// TestNormalise_EmptyClause renders a bare terminator as "0\n".
func TestNormalise_EmptyClause(t *testing.T) {
	assert.Equal(t, "p cnf 1 2\n1 0\n0\n", normalised(t, "1 0\n0\n"))
}

// TestSanitise_SortsAndDedups canonicalises each clause and drops
// tautologies, with the header reflecting the sanitised counts.
func TestSanitise_SortsAndDedups(t *testing.T) {
	const content = "3 1 1 0\n2 -2 7 0\n"

	// The tautology disappears; variable 7 lived only there, so the
	// observed maximum drops with it.
	assert.Equal(t, "p cnf 3 1\n1 3 0\n", sanitised(t, content))
}

// TestSanitise_Idempotent re-sanitises its own output byte-for-byte.
func TestSanitise_Idempotent(t *testing.T) {
	first := sanitised(t, "3 1 1 0\n-2 2 4 0\n1 -4 0\n")
	second := sanitised(t, first)

	assert.Equal(t, first, second)
}

// TestHash_Golden pins the GBD-Hash of the canonical example to its
// known MD5.
func TestHash_Golden(t *testing.T) {
	hash, err := gbdhash.Hash(writeCNF(t, "p cnf 3 2\n1 2 0\n-2 3 0\n"))
	require.NoError(t, err)

	assert.Equal(t, goldenHash, hash)
}

// TestHash_NormalisesFirst hashes the canonical form, so denormalised
// bytes of the same formula collapse to the same identifier.
func TestHash_NormalisesFirst(t *testing.T) {
	messy, err := gbdhash.Hash(writeCNF(t, "c x\np cnf 3 2\n1   2 0\n-2\n3 0\n"))
	require.NoError(t, err)

	assert.Equal(t, goldenHash, messy)
}

// TestHash_SanitisationChangesIdentifier keeps Hash and HashSanitised
// distinct when the input holds duplicates.
func TestHash_SanitisationChangesIdentifier(t *testing.T) {
	path := writeCNF(t, "1 1 2 0\n")

	plain, err := gbdhash.Hash(path)
	require.NoError(t, err)
	clean, err := gbdhash.HashSanitised(path)
	require.NoError(t, err)

	assert.Regexp(t, hexMD5, plain)
	assert.Regexp(t, hexMD5, clean)
	assert.NotEqual(t, plain, clean)
}

// TestNormalise_RoundTrip reloads the normalised text and compares the
// resulting formula with the directly loaded one, clause by clause.
func TestNormalise_RoundTrip(t *testing.T) {
	const content = "c noise\np cnf 9 9\n5   3 0\n-3\n7 0\n0\n"

	direct, err := cnf.Load(writeCNF(t, content), cnf.DefaultLoadOptions())
	require.NoError(t, err)
	reloaded, err := cnf.Load(writeCNF(t, normalised(t, content)), cnf.DefaultLoadOptions())
	require.NoError(t, err)

	require.Equal(t, direct.NumVars(), reloaded.NumVars())
	require.Equal(t, direct.NumClauses(), reloaded.NumClauses())
	require.Equal(t, direct.NumLiterals(), reloaded.NumLiterals())
	for i := 0; i < direct.NumClauses(); i++ {
		assert.Equal(t, direct.Clause(i), reloaded.Clause(i), "clause %d", i)
	}
}
