package gbdhash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cnfid/cnfio"
	"github.com/katalvlaran/cnfid/gbdhash"
)

// TestCheck_Canonical reports a fully sanitised file as clean on every
// flag.
func TestCheck_Canonical(t *testing.T) {
	report, err := gbdhash.Check(writeCNF(t, "p cnf 3 2\n1 2 0\n-2 3 0\n"))
	require.NoError(t, err)

	assert.True(t, report.HeaderConsistent)
	assert.True(t, report.WhitespaceNormalised)
	assert.True(t, report.NoComments)
	assert.True(t, report.NoTautologies)
	assert.True(t, report.NoDuplicateLiterals)
	assert.True(t, report.NoEmptyClauses)
}

// TestCheck_Violations exercises each flag in isolation.
func TestCheck_Violations(t *testing.T) {
	cases := []struct {
		name    string
		content string
		probe   func(gbdhash.Report) bool
	}{
		{
			name:    "header counts disagree",
			content: "p cnf 9 9\n1 2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.HeaderConsistent },
		},
		{
			name:    "missing header",
			content: "1 2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.HeaderConsistent },
		},
		{
			name:    "double space",
			content: "p cnf 2 1\n1  2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.WhitespaceNormalised },
		},
		{
			name:    "trailing space",
			content: "p cnf 2 1\n1 2 0 \n",
			probe:   func(r gbdhash.Report) bool { return r.WhitespaceNormalised },
		},
		{
			name:    "clause spans lines",
			content: "p cnf 2 1\n1\n2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.WhitespaceNormalised },
		},
		{
			name:    "missing final newline",
			content: "p cnf 2 1\n1 2 0",
			probe:   func(r gbdhash.Report) bool { return r.WhitespaceNormalised },
		},
		{
			name:    "comment line",
			content: "c hello\np cnf 2 1\n1 2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.NoComments },
		},
		{
			name:    "tautological clause",
			content: "p cnf 2 1\n1 -1 2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.NoTautologies },
		},
		{
			name:    "duplicate literal",
			content: "p cnf 2 1\n1 1 2 0\n",
			probe:   func(r gbdhash.Report) bool { return r.NoDuplicateLiterals },
		},
		{
			name:    "empty clause",
			content: "p cnf 1 2\n1 0\n0\n",
			probe:   func(r gbdhash.Report) bool { return r.NoEmptyClauses },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := gbdhash.Check(writeCNF(t, tc.content))
			require.NoError(t, err)
			assert.False(t, tc.probe(report), "flag must report the defect")
		})
	}
}

// TestCheck_MalformedToken fails like the loader instead of guessing.
func TestCheck_MalformedToken(t *testing.T) {
	_, err := gbdhash.Check(writeCNF(t, "1 woof 0\n"))

	assert.ErrorIs(t, err, cnfio.ErrMalformedInteger)
}

// TestCheck_Truncated flags a clause with no terminator as a parse
// error.
func TestCheck_Truncated(t *testing.T) {
	_, err := gbdhash.Check(writeCNF(t, "1 2\n"))

	assert.ErrorIs(t, err, cnfio.ErrTruncatedClause)
}
