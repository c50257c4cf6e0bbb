package gbdhash

import (
	"github.com/katalvlaran/cnfid/cnfio"
)

// rawCNF holds a DIMACS file with clauses as signed integers exactly
// as read, before any canonicalisation or renumbering. The textual
// normaliser works on this form so that variable names and clause
// order survive into the canonical output.
type rawCNF struct {
	clauses [][]int
	maxVar  int
}

// readRaw parses path into its raw clause list. Comments and the
// header are skipped; the header's declared counts are ignored.
func readRaw(path string) (*rawCNF, error) {
	reader, err := cnfio.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	raw := &rawCNF{}
	var clause []int

	for {
		reader.SkipWhitespace()
		if reader.EOF() {
			if err = reader.Err(); err != nil {
				return nil, err
			}

			break
		}

		if b := reader.Peek(); b == 'c' || b == 'p' {
			if !reader.SkipLine() {
				break
			}

			continue
		}

		ok, err := reader.ReadClause(&clause)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		stored := make([]int, len(clause))
		copy(stored, clause)
		raw.clauses = append(raw.clauses, stored)

		for _, dimacs := range stored {
			v := dimacs
			if v < 0 {
				v = -v
			}
			if v > raw.maxVar {
				raw.maxVar = v
			}
		}
	}

	return raw, nil
}
