package gbdhash

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/cnfid/cnf"
	"github.com/katalvlaran/cnfid/cnfio"
)

// Report is the result of a sanitation check. Every flag is true when
// the corresponding property holds; a fully canonical, sanitised file
// has all six set.
type Report struct {
	// HeaderConsistent — a "p cnf V C" header is present and its
	// declared counts match the observed ones.
	HeaderConsistent bool
	// WhitespaceNormalised — the byte layout matches the canonical
	// form: single spaces, one clause per line ending right after its
	// 0 terminator, no tabs, CRs, blank lines or stray spaces.
	WhitespaceNormalised bool
	// NoComments — no 'c' lines anywhere.
	NoComments bool
	// NoTautologies — no clause holds both polarities of one variable.
	NoTautologies bool
	// NoDuplicateLiterals — no clause repeats a literal.
	NoDuplicateLiterals bool
	// NoEmptyClauses — no clause is empty.
	NoEmptyClauses bool
}

// Check analyses the CNF at path and reports which canonical-form
// properties it satisfies. Malformed integer tokens fail the check
// with a *cnfio.ParseError, matching the loader.
func Check(path string) (Report, error) {
	reader, err := cnfio.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer reader.Close()

	report := Report{
		WhitespaceNormalised: true,
		NoComments:           true,
		NoTautologies:        true,
		NoDuplicateLiterals:  true,
		NoEmptyClauses:       true,
	}

	headerSeen := false
	declVars, declClauses := 0, 0
	maxVar, clauseCount := 0, 0
	var clause []cnf.Lit
	finalNewline := true
	sawAnyByte := false

	for !reader.EOF() {
		sawAnyByte = true
		line, terminated := readLine(reader)
		if err = reader.Err(); err != nil {
			return Report{}, err
		}
		finalNewline = terminated

		if strings.ContainsAny(line, "\t\r") {
			report.WhitespaceNormalised = false
		}
		trimmed := strings.TrimRight(line, "\t\r")

		switch {
		case trimmed == "":
			report.WhitespaceNormalised = false

		case trimmed[0] == 'c':
			report.NoComments = false

		case trimmed[0] == 'p':
			if headerSeen {
				report.WhitespaceNormalised = false
			}
			fields := strings.Fields(trimmed)
			if len(fields) == 4 && fields[1] == "cnf" {
				v, errV := strconv.Atoi(fields[2])
				c, errC := strconv.Atoi(fields[3])
				if errV == nil && errC == nil && !headerSeen {
					headerSeen = true
					declVars, declClauses = v, c
				}
			}
			if trimmed != line || !isSingleSpaced(line) {
				report.WhitespaceNormalised = false
			}

		default:
			if !isSingleSpaced(line) {
				report.WhitespaceNormalised = false
			}
			fields := strings.Fields(trimmed)
			for i, field := range fields {
				value, errTok := strconv.Atoi(field)
				if errTok != nil {
					return Report{}, &cnfio.ParseError{
						Path: reader.Path(),
						Line: reader.Line(),
						Msg:  "malformed integer token " + strconv.Quote(field),
						Err:  cnfio.ErrMalformedInteger,
					}
				}
				if value == 0 {
					inspectClause(clause, &report)
					clauseCount++
					clause = clause[:0]
					// Canonical layout ends the line right after the
					// terminator; anything after a 0 is denormalised.
					if i != len(fields)-1 {
						report.WhitespaceNormalised = false
					}

					continue
				}
				v := value
				if v < 0 {
					v = -v
				}
				if v > maxVar {
					maxVar = v
				}
				clause = append(clause, cnf.NewLit(value))
			}
			// A data line not ending in 0 means the clause spans lines.
			if len(fields) > 0 && fields[len(fields)-1] != "0" {
				report.WhitespaceNormalised = false
			}
		}
	}

	if len(clause) > 0 {
		return Report{}, &cnfio.ParseError{
			Path: reader.Path(),
			Line: reader.Line(),
			Msg:  "clause not terminated by 0",
			Err:  cnfio.ErrTruncatedClause,
		}
	}
	if sawAnyByte && !finalNewline {
		report.WhitespaceNormalised = false
	}
	report.HeaderConsistent = headerSeen && declVars == maxVar && declClauses == clauseCount

	return report, nil
}

// inspectClause updates the tautology, duplicate and empty-clause
// flags for one completed clause.
func inspectClause(clause []cnf.Lit, report *Report) {
	if len(clause) == 0 {
		report.NoEmptyClauses = false

		return
	}

	sorted := make([]cnf.Lit, len(clause))
	copy(sorted, clause)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			report.NoDuplicateLiterals = false
		}
		if sorted[i] == sorted[i-1].Neg() {
			report.NoTautologies = false
		}
	}
}

// readLine consumes one raw line (without its LF). terminated reports
// whether the line actually ended with an LF.
func readLine(reader *cnfio.Reader) (line string, terminated bool) {
	var sb strings.Builder
	for !reader.EOF() {
		b := reader.Peek()
		reader.Advance()
		if b == '\n' {
			return sb.String(), true
		}
		sb.WriteByte(b)
	}

	return sb.String(), false
}

// isSingleSpaced reports whether a line uses exactly one space between
// tokens with none at either end.
func isSingleSpaced(line string) bool {
	if line == "" {
		return false
	}
	if line[0] == ' ' || line[len(line)-1] == ' ' {
		return false
	}

	return !strings.Contains(line, "  ")
}
