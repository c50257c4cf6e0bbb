// Package cnf - load options and sentinel errors.
package cnf

import "errors"

// Sentinel errors for formula loading.
var (
	// ErrVariableRange indicates a literal whose variable identifier
	// exceeds LoadOptions.MaxVariable.
	ErrVariableRange = errors.New("cnf: variable identifier exceeds configured maximum")

	// ErrBadOptions indicates nonsensical load options (MaxVariable < 1).
	ErrBadOptions = errors.New("cnf: invalid load options")
)

// defaultMaxVariable bounds variable identifiers accepted by the
// loader. 2^28 leaves the dense literal encoding far from int32
// overflow while admitting every instance in the wild.
const defaultMaxVariable = 1 << 28

// LoadOptions configures the DIMACS loader.
//
// Fields:
//   - MaxVariable — largest accepted variable identifier; a literal
//     beyond it fails the load with ErrVariableRange wrapped in a
//     *cnfio.ParseError.
type LoadOptions struct {
	MaxVariable int
}

// DefaultLoadOptions returns the loader defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{MaxVariable: defaultMaxVariable}
}
