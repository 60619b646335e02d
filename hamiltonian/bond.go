package hamiltonian

import (
	"errors"
	"fmt"
)

// ErrInvalidBond is returned for a bond with an out-of-range or repeated site.
var ErrInvalidBond = errors.New("invalid bond")

// Bond connects two distinct sites. Hopping is applied in both directions.
type Bond struct {
	I int
	J int
}

// Validate checks that both sites lie in [0, numSites) and differ.
func (b Bond) Validate(numSites int) error {
	if b.I < 0 || b.J < 0 || b.I >= numSites || b.J >= numSites {
		return fmt.Errorf("%w: %v outside %d sites", ErrInvalidBond, b, numSites)
	}
	if b.I == b.J {
		return fmt.Errorf("%w: %v connects a site to itself", ErrInvalidBond, b)
	}
	return nil
}

func (b Bond) String() string {
	return fmt.Sprintf("(%d, %d)", b.I, b.J)
}

// Chain returns the nearest-neighbor bonds (i, i+1) of a one-dimensional
// chain. With periodic set and more than two sites, (numSites-1, 0) closes
// the ring.
func Chain(numSites int, periodic bool) []Bond {
	if numSites < 2 {
		return nil
	}
	bonds := make([]Bond, 0, numSites)
	for i := 0; i < numSites-1; i++ {
		bonds = append(bonds, Bond{I: i, J: i + 1})
	}
	if periodic && numSites > 2 {
		bonds = append(bonds, Bond{I: numSites - 1, J: 0})
	}
	return bonds
}
