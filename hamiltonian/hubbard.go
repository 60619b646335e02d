package hamiltonian

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fockspace"
	"github.com/hupe1980/fockspace/binary"
)

var (
	// ErrNilSector is returned when no sector is given.
	ErrNilSector = errors.New("nil sector")

	// ErrEmptySector is returned when a sector has no states.
	ErrEmptySector = errors.New("empty sector")
)

// Hubbard assembles the Hubbard Hamiltonian on sector.
//
// The diagonal holds U times the double occupancy plus (ε−μ) times the
// particle number. Each bond contributes a hopping term −t in both
// directions for either species, signed by the parity of the occupied sites
// strictly between the two bond sites. Rows and columns follow the order of
// sector.States.
func Hubbard(sector *fockspace.BasisSector, m HubbardModel, bonds []Bond) (*Operator, error) {
	if sector == nil {
		return nil, ErrNilSector
	}
	for _, b := range bonds {
		if err := b.Validate(sector.NumSites()); err != nil {
			return nil, err
		}
	}

	up, dn := sector.UpStates(), sector.DnStates()
	numUp, numDn := len(up), len(dn)
	idx := func(iu, id int) int {
		return fockspace.IndexRowMajor.Flatten(iu, id, numUp, numDn)
	}

	op := NewOperator(sector.Size())
	onsite := m.Eps - m.Mu

	for iu, su := range up {
		for id, sd := range dn {
			row := idx(iu, id)
			st := fockspace.State{Up: su, Dn: sd}
			op.Append(row, row, m.U*float64(st.DoubleOccupancy())+onsite*float64(st.N()))

			for _, b := range bonds {
				if ns, sign, ok := hop(su, b); ok {
					if ju, found := sector.IndexOfUp(ns); found {
						op.Append(row, idx(ju, id), -m.T*sign)
					}
				}
				if ns, sign, ok := hop(sd, b); ok {
					if jd, found := sector.IndexOfDn(ns); found {
						op.Append(row, idx(iu, jd), -m.T*sign)
					}
				}
			}
		}
	}
	return op, nil
}

// hop moves the particle across bond b in whichever direction is allowed.
func hop(s binary.SpinState, b Bond) (binary.SpinState, float64, bool) {
	from, to := b.I, b.J
	switch {
	case s.Occ(b.I) && !s.Occ(b.J):
	case s.Occ(b.J) && !s.Occ(b.I):
		from, to = b.J, b.I
	default:
		return 0, 0, false
	}
	ns := s.Flip(from).Flip(to)
	sign := 1.0
	if s.CountBetween(from, to)%2 == 1 {
		sign = -1.0
	}
	return ns, sign, true
}

// GroundEnergy returns the lowest eigenvalue of the Hubbard operator on sector.
func GroundEnergy(sector *fockspace.BasisSector, m HubbardModel, bonds []Bond) (float64, error) {
	op, err := Hubbard(sector, m, bonds)
	if err != nil {
		return 0, err
	}
	vals, err := op.EigenValues()
	if err != nil {
		return 0, fmt.Errorf("sector %v: %w", sector.Filling(), err)
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("sector %v: %w", sector.Filling(), ErrEmptySector)
	}
	return vals[0], nil
}
