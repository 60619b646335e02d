package fockspace

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/internal/conv"
	"github.com/hupe1980/fockspace/internal/index"
	"github.com/hupe1980/fockspace/label"
)

// Fillings is a pair of particle numbers (n_up, n_dn).
type Fillings struct {
	Up int
	Dn int
}

// Shift returns the fillings with species sigma shifted by delta.
func (f Fillings) Shift(sigma Spin, delta int) Fillings {
	if sigma == Up {
		f.Up += delta
	} else {
		f.Dn += delta
	}
	return f
}

func (f Fillings) String() string {
	return fmt.Sprintf("(%d, %d)", f.Up, f.Dn)
}

// SectorSelector selects a basis sector: either Fillings, which are looked up
// in the basis, or an existing *BasisSector, which is used as is.
type SectorSelector interface {
	selectSector(b *FockBasis) *BasisSector
	selectedFillings() Fillings
}

func (f Fillings) selectSector(b *FockBasis) *BasisSector { return b.GetSector(f.Up, f.Dn) }
func (f Fillings) selectedFillings() Fillings               { return f }

func (s *BasisSector) selectSector(*FockBasis) *BasisSector { return s }
func (s *BasisSector) selectedFillings() Fillings           { return s.Filling() }

// BasisSector is the product sector of up states at filling n_up and down
// states at filling n_dn. Both state slices are shared with the owning basis.
type BasisSector struct {
	numSites int
	nUp      int
	nDn      int
	upStates []binary.SpinState
	dnStates []binary.SpinState
	enc      binary.Encoding
	scheme   IndexScheme

	upPos *index.Positions
	dnPos *index.Positions
}

// NewBasisSector creates a sector over the given state lists with the default
// encoding and index scheme.
func NewBasisSector(numSites, nUp, nDn int, upStates, dnStates []binary.SpinState) *BasisSector {
	return &BasisSector{
		numSites: numSites,
		nUp:      nUp,
		nDn:      nDn,
		upStates: upStates,
		dnStates: dnStates,
		enc:      binary.Encoding{Width: numSites},
		scheme:   IndexBySize,
	}
}

// NumSites implements Container.
func (s *BasisSector) NumSites() int { return s.numSites }

// Filling returns (n_up, n_dn).
func (s *BasisSector) Filling() Fillings { return Fillings{Up: s.nUp, Dn: s.nDn} }

// UpStates returns the shared list of up states.
func (s *BasisSector) UpStates() []binary.SpinState { return s.upStates }

// DnStates returns the shared list of down states.
func (s *BasisSector) DnStates() []binary.SpinState { return s.dnStates }

// NumUpStates returns the number of up states.
func (s *BasisSector) NumUpStates() int { return len(s.upStates) }

// NumDnStates returns the number of down states.
func (s *BasisSector) NumDnStates() int { return len(s.dnStates) }

// Encoding returns the encoding used for labels.
func (s *BasisSector) Encoding() binary.Encoding { return s.enc }

// IndexScheme returns the flattening used by StateIndex and SpinStates.
func (s *BasisSector) IndexScheme() IndexScheme { return s.scheme }

// WithIndexScheme returns a copy of the sector using scheme.
func (s *BasisSector) WithIndexScheme(scheme IndexScheme) *BasisSector {
	c := *s
	c.scheme = scheme
	return &c
}

// States implements Container. Up states form the outer loop, down states the
// inner loop. The iterator can be ranged over any number of times.
func (s *BasisSector) States() iter.Seq[State] {
	return func(yield func(State) bool) {
		for _, up := range s.upStates {
			for _, dn := range s.dnStates {
				if !yield(State{Up: up, Dn: dn}) {
					return
				}
			}
		}
	}
}

// Size implements Container.
func (s *BasisSector) Size() int { return len(s.upStates) * len(s.dnStates) }

// Shape implements Container.
func (s *BasisSector) Shape() (int, int) { return shape(s.Size()) }

// Label implements Container.
func (s *BasisSector) Label(state State, n Notation) string {
	return label.StateLabel(state.Up, state.Dn, s.enc, n)
}

// StateIndex flattens (idxUp, idxDn) using the sector's index scheme.
func (s *BasisSector) StateIndex(idxUp, idxDn int) int {
	return s.scheme.Flatten(idxUp, idxDn, len(s.upStates), len(s.dnStates))
}

// SpinStates returns the up and down states addressed by a flat index.
func (s *BasisSector) SpinStates(flat int) (binary.SpinState, binary.SpinState, error) {
	iu, id := s.scheme.Split(flat, len(s.upStates), len(s.dnStates))
	if flat < 0 || iu < 0 || id < 0 || iu >= len(s.upStates) || id >= len(s.dnStates) {
		return 0, 0, &ErrIndexOutOfRange{Index: flat, Size: s.Size()}
	}
	return s.upStates[iu], s.dnStates[id], nil
}

// IndexOfUp returns the position of an up state in the sector.
func (s *BasisSector) IndexOfUp(state binary.SpinState) (int, bool) {
	return position(s.upPos, s.upStates, state)
}

// IndexOfDn returns the position of a down state in the sector.
func (s *BasisSector) IndexOfDn(state binary.SpinState) (int, bool) {
	return position(s.dnPos, s.dnStates, state)
}

// IndexOf returns the position of a state for species sigma.
func (s *BasisSector) IndexOf(sigma Spin, state binary.SpinState) (int, bool) {
	if sigma == Up {
		return s.IndexOfUp(state)
	}
	return s.IndexOfDn(state)
}

func position(pos *index.Positions, states []binary.SpinState, s binary.SpinState) (int, bool) {
	if pos != nil {
		return pos.Position(s)
	}
	i := slices.Index(states, s)
	return i, i >= 0
}

// StateArrays returns copies of the up and down states as fixed-width arrays.
func (s *BasisSector) StateArrays() ([]uint32, []uint32, error) {
	up, err := toUint32(s.upStates)
	if err != nil {
		return nil, nil, err
	}
	dn, err := toUint32(s.dnStates)
	if err != nil {
		return nil, nil, err
	}
	return up, dn, nil
}

func toUint32(states []binary.SpinState) ([]uint32, error) {
	out := make([]uint32, len(states))
	for i, st := range states {
		v, err := conv.StateToUint32(st)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *BasisSector) String() string {
	return fmt.Sprintf("BasisSector(sites: %d, size: %d)", s.numSites, s.Size())
}
