package fockspace

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/label"
)

// SpinSector holds the states of one spin species at a fixed filling.
// The states slice is shared with the owning basis and must not be modified.
type SpinSector struct {
	numSites int
	n        int
	sigma    Spin
	states   []binary.SpinState
	enc      binary.Encoding
}

// NewSpinSector creates a spin sector over states. Labels use numSites as width.
func NewSpinSector(numSites, n int, states []binary.SpinState, sigma Spin, order binary.BitOrder) *SpinSector {
	return &SpinSector{
		numSites: numSites,
		n:        n,
		sigma:    sigma,
		states:   states,
		enc:      binary.Encoding{Width: numSites, Order: order},
	}
}

// NumSites implements Container.
func (s *SpinSector) NumSites() int { return s.numSites }

// Filling returns the particle number of the sector.
func (s *SpinSector) Filling() int { return s.n }

// Spin returns the species of the sector.
func (s *SpinSector) Spin() Spin { return s.sigma }

// Encoding returns the encoding used for labels.
func (s *SpinSector) Encoding() binary.Encoding { return s.enc }

// SpinStates returns the underlying (shared) state list.
func (s *SpinSector) SpinStates() []binary.SpinState { return s.states }

// States implements Container.
func (s *SpinSector) States() iter.Seq[binary.SpinState] {
	return slices.Values(s.states)
}

// Size implements Container.
func (s *SpinSector) Size() int { return len(s.states) }

// Shape implements Container.
func (s *SpinSector) Shape() (int, int) { return shape(s.Size()) }

// Label implements Container.
func (s *SpinSector) Label(state binary.SpinState, n Notation) string {
	return label.SpinLabel(state, s.sigma, s.enc, n)
}

func (s *SpinSector) String() string {
	return fmt.Sprintf("SpinSector(sites: %d, size: %d)", s.numSites, s.Size())
}
