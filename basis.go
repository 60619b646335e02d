package fockspace

import (
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/internal/conv"
	"github.com/hupe1980/fockspace/internal/index"
	"github.com/hupe1980/fockspace/label"
	"github.com/hupe1980/fockspace/partition"
)

// AllFillings selects the full single-species basis where a filling is expected.
const AllFillings = partition.AllFillings

// FockBasis owns the enumerated spin states of a lattice and their filling
// partition. Sectors handed out by the basis share its state lists.
//
// Init must not run concurrently with other methods; all other methods are
// read-only and safe for concurrent use.
type FockBasis struct {
	numSites  int
	size      int
	part      *partition.Partition
	positions map[int]*index.Positions
	allPos    *index.Positions
	opts      options
}

// New creates a basis for numSites sites.
func New(numSites int, optFns ...Option) (*FockBasis, error) {
	b := &FockBasis{opts: applyOptions(optFns)}
	if err := b.Init(numSites); err != nil {
		return nil, err
	}
	return b, nil
}

// Init regenerates the enumeration and the filling partition for numSites
// sites. On error the basis is left unchanged.
func (b *FockBasis) Init(numSites int) error {
	start := time.Now()
	err := b.init(numSites)
	numStates := 0
	if err == nil {
		numStates = b.part.Len()
	}
	b.opts.metricsCollector.RecordInit(numSites, numStates, time.Since(start), err)
	b.opts.logger.LogInit(numSites, numStates, time.Since(start), err)
	return err
}

func (b *FockBasis) init(numSites int) error {
	part, err := partition.Build(numSites)
	if err != nil {
		return translateError(numSites, err)
	}
	size, err := conv.MulInt(part.Len(), part.Len())
	if err != nil {
		return &ErrConstruction{NumSites: numSites, cause: err}
	}

	positions := make(map[int]*index.Positions, len(part.Fillings()))
	for _, n := range part.Fillings() {
		pos, err := index.New(part.States(n))
		if err != nil {
			return &ErrConstruction{NumSites: numSites, cause: err}
		}
		positions[n] = pos
	}
	allPos, err := index.New(part.All())
	if err != nil {
		return &ErrConstruction{NumSites: numSites, cause: err}
	}

	b.numSites = numSites
	b.size = size
	b.part = part
	b.positions = positions
	b.allPos = allPos
	return nil
}

// NumSites implements Container.
func (b *FockBasis) NumSites() int { return b.numSites }

// Size implements Container. It is the dimension of the full two-species
// space, (2^N)^2, not of any sector.
func (b *FockBasis) Size() int { return b.size }

// Shape implements Container.
func (b *FockBasis) Shape() (int, int) { return shape(b.size) }

// Encoding returns the encoding used for labels (width = number of sites).
func (b *FockBasis) Encoding() binary.Encoding {
	return partition.EncodingFor(b.numSites, b.opts.order)
}

// Fillings returns the fillings catalogue, 0..N. The slice is shared.
func (b *FockBasis) Fillings() []int {
	return b.part.Fillings()
}

// HasFilling reports whether n is in the fillings catalogue.
func (b *FockBasis) HasFilling(n int) bool {
	return b.part.Has(n)
}

// IterFillings yields every (n_up, n_dn) pair of the catalogue.
func (b *FockBasis) IterFillings() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		fillings := b.part.Fillings()
		for _, nUp := range fillings {
			for _, nDn := range fillings {
				if !yield(nUp, nDn) {
					return
				}
			}
		}
	}
}

// States implements Container, yielding every (up, dn) pair of the full space.
func (b *FockBasis) States() iter.Seq[State] {
	return func(yield func(State) bool) {
		all := b.part.All()
		for _, up := range all {
			for _, dn := range all {
				if !yield(State{Up: up, Dn: dn}) {
					return
				}
			}
		}
	}
}

// Label implements Container.
func (b *FockBasis) Label(s State, n Notation) string {
	return label.StateLabel(s.Up, s.Dn, b.Encoding(), n)
}

// StateIndex flattens (idxUp, idxDn) over the full single-species lists using
// the configured index scheme.
func (b *FockBasis) StateIndex(idxUp, idxDn int) int {
	n := b.part.Len()
	return b.opts.scheme.Flatten(idxUp, idxDn, n, n)
}

// SpinStates returns the states with filling n. Without a known filling
// (e.g. AllFillings) the full single-species basis is returned.
// The slice is shared and must not be modified.
func (b *FockBasis) SpinStates(n int) []binary.SpinState {
	return b.part.States(n)
}

func (b *FockBasis) positionsFor(n int) *index.Positions {
	if pos, ok := b.positions[n]; ok {
		return pos
	}
	return b.allPos
}

// SpinSector returns the single-species sector at filling n.
func (b *FockBasis) SpinSector(n int, sigma Spin) *SpinSector {
	return NewSpinSector(b.numSites, n, b.SpinStates(n), sigma, b.opts.order)
}

// GetSector returns the (nUp, nDn) sector. Unknown fillings fall back to the
// full single-species list for that species.
func (b *FockBasis) GetSector(nUp, nDn int) *BasisSector {
	s := &BasisSector{
		numSites: b.numSites,
		nUp:      nUp,
		nDn:      nDn,
		upStates: b.SpinStates(nUp),
		dnStates: b.SpinStates(nDn),
		enc:      b.Encoding(),
		scheme:   b.opts.scheme,
		upPos:    b.positionsFor(nUp),
		dnPos:    b.positionsFor(nDn),
	}
	f := s.Filling()
	b.opts.metricsCollector.RecordSector(f, s.Size())
	b.opts.logger.LogSector(f, s.Size())
	return s
}

// Sector resolves sel: Fillings are looked up, an existing *BasisSector is
// returned unchanged.
func (b *FockBasis) Sector(sel SectorSelector) *BasisSector {
	return sel.selectSector(b)
}

// NextSector returns the sector reached by shifting the filling of species
// sigma by delta. The boolean is false if the shifted filling does not exist.
func (b *FockBasis) NextSector(sel SectorSelector, sigma Spin, delta int) (*BasisSector, bool) {
	f := sel.selectedFillings().Shift(sigma, delta)
	if !b.part.Has(f.Up) || !b.part.Has(f.Dn) {
		return nil, false
	}
	return b.GetSector(f.Up, f.Dn), true
}

// Sectors yields the sector of every (n_up, n_dn) pair, (N+1)^2 in total.
func (b *FockBasis) Sectors() iter.Seq[*BasisSector] {
	return func(yield func(*BasisSector) bool) {
		for nUp, nDn := range b.IterFillings() {
			if !yield(b.GetSector(nUp, nDn)) {
				return
			}
		}
	}
}

func (b *FockBasis) String() string {
	return fmt.Sprintf("FockBasis(sites: %d, size: %d)", b.numSites, b.size)
}
