package partition

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/internal/conv"
)

// MaxSites is the largest number of sites that can be enumerated.
// Sector indexes are 32-bit and the two-species dimension (2^N)^2 must fit
// into an int64.
const MaxSites = 31

// AllFillings selects the full, unfiltered list of spin states.
const AllFillings = -1

// ErrInvalidNumSites is returned for a negative site count or one above MaxSites.
var ErrInvalidNumSites = errors.New("partition: invalid number of sites")

// ValidateNumSites checks that numSites can be enumerated.
func ValidateNumSites(numSites int) error {
	if numSites < 0 || numSites > MaxSites {
		return fmt.Errorf("%w: %d (must be in [0, %d])", ErrInvalidNumSites, numSites, MaxSites)
	}
	return nil
}

// EncodingFor returns the encoding whose width matches numSites.
func EncodingFor(numSites int, order binary.BitOrder) binary.Encoding {
	return binary.Encoding{Width: numSites, Order: order}
}

// EnumerateSpinStates returns every state of numSites sites, i.e. all integers
// in [0, 2^numSites), in ascending order.
func EnumerateSpinStates(numSites int) ([]binary.SpinState, error) {
	if err := ValidateNumSites(numSites); err != nil {
		return nil, err
	}
	count, err := conv.Pow2(numSites)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNumSites, err)
	}
	states := make([]binary.SpinState, count)
	for i := range states {
		states[i] = binary.SpinState(i)
	}
	return states, nil
}

// Partition maps fillings to the states with that popcount.
// It is immutable after construction.
type Partition struct {
	all      []binary.SpinState
	sectors  map[int][]binary.SpinState
	fillings []int
}

// New groups states by popcount. Buckets keep the order of states, and the
// fillings catalogue lists each filling in order of first appearance.
func New(states []binary.SpinState) *Partition {
	p := &Partition{
		all:     states,
		sectors: make(map[int][]binary.SpinState),
	}
	for _, s := range states {
		n := s.N()
		if _, ok := p.sectors[n]; !ok {
			p.fillings = append(p.fillings, n)
		}
		p.sectors[n] = append(p.sectors[n], s)
	}
	return p
}

// Build enumerates numSites sites and partitions the result.
func Build(numSites int) (*Partition, error) {
	states, err := EnumerateSpinStates(numSites)
	if err != nil {
		return nil, err
	}
	return New(states), nil
}

// States returns the states with filling n. If n is not a known filling
// (including AllFillings) the full list is returned instead.
// The returned slice is shared and must not be modified.
func (p *Partition) States(n int) []binary.SpinState {
	if states, ok := p.sectors[n]; ok {
		return states
	}
	return p.all
}

// Has reports whether n is a filling of the partition.
func (p *Partition) Has(n int) bool {
	_, ok := p.sectors[n]
	return ok
}

// Fillings returns the fillings catalogue.
func (p *Partition) Fillings() []int {
	return p.fillings
}

// All returns every partitioned state in original order.
func (p *Partition) All() []binary.SpinState {
	return p.all
}

// Len returns the total number of states.
func (p *Partition) Len() int {
	return len(p.all)
}

// Equal reports whether two partitions hold the same buckets in the same order.
func (p *Partition) Equal(other *Partition) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.all) != len(other.all) || len(p.fillings) != len(other.fillings) {
		return false
	}
	for i, n := range p.fillings {
		if other.fillings[i] != n {
			return false
		}
		a, b := p.sectors[n], other.sectors[n]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
