package fockspace

import (
	"iter"

	"github.com/hupe1980/fockspace/binary"
)

// Container is the common view of SpinSector, BasisSector and FockBasis.
type Container[S any] interface {
	// NumSites returns the number of lattice sites.
	NumSites() int
	// States returns a restartable iterator over the states.
	States() iter.Seq[S]
	// Size returns the number of states.
	Size() int
	// Shape returns (Size, Size), the shape of an operator on the container.
	Shape() (int, int)
	// Label renders a state.
	Label(s S, n Notation) string
	String() string
}

var (
	_ Container[binary.SpinState] = (*SpinSector)(nil)
	_ Container[State]            = (*BasisSector)(nil)
	_ Container[State]            = (*FockBasis)(nil)
)

// Labels renders every state of c in iteration order.
func Labels[S any](c Container[S], n Notation) []string {
	labels := make([]string, 0, c.Size())
	for s := range c.States() {
		labels = append(labels, c.Label(s, n))
	}
	return labels
}

func shape(size int) (int, int) {
	return size, size
}
