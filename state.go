package fockspace

import (
	"fmt"

	"github.com/hupe1980/fockspace/binary"
	"github.com/hupe1980/fockspace/label"
)

// Spin selects a spin species.
type Spin = label.Species

// Spin species.
const (
	Up = label.Up
	Dn = label.Dn
)

// Notation selects the brackets of a rendered label.
type Notation = label.Notation

// Label notations.
const (
	Plain = label.Plain
	Ket   = label.Ket
	Bra   = label.Bra
)

// State is one basis vector of the two-species Fock space.
type State struct {
	Up binary.SpinState
	Dn binary.SpinState
}

// Spin returns the state of species sigma.
func (s State) Spin(sigma Spin) binary.SpinState {
	if sigma == Up {
		return s.Up
	}
	return s.Dn
}

// N returns the total number of particles of both species.
func (s State) N() int {
	return s.Up.N() + s.Dn.N()
}

// DoubleOccupancy returns the number of doubly occupied sites.
func (s State) DoubleOccupancy() int {
	return (s.Up & s.Dn).N()
}

// Label renders the state.
func (s State) Label(enc binary.Encoding, n Notation) string {
	return label.StateLabel(s.Up, s.Dn, enc, n)
}

// String implements fmt.Stringer.
func (s State) String() string {
	return "State: " + s.Label(binary.Encoding{}, Ket)
}

// GoString implements fmt.GoStringer.
func (s State) GoString() string {
	return fmt.Sprintf("State(%s, %s)", s.Up, s.Dn)
}
