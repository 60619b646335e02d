// Package fockspace provides the many-body Fock-space basis for spin-1/2
// fermionic lattice models.
//
// Basis states are pairs of integer bit-vectors, one per spin species. The
// basis enumerates all 2^N states of a single species, groups them by filling
// and hands out cheap sector views that share the enumerated lists.
//
// # Quick Start
//
//	basis, _ := fockspace.New(2)
//	sector := basis.GetSector(1, 1)
//	for s := range sector.States() {
//	    fmt.Println(sector.Label(s, fockspace.Ket))
//	}
//	// |⇅.⟩ |↑↓⟩ |↓↑⟩ |.⇅⟩
//
// # Containers
//
// SpinSector, BasisSector and FockBasis all implement Container, exposing a
// restartable States iterator, the dimension (Size/Shape) and labels:
//
//	fockspace.Labels[fockspace.State](sector, fockspace.Plain)
//
// # Sector Navigation
//
// Particle addition and removal move between sectors:
//
//	next, ok := basis.NextSector(fockspace.Fillings{Up: 1, Dn: 1}, fockspace.Up, +1)
//	// next is the (2, 1) sector; ok is false when the filling leaves [0, N]
//
// # Configuration
//
// There is no package-level state. Bit order, index scheme, logging and
// metrics are configured per basis:
//
//	basis, _ := fockspace.New(4,
//	    fockspace.WithBitOrder(binary.Natural),
//	    fockspace.WithIndexScheme(fockspace.IndexRowMajor),
//	    fockspace.WithLogger(fockspace.NewTextLogger(slog.LevelDebug)),
//	)
package fockspace
