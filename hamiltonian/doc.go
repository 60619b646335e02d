// Package hamiltonian assembles model Hamiltonians on the sectors of a
// fockspace.FockBasis.
//
// Operators are collected as (row, col, value) triples in the iteration
// order of BasisSector.States and can be converted to a dense gonum matrix
// for exact diagonalization:
//
//	basis, _ := fockspace.New(2)
//	sector := basis.GetSector(1, 1)
//	op, _ := hamiltonian.Hubbard(sector, hamiltonian.DefaultHubbard(), hamiltonian.Chain(2, false))
//	energies, _ := op.EigenValues()
//
// BuildAll builds one operator per sector concurrently.
package hamiltonian
