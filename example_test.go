package fockspace_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/fockspace"
	"github.com/hupe1980/fockspace/binary"
)

// Example demonstrates iterating the states of a two-site sector.
func Example() {
	basis, err := fockspace.New(2)
	if err != nil {
		log.Fatal(err)
	}

	sector := basis.GetSector(1, 1)
	for s := range sector.States() {
		fmt.Printf("%d %d %s\n", s.Up, s.Dn, sector.Label(s, fockspace.Ket))
	}
	// Output:
	// 1 1 |⇅.⟩
	// 1 2 |↑↓⟩
	// 2 1 |↓↑⟩
	// 2 2 |.⇅⟩
}

// ExampleFockBasis_NextSector demonstrates moving between particle-number sectors.
func ExampleFockBasis_NextSector() {
	basis, err := fockspace.New(2)
	if err != nil {
		log.Fatal(err)
	}

	next, ok := basis.NextSector(fockspace.Fillings{Up: 1, Dn: 1}, fockspace.Up, +1)
	fmt.Println(next.Filling(), ok)

	_, ok = basis.NextSector(next, fockspace.Up, +1)
	fmt.Println(ok)
	// Output:
	// (2, 1) true
	// false
}

// ExampleFockBasis_SpinSector demonstrates spin labels in both bit orders.
func ExampleFockBasis_SpinSector() {
	for _, order := range []binary.BitOrder{binary.Reversed, binary.Natural} {
		basis, err := fockspace.New(2, fockspace.WithBitOrder(order))
		if err != nil {
			log.Fatal(err)
		}
		sector := basis.SpinSector(1, fockspace.Up)
		fmt.Println(order, fockspace.Labels[binary.SpinState](sector, fockspace.Ket))
	}
	// Output:
	// reversed [|↑.⟩ |.↑⟩]
	// natural [|.↑⟩ |↑.⟩]
}
