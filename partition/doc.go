// Package partition enumerates the spin states of a lattice and groups them
// into particle-number (filling) sectors.
//
// Enumeration is exhaustive and ordered by increasing integer value, not by
// filling. Grouping is a separate pass that keeps the enumeration order inside
// each bucket:
//
//	states, _ := partition.EnumerateSpinStates(3) // 000, 100, 010, 110, ...
//	p := partition.New(states)
//	p.Fillings()  // [0 1 2 3]
//	p.States(1)   // [1 2 4]
//	p.States(partition.AllFillings) // all 8 states
//
// The cost is O(2^N) in time and memory, which limits exact treatment to a
// few tens of sites.
package partition
