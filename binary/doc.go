// Package binary implements the integer-backed bit-vector encoding of Fock states.
//
// A SpinState is a plain uint64: bit i is the occupation of site i for a single
// spin species. All operations are pure and return new values.
//
// # Encoding
//
// Rendering a state as digits needs a width and a bit order. Both are carried
// explicitly by an Encoding value instead of package-level state:
//
//	enc := binary.Encoding{Width: 4}        // Reversed order, site 0 leftmost
//	binary.BinStr(0b0011, enc)              // "1100"
//	binary.BinStr(0b0011, enc.WithOrder(binary.Natural)) // "0011"
//
// The displayed width is max(enc.Width, bits needed for the value), so a width
// that is too small is widened instead of truncating occupied sites.
//
// # Particle Operators
//
//	s := binary.SpinState(0b01)
//	t, ok := s.Create(1)    // t == 0b11, ok == true
//	_, ok = t.Create(0)     // ok == false: site 0 already occupied
//	u, ok := t.Annihilate(1) // u == s
package binary
