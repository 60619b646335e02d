// Package conv provides checked integer conversions at the boundaries of the
// basis engine.
//
// Spin states are uint64 bit-vectors, while sector indexes and state arrays
// are 32-bit and sizes are platform ints. These helpers reject values that
// would silently wrap.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices over an enumerated basis), use direct type casts instead.
package conv
