// Package testutil provides testing utilities for fockspace.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for drawing random spin states,
// sites and hopping amplitudes.
//
// # Random States
//
//	rng := testutil.NewRNG(seed)
//	s := rng.SpinState(6)          // uniform in [0, 2^6)
//	f := rng.SpinStateWithN(6, 3)  // exactly 3 occupied sites
//	site := rng.Site(6)            // uniform in [0, 6)
package testutil
