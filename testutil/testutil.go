package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/fockspace/binary"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Site returns a random site index in [0, numSites).
func (r *RNG) Site(numSites int) int {
	return r.Intn(numSites)
}

// SpinState returns a uniformly random state of numSites sites.
func (r *RNG) SpinState(numSites int) binary.SpinState {
	if numSites <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.rand.Uint64()
	if numSites < binary.MaxWidth {
		v &= (uint64(1) << uint(numSites)) - 1
	}
	return binary.SpinState(v)
}

// SpinStateWithN returns a random state of numSites sites with exactly n occupied.
// n is clamped to [0, numSites].
func (r *RNG) SpinStateWithN(numSites, n int) binary.SpinState {
	n = min(max(n, 0), numSites)

	r.mu.Lock()
	perm := r.rand.Perm(numSites)
	r.mu.Unlock()

	var s binary.SpinState
	for _, site := range perm[:n] {
		s = s.Flip(site)
	}
	return s
}

// SpinStates returns num random states of numSites sites.
func (r *RNG) SpinStates(num, numSites int) []binary.SpinState {
	states := make([]binary.SpinState, num)
	for i := range states {
		states[i] = r.SpinState(numSites)
	}
	return states
}

// Amplitudes returns num values uniform in [minVal, maxVal).
func (r *RNG) Amplitudes(num int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, num)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
	return out
}
