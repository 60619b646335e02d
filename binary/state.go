package binary

import (
	"fmt"
	"math/bits"
)

// SpinState is the occupation bit-vector of one spin species.
type SpinState uint64

// validSite reports whether site addresses a bit of a SpinState.
func validSite(site int) bool {
	return site >= 0 && site < MaxWidth
}

// mask returns the single-bit mask for site.
func mask(site int) SpinState {
	return SpinState(1) << uint(site)
}

// Create occupies site in v. The boolean is false, and v is returned unchanged,
// if the site is already occupied or out of range.
func Create(v SpinState, site int) (SpinState, bool) {
	if !validSite(site) {
		return v, false
	}
	op := mask(site)
	if v&op != 0 {
		return v, false
	}
	return v ^ op, true
}

// Annihilate vacates site in v. The boolean is false, and v is returned unchanged,
// if the site is already empty or out of range.
func Annihilate(v SpinState, site int) (SpinState, bool) {
	if !validSite(site) {
		return v, false
	}
	op := mask(site)
	if v&op == 0 {
		return v, false
	}
	return v ^ op, true
}

// N returns the total occupation (popcount) of the state.
func (s SpinState) N() int {
	return bits.OnesCount64(uint64(s))
}

// Occ reports whether site is occupied.
func (s SpinState) Occ(site int) bool {
	return validSite(site) && s&mask(site) != 0
}

// Bit returns the masked bit at site (0 or 1<<site).
func (s SpinState) Bit(site int) SpinState {
	if !validSite(site) {
		return 0
	}
	return s & mask(site)
}

// Flip toggles the occupation of site.
func (s SpinState) Flip(site int) SpinState {
	if !validSite(site) {
		return s
	}
	return s ^ mask(site)
}

// Create occupies site. See the package-level Create.
func (s SpinState) Create(site int) (SpinState, bool) {
	return Create(s, site)
}

// Annihilate vacates site. See the package-level Annihilate.
func (s SpinState) Annihilate(site int) (SpinState, bool) {
	return Annihilate(s, site)
}

// CountBetween returns the number of occupied sites strictly between i and j.
func (s SpinState) CountBetween(i, j int) int {
	if i > j {
		i, j = j, i
	}
	if j-i < 2 || !validSite(i) || !validSite(j) {
		return 0
	}
	// bits i+1 .. j-1
	m := (mask(j) - 1) &^ (mask(i+1) - 1)
	return bits.OnesCount64(uint64(s & m))
}

// BinStr returns the binary representation of the state.
func (s SpinState) BinStr(enc Encoding) string {
	return BinStr(s, enc)
}

// BinArr returns the bits of the state as a binary array.
func (s SpinState) BinArr(enc Encoding) []uint8 {
	return BinArr(s, enc)
}

// Occupations returns the site occupations of the state as a binary array.
func (s SpinState) Occupations(enc Encoding) []uint8 {
	return Occupations(s, enc)
}

// Overlap computes the overlap with other as a binary array.
func (s SpinState) Overlap(other SpinState, enc Encoding) []uint8 {
	return Overlap(s, other, enc)
}

// String renders the state with the minimal width in Reversed order.
func (s SpinState) String() string {
	return BinStr(s, Encoding{})
}

// GoString implements fmt.GoStringer.
func (s SpinState) GoString() string {
	return fmt.Sprintf("SpinState(%s)", s.String())
}
