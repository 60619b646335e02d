package binary

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxWidth is the largest number of digits a SpinState can carry.
const MaxWidth = 64

// ErrInvalidWidth is returned when an encoding width is negative or exceeds MaxWidth.
var ErrInvalidWidth = errors.New("binary: invalid width")

// BitOrder selects how the digits of a state are laid out when rendered.
type BitOrder int

const (
	// Reversed prints site 0 as the leftmost digit. This is the default.
	Reversed BitOrder = iota
	// Natural prints conventional binary, most significant site leftmost.
	Natural
)

// String returns the name of the bit order.
func (o BitOrder) String() string {
	switch o {
	case Reversed:
		return "reversed"
	case Natural:
		return "natural"
	default:
		return "unknown"
	}
}

// ParseBitOrder parses the name of a bit order (case-insensitive).
func ParseBitOrder(s string) (BitOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reversed", "reverse":
		return Reversed, nil
	case "natural":
		return Natural, nil
	default:
		return Reversed, fmt.Errorf("binary: unknown bit order %q", s)
	}
}

// Encoding carries the digit width and bit order used to render states.
// The zero value renders with the minimal width in Reversed order.
type Encoding struct {
	Width int
	Order BitOrder
}

// NewEncoding creates a validated Encoding.
func NewEncoding(width int, order BitOrder) (Encoding, error) {
	enc := Encoding{Width: width, Order: order}
	if err := enc.Validate(); err != nil {
		return Encoding{}, err
	}
	return enc, nil
}

// Validate checks that the width fits into a SpinState.
func (e Encoding) Validate() error {
	if e.Width < 0 || e.Width > MaxWidth {
		return fmt.Errorf("%w: %d (must be in [0, %d])", ErrInvalidWidth, e.Width, MaxWidth)
	}
	return nil
}

// WithWidth returns a copy of the encoding using the given width.
func (e Encoding) WithWidth(width int) Encoding {
	e.Width = width
	return e
}

// WithOrder returns a copy of the encoding using the given bit order.
func (e Encoding) WithOrder(order BitOrder) Encoding {
	e.Order = order
	return e
}

// Digits returns the number of digits used to render v:
// max(e.Width, bits needed for v). Zero needs one digit.
func (e Encoding) Digits(v SpinState) int {
	return max(e.Width, BitsNeeded(v))
}

// Position maps a site index to its position in a rendered string of n digits.
func (e Encoding) Position(site, n int) int {
	if e.Order == Natural {
		return n - 1 - site
	}
	return site
}

// BitsNeeded returns the number of binary digits needed to represent v.
func BitsNeeded(v SpinState) int {
	if v == 0 {
		return 1
	}
	return bits.Len64(uint64(v))
}

// BinStr returns the binary representation of v.
func BinStr(v SpinState, enc Encoding) string {
	n := enc.Digits(v)
	buf := make([]byte, n)
	for site := 0; site < n; site++ {
		c := byte('0')
		if v.Occ(site) {
			c = '1'
		}
		buf[enc.Position(site, n)] = c
	}
	return string(buf)
}

// BinArr returns the digits of v as a 0/1 array, in the same order as BinStr.
func BinArr(v SpinState, enc Encoding) []uint8 {
	n := enc.Digits(v)
	arr := make([]uint8, n)
	for site := 0; site < n; site++ {
		if v.Occ(site) {
			arr[enc.Position(site, n)] = 1
		}
	}
	return arr
}

// Occupations returns the site occupations of v as a binary array.
func Occupations(v SpinState, enc Encoding) []uint8 {
	return BinArr(v, enc)
}

// Overlap computes the bitwise AND of a and b and returns it as a binary array.
// For opposite spin species this marks doubly occupied sites.
func Overlap(a, b SpinState, enc Encoding) []uint8 {
	return BinArr(a&b, enc)
}
