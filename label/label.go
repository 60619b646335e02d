// Package label renders spin states and composite basis states as bra/ket strings.
//
//	label.SpinLabel(0b01, label.Up, binary.Encoding{Width: 2}, label.Ket) // "|↑.⟩"
//	label.StateLabel(0b01, 0b11, binary.Encoding{Width: 2}, label.Bra)    // "⟨⇅↓|"
package label

import (
	"strings"

	"github.com/hupe1980/fockspace/binary"
)

// Site glyphs.
const (
	Empty  = "."
	UpChar = "↑"
	DnChar = "↓"
	UDChar = "⇅"
)

// Species selects the glyph used for occupied sites of a single spin species.
type Species int

const (
	// Up is the spin-up species.
	Up Species = +1
	// Dn is the spin-down species.
	Dn Species = -1
)

// Char returns the glyph of the species.
func (s Species) Char() string {
	if s == Up {
		return UpChar
	}
	return DnChar
}

// Notation selects the brackets around a label.
type Notation int

const (
	// Plain renders the bare glyphs.
	Plain Notation = iota
	// Ket renders |…⟩.
	Ket
	// Bra renders ⟨…|.
	Bra
)

// Wrap puts the brackets of the notation around s.
func (n Notation) Wrap(s string) string {
	switch n {
	case Bra:
		return "⟨" + s + "|"
	case Ket:
		return "|" + s + "⟩"
	default:
		return s
	}
}

// SpinLabel renders a single-species state. The width is widened to fit the
// highest occupied site.
func SpinLabel(v binary.SpinState, sigma Species, enc binary.Encoding, n Notation) string {
	num := enc.Digits(v)
	chars := make([]string, num)
	for site := 0; site < num; site++ {
		c := Empty
		if v.Occ(site) {
			c = sigma.Char()
		}
		chars[enc.Position(site, num)] = c
	}
	return n.Wrap(strings.Join(chars, ""))
}

// StateLabel renders a two-species state: ↑ for up only, ↓ for down only,
// ⇅ for double occupation and . for an empty site.
func StateLabel(up, dn binary.SpinState, enc binary.Encoding, n Notation) string {
	num := max(enc.Digits(up), enc.Digits(dn))
	chars := make([]string, num)
	for site := 0; site < num; site++ {
		chars[enc.Position(site, num)] = siteChar(up.Occ(site), dn.Occ(site))
	}
	return n.Wrap(strings.Join(chars, ""))
}

func siteChar(u, d bool) string {
	switch {
	case u && d:
		return UDChar
	case u:
		return UpChar
	case d:
		return DnChar
	default:
		return Empty
	}
}
