package label

import (
	"testing"

	"github.com/hupe1980/fockspace/binary"
	"github.com/stretchr/testify/assert"
)

func TestSpinLabel(t *testing.T) {
	reversed := binary.Encoding{Width: 2}
	natural := reversed.WithOrder(binary.Natural)

	tests := []struct {
		name     string
		v        binary.SpinState
		sigma    Species
		enc      binary.Encoding
		n        Notation
		expected string
	}{
		{"Up_Ket_Reversed", 1, Up, reversed, Ket, "|↑.⟩"},
		{"Up_Ket_Natural", 1, Up, natural, Ket, "|.↑⟩"},
		{"Dn_Bra_Reversed", 2, Dn, reversed, Bra, "⟨.↓|"},
		{"Dn_Plain", 3, Dn, reversed, Plain, "↓↓"},
		{"Empty_Ket", 0, Up, reversed, Ket, "|..⟩"},
		{"AutoWiden", 0b100, Up, reversed, Plain, "..↑"},
		{"ZeroWidth", 0, Up, binary.Encoding{}, Ket, "|.⟩"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SpinLabel(tt.v, tt.sigma, tt.enc, tt.n))
		})
	}
}

func TestStateLabel(t *testing.T) {
	enc := binary.Encoding{Width: 3}

	assert.Equal(t, "|⇅↓.⟩", StateLabel(0b001, 0b011, enc, Ket))
	assert.Equal(t, "⟨.↓⇅|", StateLabel(0b001, 0b011, enc.WithOrder(binary.Natural), Bra))
	assert.Equal(t, "↑.↓", StateLabel(0b001, 0b100, enc, Plain))
	assert.Equal(t, "...", StateLabel(0, 0, enc, Plain))

	// The wider of the two states sets the width.
	assert.Equal(t, "↑...↓", StateLabel(0b1, 0b10000, binary.Encoding{Width: 2}, Plain))
}

func TestNotationWrap(t *testing.T) {
	assert.Equal(t, "x", Plain.Wrap("x"))
	assert.Equal(t, "|x⟩", Ket.Wrap("x"))
	assert.Equal(t, "⟨x|", Bra.Wrap("x"))
}

func TestSpeciesChar(t *testing.T) {
	assert.Equal(t, UpChar, Up.Char())
	assert.Equal(t, DnChar, Dn.Char())
}
