package fockspace

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/hupe1980/fockspace/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for n := 0; n <= 8; n++ {
		b, err := New(n)
		require.NoError(t, err)

		numStates := 1 << n
		assert.Equal(t, n, b.NumSites())
		assert.Equal(t, numStates*numStates, b.Size())
		assert.Len(t, b.SpinStates(AllFillings), numStates)
		assert.Len(t, b.Fillings(), n+1)

		rows, cols := b.Shape()
		assert.Equal(t, b.Size(), rows)
		assert.Equal(t, b.Size(), cols)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		numSites int
	}{
		{"Negative", -1},
		{"TooLarge", MaxSites + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.numSites)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumSites)

			var ce *ErrConstruction
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.numSites, ce.NumSites)
		})
	}
}

func TestInit_Idempotent(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	first := b.part

	require.NoError(t, b.Init(4))
	assert.True(t, first.Equal(b.part))
	assert.Equal(t, 256, b.Size())

	require.NoError(t, b.Init(2))
	assert.Equal(t, 2, b.NumSites())
	assert.Equal(t, 16, b.Size())
	assert.Equal(t, []int{0, 1, 2}, b.Fillings())
}

func TestInit_ErrorKeepsBasis(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	require.Error(t, b.Init(-4))
	assert.Equal(t, 3, b.NumSites())
	assert.Equal(t, 64, b.Size())
}

func TestSpinStatesFallback(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, []binary.SpinState{3, 5, 6}, b.SpinStates(2))
	assert.Len(t, b.SpinStates(AllFillings), 8)
	assert.Len(t, b.SpinStates(17), 8)
}

func TestGetSector_TwoSites(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	sector := b.GetSector(1, 1)

	assert.Equal(t, []binary.SpinState{1, 2}, sector.UpStates())
	assert.Equal(t, []binary.SpinState{1, 2}, sector.DnStates())
	assert.Equal(t, 4, sector.Size())
	assert.Equal(t, Fillings{Up: 1, Dn: 1}, sector.Filling())

	expected := []State{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	assert.Equal(t, expected, slices.Collect(sector.States()))
}

func TestGetSector_Fallback(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	sector := b.GetSector(AllFillings, 1)

	assert.Len(t, sector.UpStates(), 4)
	assert.Len(t, sector.DnStates(), 2)
	assert.Equal(t, 8, sector.Size())

	pos, ok := sector.IndexOfUp(3)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestSector_Passthrough(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	s := b.GetSector(1, 2)
	assert.Same(t, s, b.Sector(s))

	other := b.Sector(Fillings{Up: 1, Dn: 2})
	assert.NotSame(t, s, other)
	assert.Equal(t, s.UpStates(), other.UpStates())
	assert.Equal(t, s.DnStates(), other.DnStates())
}

func TestSector_SharesStates(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	s := b.GetSector(1, 1)
	assert.Same(t, &b.SpinStates(1)[0], &s.UpStates()[0])
	assert.Same(t, &b.SpinStates(1)[0], &s.DnStates()[0])
}

func TestNextSector(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	next, ok := b.NextSector(Fillings{Up: 1, Dn: 1}, Up, 1)
	require.True(t, ok)
	assert.Equal(t, Fillings{Up: 2, Dn: 1}, next.Filling())

	_, ok = b.NextSector(Fillings{Up: 2, Dn: 1}, Up, 1)
	assert.False(t, ok)

	prev, ok := b.NextSector(next, Dn, -1)
	require.True(t, ok)
	assert.Equal(t, Fillings{Up: 2, Dn: 0}, prev.Filling())

	_, ok = b.NextSector(prev, Dn, -1)
	assert.False(t, ok)
}

func TestSectors(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)

	var fillings []Fillings
	total := 0
	for s := range b.Sectors() {
		fillings = append(fillings, s.Filling())
		assert.Equal(t, s.NumUpStates()*s.NumDnStates(), s.Size())
		total += s.Size()
	}
	assert.Len(t, fillings, 16)
	assert.Equal(t, Fillings{0, 0}, fillings[0])
	assert.Equal(t, Fillings{0, 1}, fillings[1])
	assert.Equal(t, Fillings{3, 3}, fillings[15])
	assert.Equal(t, b.Size(), total, "sectors cover the full space")

	// Restartable.
	again := 0
	for range b.Sectors() {
		again++
	}
	assert.Equal(t, 16, again)
}

func TestIterFillings_Break(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	count := 0
	for range b.IterFillings() {
		count++
		if count == 4 {
			break
		}
	}
	assert.Equal(t, 4, count)
}

func TestFockBasisStates(t *testing.T) {
	b, err := New(1)
	require.NoError(t, err)

	states := slices.Collect(b.States())
	assert.Equal(t, []State{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, states)
	assert.Len(t, Labels[State](b, Ket), b.Size())
	assert.Equal(t, "|⇅⟩", b.Label(State{1, 1}, Ket))
}

func TestFockBasis_StateIndex(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	assert.Equal(t, 1*16+3, b.StateIndex(1, 3))

	rm, err := New(2, WithIndexScheme(IndexRowMajor))
	require.NoError(t, err)
	assert.Equal(t, 1*4+3, rm.StateIndex(1, 3))
}

func TestBitOrderOption(t *testing.T) {
	b, err := New(2, WithBitOrder(binary.Natural))
	require.NoError(t, err)

	sp := b.SpinSector(1, Up)
	assert.Equal(t, "|.↑⟩", sp.Label(1, Ket))
	assert.Equal(t, binary.Natural, b.GetSector(1, 1).Encoding().Order)
}

func TestMetricsAndLogging(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	var buf bytes.Buffer

	b, err := New(3,
		WithMetricsCollector(metrics),
		WithLogger(NewWriterLogger(&buf, slog.LevelDebug)),
	)
	require.NoError(t, err)

	for range b.Sectors() {
	}
	_ = b.Init(-1)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.InitCount)
	assert.Equal(t, int64(1), stats.InitErrors)
	assert.Equal(t, int64(8), stats.SpinStates)
	assert.Equal(t, int64(16), stats.SectorCount)
	assert.Equal(t, int64(64), stats.SectorStates)

	out := buf.String()
	assert.Contains(t, out, "basis initialized")
	assert.Contains(t, out, "sector built")
	assert.Contains(t, out, "basis init failed")
}

func TestNilOptions(t *testing.T) {
	b, err := New(1, nil, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)
	assert.NotNil(t, b.GetSector(0, 1))
}

func TestString(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)

	assert.Equal(t, "FockBasis(sites: 2, size: 16)", b.String())
	assert.Equal(t, "BasisSector(sites: 2, size: 4)", b.GetSector(1, 1).String())
	assert.Equal(t, "SpinSector(sites: 2, size: 2)", b.SpinSector(1, Dn).String())
}
