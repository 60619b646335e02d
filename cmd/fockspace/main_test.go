package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fockspace"
	"github.com/hupe1980/fockspace/codec"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, codec.JSON{}.Unmarshal([]byte(out), &v))
	return v
}

func TestSectorsCmd(t *testing.T) {
	out, err := execute(t, "sectors", "--sites", "2", "--format", "json")
	require.NoError(t, err)

	rows := decode[[]sectorRow](t, out)
	require.Len(t, rows, 9)
	assert.Equal(t, sectorRow{NUp: 0, NDn: 0, Size: 1}, rows[0])
	assert.Equal(t, sectorRow{NUp: 1, NDn: 1, Size: 4}, rows[4])

	var total int
	for _, r := range rows {
		total += r.Size
	}
	assert.Equal(t, 16, total)
}

func TestSectorsCmdTable(t *testing.T) {
	out, err := execute(t, "sectors", "--sites", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "n_up")
	assert.Contains(t, out, "size")
	// header, four sectors and three separator lines
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 8)
}

func TestStatesCmd(t *testing.T) {
	out, err := execute(t, "states", "--sites", "2", "--up", "1", "--dn", "1", "--format", "json")
	require.NoError(t, err)

	rows := decode[[]stateRow](t, out)
	require.Len(t, rows, 4)

	labels := make([]string, len(rows))
	for i, r := range rows {
		assert.Equal(t, i, r.Index)
		labels[i] = r.Label
	}
	assert.Equal(t, []string{"|⇅.⟩", "|↑↓⟩", "|↓↑⟩", "|.⇅⟩"}, labels)
	assert.Equal(t, "10", rows[1].Up)
	assert.Equal(t, "01", rows[1].Dn)
}

func TestStatesCmdBra(t *testing.T) {
	out, err := execute(t, "states", "--sites", "2", "--up", "2", "--dn", "0", "--bra", "--format", "json")
	require.NoError(t, err)

	rows := decode[[]stateRow](t, out)
	require.Len(t, rows, 1)
	assert.Equal(t, "⟨↑↑|", rows[0].Label)
}

func TestStatesCmdUnknownFilling(t *testing.T) {
	_, err := execute(t, "states", "--sites", "2", "--up", "3")
	assert.ErrorContains(t, err, "filling 3")
}

func TestSpinCmd(t *testing.T) {
	tests := []struct {
		name  string
		order string
		want  []string
	}{
		{"reversed", "reversed", []string{"|↓..⟩", "|.↓.⟩", "|..↓⟩"}},
		{"natural", "natural", []string{"|..↓⟩", "|.↓.⟩", "|↓..⟩"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "spin", "--sites", "3", "--filling", "1", "--spin", "dn", "--order", tt.order, "--format", "json")
			require.NoError(t, err)

			rows := decode[[]spinRow](t, out)
			require.Len(t, rows, 3)
			for i, r := range rows {
				assert.Equal(t, tt.want[i], r.Label)
				assert.Equal(t, uint64(1)<<i, r.State)
			}
		})
	}
}

func TestSpinCmdFallback(t *testing.T) {
	out, err := execute(t, "spin", "--sites", "2", "--filling=-1", "--format", "json")
	require.NoError(t, err)

	rows := decode[[]spinRow](t, out)
	assert.Len(t, rows, 4)
}

func TestSpinCmdInvalidSpin(t *testing.T) {
	_, err := execute(t, "spin", "--spin", "sideways")
	assert.ErrorContains(t, err, "unknown spin")
}

func TestHubbardCmd(t *testing.T) {
	out, err := execute(t, "hubbard", "--sites", "2", "--up", "1", "--dn", "1", "--u", "4", "--t", "1", "--format", "json")
	require.NoError(t, err)

	res := decode[hubbardResult](t, out)
	assert.Equal(t, 4, res.Size)
	assert.Equal(t, 10, res.NNZ)
	assert.InDelta(t, 4.0, res.Model.U, 0)
	require.Len(t, res.Energies, 4)
	assert.InDelta(t, -0.828427, res.Energies[0], 1e-6)
}

func TestHubbardCmdCount(t *testing.T) {
	out, err := execute(t, "hubbard", "--sites", "4", "--up", "2", "--dn", "2", "--count", "2", "--format", "json")
	require.NoError(t, err)

	res := decode[hubbardResult](t, out)
	assert.Equal(t, 36, res.Size)
	require.Len(t, res.Energies, 2)
	assert.LessOrEqual(t, res.Energies[0], res.Energies[1])
}

func TestHubbardCmdTable(t *testing.T) {
	out, err := execute(t, "hubbard", "--sites", "2", "--u", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "energy")
	assert.Contains(t, out, "-0.828427")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fockspace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sites: 3\nformat: json\n"), 0o600))

	out, err := execute(t, "sectors", "--config", path)
	require.NoError(t, err)
	assert.Len(t, decode[[]sectorRow](t, out), 16)

	out, err = execute(t, "sectors", "--config", path, "--sites", "1")
	require.NoError(t, err)
	assert.Len(t, decode[[]sectorRow](t, out), 4)
}

func TestConfigFileMissing(t *testing.T) {
	_, err := execute(t, "sectors", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FOCKSPACE_SITES", "1")
	t.Setenv("FOCKSPACE_FORMAT", "json")

	out, err := execute(t, "sectors")
	require.NoError(t, err)
	assert.Len(t, decode[[]sectorRow](t, out), 4)
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"sectors", "--format", "xml"}},
		{"order", []string{"sectors", "--order", "sideways"}},
		{"log level", []string{"sectors", "--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}

	_, err := execute(t, "sectors", "--sites=-1")
	assert.ErrorIs(t, err, fockspace.ErrInvalidNumSites)
}
