package hamiltonian

import (
	"strconv"
	"strings"

	"github.com/hupe1980/fockspace/codec"
)

// HubbardModel holds the parameters of the single-band Hubbard model.
type HubbardModel struct {
	// U is the on-site interaction energy.
	U float64 `json:"u"`
	// Eps is the on-site energy.
	Eps float64 `json:"eps"`
	// T is the hopping amplitude.
	T float64 `json:"t"`
	// Mu is the chemical potential.
	Mu float64 `json:"mu"`
	// Temp is the temperature in kelvin.
	Temp float64 `json:"temp"`
}

// DefaultHubbard returns U=2, ε=0, t=1, μ=0, T=0.
func DefaultHubbard() HubbardModel {
	return HubbardModel{U: 2, Eps: 0, T: 1, Mu: 0, Temp: 0}
}

// Param is a named model parameter.
type Param struct {
	Name  string
	Value float64
}

// Params returns the parameters in declaration order.
func (m HubbardModel) Params() []Param {
	return []Param{
		{Name: "u", Value: m.U},
		{Name: "eps", Value: m.Eps},
		{Name: "t", Value: m.T},
		{Name: "mu", Value: m.Mu},
		{Name: "temp", Value: m.Temp},
	}
}

// Key joins name=value pairs with delim. A negative decimals prints values
// with the shortest representation.
func (m HubbardModel) Key(decimals int, delim string) string {
	params := m.Params()
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + "=" + formatFloat(p.Value, decimals)
	}
	return strings.Join(parts, delim)
}

func (m HubbardModel) String() string {
	return "U=" + formatFloat(m.U, -1) +
		", ε=" + formatFloat(m.Eps, -1) +
		", t=" + formatFloat(m.T, -1) +
		", μ=" + formatFloat(m.Mu, -1) +
		", T=" + formatFloat(m.Temp, -1)
}

// Marshal encodes the parameters with c, or codec.Default when c is nil.
func (m HubbardModel) Marshal(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(m)
}

// UnmarshalHubbard decodes parameters encoded by Marshal. Fields missing from
// data keep their DefaultHubbard values.
func UnmarshalHubbard(c codec.Codec, data []byte) (HubbardModel, error) {
	if c == nil {
		c = codec.Default
	}
	m := DefaultHubbard()
	if err := c.Unmarshal(data, &m); err != nil {
		return HubbardModel{}, err
	}
	return m, nil
}

func formatFloat(v float64, decimals int) string {
	if decimals < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
