package hamiltonian

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotSymmetric is returned when diagonalizing a non-symmetric operator.
	ErrNotSymmetric = errors.New("operator is not symmetric")

	// ErrNoConvergence is returned when the eigen decomposition fails.
	ErrNoConvergence = errors.New("eigen decomposition did not converge")
)

// symTol is the absolute tolerance used for the symmetry check.
const symTol = 1e-12

// Operator is a square operator stored as (row, col, value) triples.
// Duplicate coordinates are summed on conversion.
type Operator struct {
	Size int
	Rows []int
	Cols []int
	Data []float64
}

// NewOperator returns an empty operator of the given dimension.
func NewOperator(size int) *Operator {
	return &Operator{Size: size}
}

// Append adds one element. Zero values are dropped.
func (o *Operator) Append(row, col int, v float64) {
	if v == 0 {
		return
	}
	o.Rows = append(o.Rows, row)
	o.Cols = append(o.Cols, col)
	o.Data = append(o.Data, v)
}

// NNZ returns the number of stored triples.
func (o *Operator) NNZ() int { return len(o.Data) }

// Dense converts the operator to a dense matrix. It returns nil for an
// operator of size zero.
func (o *Operator) Dense() *mat.Dense {
	if o.Size <= 0 {
		return nil
	}
	d := mat.NewDense(o.Size, o.Size, nil)
	for k, v := range o.Data {
		r, c := o.Rows[k], o.Cols[k]
		d.Set(r, c, d.At(r, c)+v)
	}
	return d
}

// IsSymmetric reports whether the operator equals its transpose within tol.
func (o *Operator) IsSymmetric(tol float64) bool {
	d := o.Dense()
	if d == nil {
		return true
	}
	return mat.EqualApprox(d, d.T(), tol)
}

// EigenValues returns the eigenvalues in ascending order.
func (o *Operator) EigenValues() ([]float64, error) {
	d := o.Dense()
	if d == nil {
		return nil, nil
	}
	if !mat.EqualApprox(d, d.T(), symTol) {
		return nil, ErrNotSymmetric
	}

	sym := mat.NewSymDense(o.Size, nil)
	for i := 0; i < o.Size; i++ {
		for j := i; j < o.Size; j++ {
			sym.SetSym(i, j, d.At(i, j))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, ErrNoConvergence
	}
	return es.Values(nil), nil
}

func (o *Operator) String() string {
	return fmt.Sprintf("Operator(size: %d, nnz: %d)", o.Size, o.NNZ())
}
