package qlight

import "github.com/pkg/errors"

// Matrix is a dense, row-major real matrix.
type Matrix [][]float64

// NewMatrix returns a zero matrix with the given shape.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Identity returns the dim x dim identity matrix.
func Identity(dim int) Matrix {
	m := NewMatrix(dim, dim)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b Matrix) Matrix {
	ar, ac := len(a), len(a[0])
	br, bc := len(b), len(b[0])
	out := NewMatrix(ar*br, ac*bc)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if a[i][j] == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out[i*br+k][j*bc+l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return out
}

// TensorProduct reduces the factor list with repeated Kronecker products,
// left to right.
func TensorProduct(factors []Matrix) (Matrix, error) {
	if len(factors) == 0 {
		return nil, errors.New("tensor product of an empty factor list")
	}
	v := factors[0]
	for _, f := range factors[1:] {
		v = Kron(v, f)
	}
	return v, nil
}

// MulVec multiplies the row vector v by m and returns the resulting row
// vector, following the row-vector × matrix convention.
func MulVec(v []float64, m Matrix) []float64 {
	cols := len(m[0])
	out := make([]float64, cols)
	for i, x := range v {
		if x == 0 {
			continue
		}
		row := m[i]
		for j, y := range row {
			out[j] += x * y
		}
	}
	return out
}
