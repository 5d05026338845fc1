package vector_math

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major grid of float64. Rows and columns are addressed
// 1-based, so Get(1, 1) is the top left element.
type Matrix struct {
	rows    int
	cols    int
	content [][]float64
}

// NewMatrix returns a rows x cols matrix filled with zeros.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(newError(ErrMatrixShape, "cannot construct %dx%d matrix", rows, cols))
	}
	content := make([][]float64, rows)
	for i := range content {
		content[i] = make([]float64, cols)
	}
	return &Matrix{rows: rows, cols: cols, content: content}
}

// MatrixFromRows copies a grid of equally long rows into a new matrix.
func MatrixFromRows(rows [][]float64) *Matrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(newError(ErrMatrixShape, "row %d has %d columns, expected %d", i+1, len(row), cols))
		}
		copy(m.content[i], row)
	}
	return m
}

func Multiply(a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic(newError(ErrDimensionMismatch,
			"can't multiply %dx%d matrix with %dx%d matrix, columns of left need to equal rows of right",
			a.rows, a.cols, b.rows, b.cols))
	}
	c := NewMatrix(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			for k := 0; k < a.cols; k++ {
				c.content[i][j] += a.content[i][k] * b.content[k][j]
			}
		}
	}
	return c
}

// Chain multiplies left to right, Chain(a, b, c) == a * b * c.
func Chain(first *Matrix, rest ...*Matrix) *Matrix {
	res := first
	for _, m := range rest {
		res = Multiply(res, m)
	}
	return res
}

func (m *Matrix) Mult(b *Matrix) *Matrix {
	return Multiply(m, b)
}

func (m *Matrix) Add(b *Matrix) *Matrix {
	return m.elementwise(b, "add", func(x, y float64) float64 { return x + y })
}

func (m *Matrix) Sub(b *Matrix) *Matrix {
	return m.elementwise(b, "subtract", func(x, y float64) float64 { return x - y })
}

func (m *Matrix) elementwise(b *Matrix, verb string, op func(x, y float64) float64) *Matrix {
	if m.rows != b.rows || m.cols != b.cols {
		panic(newError(ErrDimensionMismatch,
			"can't %s %dx%d matrix and %dx%d matrix, matrices not of equal size",
			verb, m.rows, m.cols, b.rows, b.cols))
	}
	c := NewMatrix(m.rows, m.cols)
	for i := range m.content {
		for j := range m.content[i] {
			c.content[i][j] = op(m.content[i][j], b.content[i][j])
		}
	}
	return c
}

func (m *Matrix) Transpose() *Matrix {
	mT := NewMatrix(m.cols, m.rows)
	for i := range m.content {
		for j := range m.content[i] {
			mT.content[j][i] = m.content[i][j]
		}
	}
	return mT
}

func (m *Matrix) Clone() *Matrix {
	c := NewMatrix(m.rows, m.cols)
	for i, row := range m.content {
		copy(c.content[i], row)
	}
	return c
}

// Equals reports whether both matrices have the same shape and exactly equal
// elements.
func (m *Matrix) Equals(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.content {
		for j := range m.content[i] {
			if m.content[i][j] != b.content[i][j] {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) Get(row, col int) float64 {
	m.verifyIndex(row, col)
	return m.content[row-1][col-1]
}

func (m *Matrix) Set(row, col int, value float64) {
	m.verifyIndex(row, col)
	m.content[row-1][col-1] = value
}

// Row returns a copy of the given row.
func (m *Matrix) Row(row int) []float64 {
	m.verifyRow(row)
	r := make([]float64, m.cols)
	copy(r, m.content[row-1])
	return r
}

// Col returns a copy of the given column.
func (m *Matrix) Col(col int) []float64 {
	m.verifyCol(col)
	c := make([]float64, m.rows)
	for i := range m.content {
		c[i] = m.content[i][col-1]
	}
	return c
}

// SetContent replaces all elements. The grid must match the matrix shape.
func (m *Matrix) SetContent(content [][]float64) {
	if len(content) != m.rows {
		panic(newError(ErrDimensionMismatch,
			"attempt to set content with %d rows into a %dx%d matrix", len(content), m.rows, m.cols))
	}
	for _, row := range content {
		if len(row) != m.cols {
			panic(newError(ErrDimensionMismatch,
				"attempt to set %dx%d content into a %dx%d matrix", len(content), len(row), m.rows, m.cols))
		}
	}
	for i, row := range content {
		copy(m.content[i], row)
	}
}

// Content returns a copy of the backing grid.
func (m *Matrix) Content() [][]float64 {
	return m.Clone().content
}

func (m *Matrix) Fill(f float64) {
	for i := range m.content {
		for j := range m.content[i] {
			m.content[i][j] = f
		}
	}
}

func (m *Matrix) verifyRow(row int) {
	if row < 1 || row > m.rows {
		panic(newError(ErrIndexOutOfRange, "invalid row index %d for %dx%d matrix", row, m.rows, m.cols))
	}
}

func (m *Matrix) verifyCol(col int) {
	if col < 1 || col > m.cols {
		panic(newError(ErrIndexOutOfRange, "invalid column index %d for %dx%d matrix", col, m.rows, m.cols))
	}
}

func (m *Matrix) verifyIndex(row, col int) {
	m.verifyRow(row)
	m.verifyCol(col)
}

// Description functions

func (m *Matrix) Rows() int {
	return m.rows
}

func (m *Matrix) Cols() int {
	return m.cols
}

func (m *Matrix) Size() (int, int) {
	return m.rows, m.cols
}

// Unroll flattens the matrix row by row.
func (m *Matrix) Unroll() []float64 {
	f := make([]float64, 0, m.rows*m.cols)
	for _, row := range m.content {
		f = append(f, row...)
	}
	return f
}

func (m *Matrix) String() string {
	mStr := strings.Builder{}
	for i := range m.content {
		if i > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("%v", m.content[i]))
	}
	return mStr.String()
}

func (m *Matrix) Describe() string {
	return fmt.Sprintf("%dx%d Matrix:\n%s", m.rows, m.cols, m.String())
}
