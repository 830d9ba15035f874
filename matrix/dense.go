package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}

// PrefixSumOf builds the 2-D inclusive prefix-sum table of m: the returned
// matrix p satisfies p.At(row,col) == sum of m.At(i,j) for i<=row, j<=col.
// It is the table RegionSum queries against.
func PrefixSumOf(m *Dense) *Dense {
	p, _ := NewDense(m.r, m.c)
	for row := 0; row < m.r; row++ {
		for col := 0; col < m.c; col++ {
			v := m.data[row*m.c+col]
			above, left, diag := 0.0, 0.0, 0.0
			if row > 0 {
				above = p.data[(row-1)*m.c+col]
			}
			if col > 0 {
				left = p.data[row*m.c+col-1]
			}
			if row > 0 && col > 0 {
				diag = p.data[(row-1)*m.c+col-1]
			}
			p.data[row*m.c+col] = v + above + left - diag
		}
	}
	return p
}

// RegionSum returns the sum over the inclusive rectangle
// [row0,row1] x [col0,col1] using the inclusion-exclusion identity on a
// prefix-sum table built by PrefixSumOf. It returns ErrOutOfRange if the
// rectangle falls outside p, or if row1<row0 or col1<col0.
func RegionSum(p *Dense, row0, col0, row1, col1 int) (float64, error) {
	if row1 < row0 || col1 < col0 {
		return 0, denseErrorf("RegionSum", row1, col1, ErrOutOfRange)
	}
	if row0 < 0 || col0 < 0 {
		return 0, denseErrorf("RegionSum", row0, col0, ErrOutOfRange)
	}
	total, err := p.At(row1, col1)
	if err != nil {
		return 0, err
	}
	if row0 > 0 {
		above, err := p.At(row0-1, col1)
		if err != nil {
			return 0, err
		}
		total -= above
	}
	if col0 > 0 {
		left, err := p.At(row1, col0-1)
		if err != nil {
			return 0, err
		}
		total -= left
	}
	if row0 > 0 && col0 > 0 {
		diag, err := p.At(row0-1, col0-1)
		if err != nil {
			return 0, err
		}
		total += diag
	}
	return total, nil
}
