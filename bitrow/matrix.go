package bitrow

// Matrix is a rendered barcode image: a grid of dark/light modules. The
// writer produces one; it has no role in decoding.
type Matrix struct {
	width  int
	height int
	rows   []*Row
}

// NewMatrix creates an all-light Matrix of the given dimensions.
func NewMatrix(width, height int) *Matrix {
	rows := make([]*Row, height)
	for y := range rows {
		rows[y] = NewRow(width)
	}
	return &Matrix{width: width, height: height, rows: rows}
}

// Width returns the matrix width in modules.
func (m *Matrix) Width() int { return m.width }

// Height returns the matrix height in modules.
func (m *Matrix) Height() int { return m.height }

// Get reports whether the module at (x, y) is dark.
func (m *Matrix) Get(x, y int) bool {
	return m.rows[y].Get(x)
}

// Set marks the module at (x, y) dark.
func (m *Matrix) Set(x, y int) {
	m.rows[y].Set(x)
}

// SetColumnRange marks modules [x, x+w) dark in every row.
func (m *Matrix) SetColumnRange(x, w int) {
	for y := 0; y < m.height; y++ {
		m.rows[y].SetRange(x, x+w)
	}
}
