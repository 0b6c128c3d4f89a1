package dec

import "fmt"

// Form0 stores one value per grid vertex as an (h+1) x (w+1) array.
type Form0[T Scalar] struct {
	Array2D[T]
	grid Grid2D
}

// Form2 stores one value per grid face as an h x w array.
type Form2[T Scalar] struct {
	Array2D[T]
	grid Grid2D
}

// Form1 stores one value per grid edge in a single buffer. The (h+1) x w block of
// vertical edges comes first, followed at offset w*(h+1) by the h x (w+1) block of
// horizontal edges.
type Form1[T Scalar] struct {
	data []T
	grid Grid2D
}

func NewForm0[T Scalar](g Grid2D) *Form0[T] {
	g.mustBeValid("0-form")
	h, w := g.Dims()
	return &Form0[T]{Array2D: newArray2D(h+1, w+1, make([]T, g.NumVertices())), grid: g}
}

func NewForm1[T Scalar](g Grid2D) *Form1[T] {
	g.mustBeValid("1-form")
	return &Form1[T]{data: make([]T, g.NumEdges()), grid: g}
}

func NewForm2[T Scalar](g Grid2D) *Form2[T] {
	g.mustBeValid("2-form")
	h, w := g.Dims()
	return &Form2[T]{Array2D: newArray2D(h, w, make([]T, g.NumFaces())), grid: g}
}

// Form0From copies rows, which must be (h+1) x (w+1), into a new 0-form.
func Form0From[T Scalar](g Grid2D, rows [][]T) (f *Form0[T]) {
	f = NewForm0[T](g)
	fillRows(f.Array2D, rows, "0-form")
	return
}

// Form2From copies rows, which must be h x w, into a new 2-form.
func Form2From[T Scalar](g Grid2D, rows [][]T) (f *Form2[T]) {
	f = NewForm2[T](g)
	fillRows(f.Array2D, rows, "2-form")
	return
}

// Form1From copies the vertical ((h+1) x w) and horizontal (h x (w+1)) edge rows into
// a new 1-form.
func Form1From[T Scalar](g Grid2D, vertical, horizontal [][]T) (f *Form1[T]) {
	f = NewForm1[T](g)
	v, hz := f.SplitMut()
	fillRows(v, vertical, "vertical edges")
	fillRows(hz, horizontal, "horizontal edges")
	return
}

func fillRows[T Scalar](a Array2D[T], rows [][]T, name string) {
	nr, nc := a.Dims()
	if len(rows) != nr {
		panic(fmt.Errorf("%w: %s needs %d rows, have %d", ErrShapeMismatch, name, nr, len(rows)))
	}
	for i, row := range rows {
		if len(row) != nc {
			panic(fmt.Errorf("%w: %s row %d needs %d columns, have %d",
				ErrShapeMismatch, name, i, nc, len(row)))
		}
		copy(a.Row(i), row)
	}
}

func (f *Form0[T]) Grid() Grid2D { return f.grid }

func (f *Form1[T]) Grid() Grid2D { return f.grid }

func (f *Form2[T]) Grid() Grid2D { return f.grid }

// Data returns the packed edge buffer.
func (f *Form1[T]) Data() []T { return f.data }

// Dim returns the face dimensions of the grid the form was built for.
func (f *Form1[T]) Dim() (h, w int) { return f.grid.Dims() }

func (f *Form1[T]) offset() int { return f.grid.NumVerticalEdges() }

// Split returns read-only views of the vertical and horizontal edge blocks. Both
// alias the form's buffer.
func (f *Form1[T]) Split() (vertical, horizontal View2D[T]) {
	v, hz := f.SplitMut()
	return v.View(), hz.View()
}

// SplitMut returns mutable views of the vertical and horizontal edge blocks. No other
// view of the same form may be in use while they are written.
func (f *Form1[T]) SplitMut() (vertical, horizontal Array2D[T]) {
	var (
		h, w = f.grid.Dims()
		off  = f.offset()
	)
	vertical = newArray2D(h+1, w, f.data[:off:off])
	horizontal = newArray2D(h, w+1, f.data[off:])
	return
}

// CopyFrom copies src, which must be built for the same grid, into f.
func (f *Form1[T]) CopyFrom(src *Form1[T]) {
	checkGrid(f.grid, src.grid, "1-form")
	copy(f.data, src.data)
}

// Fill sets every edge value to v.
func (f *Form1[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

func checkGrid(want, have Grid2D, name string) {
	if want != have {
		panic(fmt.Errorf("%w: %s built for %v used on %v", ErrShapeMismatch, name, have, want))
	}
}
