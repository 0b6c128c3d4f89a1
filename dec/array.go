package dec

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// View2D is a read-only row-major window onto a slice.
type View2D[T Scalar] struct {
	data   []T
	nr, nc int
}

// Array2D is a mutable row-major window onto a slice. Two Array2D values built over
// the same slice alias each other.
type Array2D[T Scalar] struct {
	data   []T
	nr, nc int
}

func newArray2D[T Scalar](nr, nc int, data []T) Array2D[T] {
	if len(data) != nr*nc {
		panic(fmt.Errorf("%w: buffer of length %d cannot hold %d x %d",
			ErrShapeMismatch, len(data), nr, nc))
	}
	return Array2D[T]{data: data, nr: nr, nc: nc}
}

func (a Array2D[T]) Dims() (nr, nc int) { return a.nr, a.nc }

func (a Array2D[T]) index(i, j int) int {
	if i < 0 || i >= a.nr || j < 0 || j >= a.nc {
		panic(fmt.Errorf("%w: (%d, %d) in %d x %d", ErrIndexOutOfRange, i, j, a.nr, a.nc))
	}
	return i*a.nc + j
}

func (a Array2D[T]) At(i, j int) T { return a.data[a.index(i, j)] }

func (a Array2D[T]) Set(i, j int, v T) { a.data[a.index(i, j)] = v }

// Row returns row i, aliasing the backing storage.
func (a Array2D[T]) Row(i int) []T {
	if i < 0 || i >= a.nr {
		panic(fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, a.nr))
	}
	return a.data[i*a.nc : (i+1)*a.nc : (i+1)*a.nc]
}

// Data returns the row-major backing slice.
func (a Array2D[T]) Data() []T { return a.data }

// Fill sets every element to v.
func (a Array2D[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// CopyFrom copies src, which must have the same dimensions, into a.
func (a Array2D[T]) CopyFrom(src View2D[T]) {
	if a.nr != src.nr || a.nc != src.nc {
		panic(fmt.Errorf("%w: copy %d x %d into %d x %d",
			ErrShapeMismatch, src.nr, src.nc, a.nr, a.nc))
	}
	copy(a.data, src.data)
}

// View returns a read-only window onto the same storage.
func (a Array2D[T]) View() View2D[T] { return View2D[T]{data: a.data, nr: a.nr, nc: a.nc} }

func (v View2D[T]) Dims() (nr, nc int) { return v.nr, v.nc }

func (v View2D[T]) At(i, j int) T {
	if i < 0 || i >= v.nr || j < 0 || j >= v.nc {
		panic(fmt.Errorf("%w: (%d, %d) in %d x %d", ErrIndexOutOfRange, i, j, v.nr, v.nc))
	}
	return v.data[i*v.nc+j]
}

// Row returns row i. The caller must not write through it.
func (v View2D[T]) Row(i int) []T {
	if i < 0 || i >= v.nr {
		panic(fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, v.nr))
	}
	return v.data[i*v.nc : (i+1)*v.nc : (i+1)*v.nc]
}

// Rows copies the view into a freshly allocated slice of rows.
func (v View2D[T]) Rows() (rows [][]T) {
	rows = make([][]T, v.nr)
	for i := range rows {
		rows[i] = append([]T(nil), v.Row(i)...)
	}
	return
}

// Dense wraps a float64 view as a gonum matrix sharing the same storage.
func Dense(v View2D[float64]) *mat.Dense {
	return mat.NewDense(v.nr, v.nc, v.data)
}
