// Package dec implements discrete exterior calculus on a uniform, axis aligned 2D grid.
//
// Primal 0-forms live on the (h+1) x (w+1) vertices, primal 2-forms on the h x w faces
// and primal 1-forms on the staggered edges. Row index i grows downward and column
// index j grows to the right, so the "top" edge of face (i, j) is vertical edge (i, j)
// and the "bottom" one is vertical edge (i+1, j).
package dec

import "fmt"

// Scalar is the element type of a discrete form. Every member supports addition,
// subtraction, multiplication, division and negation.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Grid2D is a rectangular grid of H x W square faces.
type Grid2D struct {
	h, w int
}

func NewGrid2D(h, w int) (g Grid2D) {
	if h < 1 || w < 1 {
		panic(fmt.Errorf("%w: have (h, w) = (%d, %d)", ErrInvalidDimensions, h, w))
	}
	g = Grid2D{h: h, w: w}
	return
}

// Dims returns the number of faces along the vertical and horizontal axes.
func (g Grid2D) Dims() (h, w int) { return g.h, g.w }

func (g Grid2D) NumVertices() int { return (g.h + 1) * (g.w + 1) }

func (g Grid2D) NumEdges() int { return g.NumVerticalEdges() + g.NumHorizontalEdges() }

func (g Grid2D) NumFaces() int { return g.h * g.w }

// NumVerticalEdges counts the edges joining horizontally adjacent vertices, laid out as
// an (h+1) x w block.
func (g Grid2D) NumVerticalEdges() int { return (g.h + 1) * g.w }

// NumHorizontalEdges counts the edges joining vertically adjacent vertices, laid out as
// an h x (w+1) block.
func (g Grid2D) NumHorizontalEdges() int { return g.h * (g.w + 1) }

func (g Grid2D) String() string {
	return fmt.Sprintf("Grid2D[%dx%d]", g.h, g.w)
}

func (g Grid2D) valid() bool { return g.h > 0 && g.w > 0 }

// mustBeValid rejects the zero Grid2D and any grid not built by NewGrid2D.
func (g Grid2D) mustBeValid(name string) {
	if !g.valid() {
		panic(fmt.Errorf("%w: %s on %v", ErrInvalidDimensions, name, g))
	}
}
