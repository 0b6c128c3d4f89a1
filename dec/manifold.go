package dec

import "runtime"

// Manifold is a discretized 2D domain supporting the exterior derivative and Hodge star
// on forms of every degree.
type Manifold[T Scalar] interface {
	NumElem0() int
	NumElem1() int
	NumElem2() int

	NewForm0() *Form0[T]
	NewForm1() *Form1[T]
	NewForm2() *Form2[T]

	// Derivative0Primal maps primal 0-forms to primal 1-forms.
	Derivative0Primal(edges *Form1[T], vertices *Form0[T])
	Derivative0Dual(edges *Form1[T], faces *Form2[T])
	// Derivative1Primal maps primal 1-forms to primal 2-forms.
	Derivative1Primal(faces *Form2[T], edges *Form1[T])
	Derivative1Dual(vertices *Form0[T], edges *Form1[T]) error

	Hodge0Primal(dual, primal *Form0[T])
	Hodge0Dual(primal, dual *Form0[T])
	Hodge1Primal(dual, primal *Form1[T])
	Hodge1Dual(primal, dual *Form1[T])
	Hodge2Primal(dual, primal *Form2[T])
	Hodge2Dual(primal, dual *Form2[T])
}

// Manifold2D evaluates the DEC operators on a Grid2D. Stencils are spread over
// ParallelDegree goroutines by partitioning output rows.
type Manifold2D[T Scalar] struct {
	grid     Grid2D
	parallel int
	hodge0   Hodge0[T]
	hodge1   Hodge1[T]
	hodge2   Hodge2[T]
}

var (
	_ Manifold[float32]    = (*Manifold2D[float32])(nil)
	_ Manifold[complex128] = (*Manifold2D[complex128])(nil)
	_ MatrixAssembler      = (*Manifold2D[float64])(nil)
)

type Option func(*options)

type options struct {
	parallelDegree int
}

// WithParallelDegree sets the number of goroutines used per operator call. Values
// below one select serial evaluation.
func WithParallelDegree(n int) Option {
	return func(o *options) { o.parallelDegree = n }
}

func NewManifold2D[T Scalar](g Grid2D, opts ...Option) (m *Manifold2D[T]) {
	g.mustBeValid("manifold")
	o := options{parallelDegree: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallelDegree < 1 {
		o.parallelDegree = 1
	}
	m = &Manifold2D[T]{
		grid:     g,
		parallel: o.parallelDegree,
		hodge0:   Hodge0[T]{grid: g, parallel: o.parallelDegree},
		hodge1:   Hodge1[T]{grid: g, parallel: o.parallelDegree},
		hodge2:   Hodge2[T]{grid: g},
	}
	return
}

func (m *Manifold2D[T]) Grid() Grid2D { return m.grid }

func (m *Manifold2D[T]) ParallelDegree() int { return m.parallel }

func (m *Manifold2D[T]) NumElem0() int { return m.grid.NumVertices() }

func (m *Manifold2D[T]) NumElem1() int { return m.grid.NumEdges() }

func (m *Manifold2D[T]) NumElem2() int { return m.grid.NumFaces() }

func (m *Manifold2D[T]) NewForm0() *Form0[T] { return NewForm0[T](m.grid) }

func (m *Manifold2D[T]) NewForm1() *Form1[T] { return NewForm1[T](m.grid) }

func (m *Manifold2D[T]) NewForm2() *Form2[T] { return NewForm2[T](m.grid) }

func (m *Manifold2D[T]) Hodge0() Hodge0[T] { return m.hodge0 }

func (m *Manifold2D[T]) Hodge1() Hodge1[T] { return m.hodge1 }

func (m *Manifold2D[T]) Hodge2() Hodge2[T] { return m.hodge2 }

func (m *Manifold2D[T]) Hodge0Primal(dual, primal *Form0[T]) { m.hodge0.Apply(dual, primal) }

func (m *Manifold2D[T]) Hodge0Dual(primal, dual *Form0[T]) { m.hodge0.ApplyInverse(primal, dual) }

func (m *Manifold2D[T]) Hodge1Primal(dual, primal *Form1[T]) { m.hodge1.Apply(dual, primal) }

func (m *Manifold2D[T]) Hodge1Dual(primal, dual *Form1[T]) { m.hodge1.ApplyInverse(primal, dual) }

func (m *Manifold2D[T]) Hodge2Primal(dual, primal *Form2[T]) { m.hodge2.Apply(dual, primal) }

func (m *Manifold2D[T]) Hodge2Dual(primal, dual *Form2[T]) { m.hodge2.ApplyInverse(primal, dual) }
