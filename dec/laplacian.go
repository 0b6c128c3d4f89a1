package dec

// Laplacian is the discrete Laplacian on 2-forms, composed from Hodge stars and
// exterior derivatives:
//
//	hodge2Primal -> derivative0Dual -> hodge1Dual -> derivative1Primal
//
// It owns the intermediate forms, so one Laplacian must not be applied from several
// goroutines at once.
type Laplacian[T Scalar] struct {
	manifold    *Manifold2D[T]
	facesDual   *Form2[T]
	edgesDual   *Form1[T]
	edgesPrimal *Form1[T]
}

func NewLaplacian[T Scalar](m *Manifold2D[T]) *Laplacian[T] {
	return &Laplacian[T]{
		manifold:    m,
		facesDual:   m.NewForm2(),
		edgesDual:   m.NewForm1(),
		edgesPrimal: m.NewForm1(),
	}
}

func (l *Laplacian[T]) Manifold() *Manifold2D[T] { return l.manifold }

// Apply writes the Laplacian of in to out. The boundary edges of the dual 1-form are
// never written by Derivative0Dual, so they stay zero across calls.
func (l *Laplacian[T]) Apply(out, in *Form2[T]) {
	m := l.manifold
	m.Hodge2Primal(l.facesDual, in)
	m.Derivative0Dual(l.edgesDual, l.facesDual)
	m.Hodge1Dual(l.edgesPrimal, l.edgesDual)
	m.Derivative1Primal(out, l.edgesPrimal)
}
