package dec

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// MatrixAssembler returns the DEC operators as explicit matrices for callers that
// assemble linear systems. An exterior derivative matrix has one row per output element
// and one column per input element; a Hodge matrix is diagonal.
//
// Manifold2D implements the interface, but no accessor is implemented yet: each one
// returns nil and an error wrapping ErrNotImplemented.
type MatrixAssembler interface {
	Derivative0PrimalMatrix() (*sparse.DOK, error)
	Derivative0DualMatrix() (*sparse.DOK, error)
	Derivative1PrimalMatrix() (*sparse.DOK, error)
	Derivative1DualMatrix() (*sparse.DOK, error)

	Hodge0PrimalMatrix() (*sparse.DIA, error)
	Hodge1PrimalMatrix() (*sparse.DIA, error)
	Hodge2PrimalMatrix() (*sparse.DIA, error)
	Hodge0DualMatrix() (*sparse.DIA, error)
	Hodge1DualMatrix() (*sparse.DIA, error)
	Hodge2DualMatrix() (*sparse.DIA, error)
}

func notImplemented(name string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, name)
}

func (m *Manifold2D[T]) Derivative0PrimalMatrix() (*sparse.DOK, error) {
	return nil, notImplemented("Derivative0PrimalMatrix")
}

func (m *Manifold2D[T]) Derivative0DualMatrix() (*sparse.DOK, error) {
	return nil, notImplemented("Derivative0DualMatrix")
}

func (m *Manifold2D[T]) Derivative1PrimalMatrix() (*sparse.DOK, error) {
	return nil, notImplemented("Derivative1PrimalMatrix")
}

func (m *Manifold2D[T]) Derivative1DualMatrix() (*sparse.DOK, error) {
	return nil, notImplemented("Derivative1DualMatrix")
}

func (m *Manifold2D[T]) Hodge0PrimalMatrix() (*sparse.DIA, error) {
	return nil, notImplemented("Hodge0PrimalMatrix")
}

func (m *Manifold2D[T]) Hodge1PrimalMatrix() (*sparse.DIA, error) {
	return nil, notImplemented("Hodge1PrimalMatrix")
}

func (m *Manifold2D[T]) Hodge2PrimalMatrix() (*sparse.DIA, error) {
	return nil, notImplemented("Hodge2PrimalMatrix")
}

func (m *Manifold2D[T]) Hodge0DualMatrix() (*sparse.DIA, error) {
	return nil, notImplemented("Hodge0DualMatrix")
}

func (m *Manifold2D[T]) Hodge1DualMatrix() (*sparse.DIA, error) {
	return nil, notImplemented("Hodge1DualMatrix")
}

func (m *Manifold2D[T]) Hodge2DualMatrix() (*sparse.DIA, error) {
	return nil, notImplemented("Hodge2DualMatrix")
}
