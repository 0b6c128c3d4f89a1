package dec

import "fmt"

// Derivative0Primal maps a primal 0-form to a primal 1-form. Vertical edge (i, j) gets
// v[i][j+1] - v[i][j] and horizontal edge (i, j) gets v[i+1][j] - v[i][j].
func (m *Manifold2D[T]) Derivative0Primal(edges *Form1[T], vertices *Form0[T]) {
	checkGrid(m.grid, edges.grid, "1-form")
	checkGrid(m.grid, vertices.grid, "0-form")
	var (
		h, _      = m.grid.Dims()
		ev, eh    = edges.SplitMut()
		vertexRow = vertices.View()
	)
	parallelRows(m.parallel, h+1, func(i int) {
		var (
			e = ev.Row(i)
			v = vertexRow.Row(i)
		)
		for j := range e {
			e[j] = v[j+1] - v[j]
		}
	})
	parallelRows(m.parallel, h, func(i int) {
		var (
			e      = eh.Row(i)
			v0, v1 = vertexRow.Row(i), vertexRow.Row(i + 1)
		)
		for j := range e {
			e[j] = v1[j] - v0[j]
		}
	})
}

// Derivative0Dual maps a dual 0-form, stored on the faces, to a dual 1-form. Only the
// interior edges are written: rows 0 and h of the vertical block and columns 0 and w
// of the horizontal block keep whatever value they had.
func (m *Manifold2D[T]) Derivative0Dual(edges *Form1[T], faces *Form2[T]) {
	checkGrid(m.grid, edges.grid, "1-form")
	checkGrid(m.grid, faces.grid, "2-form")
	var (
		h, _    = m.grid.Dims()
		ev, eh  = edges.SplitMut()
		faceRow = faces.View()
	)
	// vertical
	parallelRows(m.parallel, h-1, func(k int) {
		var (
			i      = k + 1
			e      = ev.Row(i)
			f0, f1 = faceRow.Row(i - 1), faceRow.Row(i)
		)
		for j := range e {
			e[j] = -(f1[j] - f0[j])
		}
	})
	// horizontal
	parallelRows(m.parallel, h, func(i int) {
		var (
			e = eh.Row(i)
			f = faceRow.Row(i)
		)
		for j := 1; j < len(e)-1; j++ {
			e[j] = f[j-1] - f[j]
		}
	})
}

// Derivative1Primal maps a primal 1-form to a primal 2-form, the discrete divergence of
// the edge field: face (i, j) gets top - bottom + right - left.
func (m *Manifold2D[T]) Derivative1Primal(faces *Form2[T], edges *Form1[T]) {
	checkGrid(m.grid, faces.grid, "2-form")
	checkGrid(m.grid, edges.grid, "1-form")
	var (
		h, _   = m.grid.Dims()
		ev, eh = edges.Split()
	)
	parallelRows(m.parallel, h, func(i int) {
		var (
			f           = faces.Row(i)
			top, bottom = ev.Row(i), ev.Row(i + 1)
			lr          = eh.Row(i)
		)
		for j := range f {
			f[j] = -bottom[j] + top[j] - lr[j] + lr[j+1]
		}
	})
}

// Derivative1Dual would map a dual 1-form to a dual 2-form stored on the vertices. It
// has no defined behavior yet and always returns an error wrapping ErrNotImplemented,
// leaving vertices untouched.
func (m *Manifold2D[T]) Derivative1Dual(vertices *Form0[T], edges *Form1[T]) error {
	checkGrid(m.grid, vertices.grid, "0-form")
	checkGrid(m.grid, edges.grid, "1-form")
	return fmt.Errorf("%w: Derivative1Dual", ErrNotImplemented)
}
