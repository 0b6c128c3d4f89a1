package dec

// HodgeStar converts a form of one degree between its primal and dual representation.
// On 0-forms and 2-forms ApplyInverse undoes Apply exactly. On 1-forms the composition
// is minus the identity, since applying the star twice to a 1-form in 2D negates it.
type HodgeStar[F any] interface {
	Apply(dual, primal F)
	ApplyInverse(primal, dual F)
}

// Hodge0 is the lumped Hodge star on 0-forms. A vertex is weighted by the area of its
// dual cell: 1/4 at the corners, 1/2 along the rest of the boundary and 1 inside.
type Hodge0[T Scalar] struct {
	grid     Grid2D
	parallel int
}

// Hodge1 is the Hodge star on 1-forms. Rotating an edge by 90 degrees flips the sign of
// the horizontal block on the way to the dual and of the vertical block on the way back,
// so ApplyInverse(Apply(x)) is -x and Apply(-ApplyInverse(x)) is x.
type Hodge1[T Scalar] struct {
	grid     Grid2D
	parallel int
}

// Hodge2 is the Hodge star on 2-forms, the identity on a uniform grid.
type Hodge2[T Scalar] struct {
	grid Grid2D
}

var (
	_ HodgeStar[*Form0[float64]] = Hodge0[float64]{}
	_ HodgeStar[*Form1[float64]] = Hodge1[float64]{}
	_ HodgeStar[*Form2[float64]] = Hodge2[float64]{}
)

func NewHodge0[T Scalar](g Grid2D) Hodge0[T] {
	g.mustBeValid("hodge star on 0-forms")
	return Hodge0[T]{grid: g, parallel: 1}
}

func NewHodge1[T Scalar](g Grid2D) Hodge1[T] {
	g.mustBeValid("hodge star on 1-forms")
	return Hodge1[T]{grid: g, parallel: 1}
}

func NewHodge2[T Scalar](g Grid2D) Hodge2[T] {
	g.mustBeValid("hodge star on 2-forms")
	return Hodge2[T]{grid: g}
}

// vertexClass counts how many of the vertex's coordinates lie on the boundary: 2 for the
// corners, 1 for the other boundary vertices and 0 for the interior.
func (hs Hodge0[T]) vertexClass(i, j int) (n int) {
	h, w := hs.grid.Dims()
	if i == 0 || i == h {
		n++
	}
	if j == 0 || j == w {
		n++
	}
	return
}

// MassWeight returns the dual cell area of vertex (i, j) relative to an interior vertex.
func (hs Hodge0[T]) MassWeight(i, j int) T {
	switch hs.vertexClass(i, j) {
	case 2:
		return T(1) / T(4)
	case 1:
		return T(1) / T(2)
	default:
		return T(1)
	}
}

func (hs Hodge0[T]) Apply(dual, primal *Form0[T]) {
	checkGrid(hs.grid, dual.grid, "dual 0-form")
	checkGrid(hs.grid, primal.grid, "primal 0-form")
	var (
		two  = T(2)
		four = T(4)
	)
	h, _ := hs.grid.Dims()
	parallelRows(hs.parallel, h+1, func(i int) {
		var (
			d = dual.Row(i)
			p = primal.Row(i)
			n = len(p) - 1
		)
		if i == 0 || i == h {
			d[0], d[n] = p[0]/four, p[n]/four
			for j := 1; j < n; j++ {
				d[j] = p[j] / two
			}
			return
		}
		d[0], d[n] = p[0]/two, p[n]/two
		copy(d[1:n], p[1:n])
	})
}

func (hs Hodge0[T]) ApplyInverse(primal, dual *Form0[T]) {
	checkGrid(hs.grid, dual.grid, "dual 0-form")
	checkGrid(hs.grid, primal.grid, "primal 0-form")
	var (
		two  = T(2)
		four = T(4)
	)
	h, _ := hs.grid.Dims()
	parallelRows(hs.parallel, h+1, func(i int) {
		var (
			p = primal.Row(i)
			d = dual.Row(i)
			n = len(d) - 1
		)
		if i == 0 || i == h {
			p[0], p[n] = d[0]*four, d[n]*four
			for j := 1; j < n; j++ {
				p[j] = d[j] * two
			}
			return
		}
		p[0], p[n] = d[0]*two, d[n]*two
		copy(p[1:n], d[1:n])
	})
}

func (hs Hodge1[T]) Apply(dual, primal *Form1[T]) {
	checkGrid(hs.grid, dual.grid, "dual 1-form")
	checkGrid(hs.grid, primal.grid, "primal 1-form")
	var (
		pv, ph = primal.Split()
		dv, dh = dual.SplitMut()
	)
	copyRows(hs.parallel, dv, pv)
	negateRows(hs.parallel, dh, ph)
}

func (hs Hodge1[T]) ApplyInverse(primal, dual *Form1[T]) {
	checkGrid(hs.grid, dual.grid, "dual 1-form")
	checkGrid(hs.grid, primal.grid, "primal 1-form")
	var (
		dv, dh = dual.Split()
		pv, ph = primal.SplitMut()
	)
	negateRows(hs.parallel, pv, dv)
	copyRows(hs.parallel, ph, dh)
}

func (hs Hodge2[T]) Apply(dual, primal *Form2[T]) {
	checkGrid(hs.grid, dual.grid, "dual 2-form")
	checkGrid(hs.grid, primal.grid, "primal 2-form")
	dual.CopyFrom(primal.View())
}

func (hs Hodge2[T]) ApplyInverse(primal, dual *Form2[T]) {
	checkGrid(hs.grid, dual.grid, "dual 2-form")
	checkGrid(hs.grid, primal.grid, "primal 2-form")
	primal.CopyFrom(dual.View())
}

func copyRows[T Scalar](parallel int, dst Array2D[T], src View2D[T]) {
	parallelRows(parallel, dst.nr, func(i int) {
		copy(dst.Row(i), src.Row(i))
	})
}

func negateRows[T Scalar](parallel int, dst Array2D[T], src View2D[T]) {
	parallelRows(parallel, dst.nr, func(i int) {
		d, s := dst.Row(i), src.Row(i)
		for j := range s {
			d[j] = -s[j]
		}
	})
}
