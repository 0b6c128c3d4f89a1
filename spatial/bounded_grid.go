// Package spatial provides a bounded uniform grid for particle neighbor search.
//
// Particles are sorted by cell key, after which every cell owns one contiguous range
// of particle indices. Ref: "Particle Simulation using CUDA", Green, Simon, 2013
package spatial

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// NoKey is the key of a position outside the grid. It sorts after every valid key.
const NoKey = math.MaxInt

type BoundedGrid struct {
	nx, ny   int
	cellSize float64
	// cellRanges holds [start, end) particle indices per cell, keyed by x + y*nx
	cellRanges [][2]int
}

func NewBoundedGrid(nx, ny int, cellSize float64) *BoundedGrid {
	if nx < 1 || ny < 1 {
		panic(fmt.Errorf("bounded grid needs at least one cell per axis, have %d x %d", nx, ny))
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		panic(fmt.Errorf("invalid cell size %v", cellSize))
	}
	return &BoundedGrid{
		nx:         nx,
		ny:         ny,
		cellSize:   cellSize,
		cellRanges: make([][2]int, nx*ny),
	}
}

func (bg *BoundedGrid) NumCells() (nx, ny int) { return bg.nx, bg.ny }

func (bg *BoundedGrid) CellSize() float64 { return bg.cellSize }

// Cell returns the cell containing p, with ok false when p lies outside the grid.
func (bg *BoundedGrid) Cell(p r2.Vec) (x, y int, ok bool) {
	fx, fy := math.Floor(p.X/bg.cellSize), math.Floor(p.Y/bg.cellSize)
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return
	}
	if fx < 0 || fx >= float64(bg.nx) || fy < 0 || fy >= float64(bg.ny) {
		return
	}
	return int(fx), int(fy), true
}

// Key returns the linear cell index of p, or NoKey and false outside the grid.
func (bg *BoundedGrid) Key(p r2.Vec) (key int, ok bool) {
	var x, y int
	if x, y, ok = bg.Cell(p); !ok {
		return NoKey, false
	}
	return x + y*bg.nx, true
}

func (bg *BoundedGrid) key(p r2.Vec) (key int) {
	key, _ = bg.Key(p)
	return
}

// SortByKey stably reorders positions by cell key, positions outside the grid last.
// The returned permutation maps new indices to the original ones so that other
// particle attributes can be reordered to match.
func (bg *BoundedGrid) SortByKey(positions []r2.Vec) (perm []int) {
	keys := make([]int, len(positions))
	perm = make([]int, len(positions))
	for i, p := range positions {
		keys[i] = bg.key(p)
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return keys[perm[a]] < keys[perm[b]] })
	sorted := make([]r2.Vec, len(positions))
	for i, k := range perm {
		sorted[i] = positions[k]
	}
	copy(positions, sorted)
	return
}

// ConstructRanges rebuilds the cell ranges from positions sorted by SortByKey. Cells
// without particles get an empty range. Positions from the first one outside the grid
// onward are not assigned to any cell.
func (bg *BoundedGrid) ConstructRanges(positions []r2.Vec) {
	for i := range bg.cellRanges {
		bg.cellRanges[i] = [2]int{0, 0}
	}
	if len(positions) == 0 {
		return
	}
	prev := bg.key(positions[0])
	if prev == NoKey {
		return
	}
	bg.cellRanges[prev][0] = 0
	for particle := 1; particle < len(positions); particle++ {
		index := bg.key(positions[particle])
		if index == NoKey {
			bg.cellRanges[prev][1] = particle
			return
		}
		if index < prev {
			panic(fmt.Errorf("positions are not sorted by key: particle %d has key %d after %d",
				particle, index, prev))
		}
		if prev != index { // new cell
			bg.cellRanges[index][0] = particle
			bg.cellRanges[prev][1] = particle
		}
		prev = index
	}
	bg.cellRanges[prev][1] = len(positions)
}

// Range returns the [start, end) particle indices of cell (x, y). ok is false when
// the cell lies outside the grid.
func (bg *BoundedGrid) Range(x, y int) (start, end int, ok bool) {
	if x < 0 || x >= bg.nx || y < 0 || y >= bg.ny {
		return
	}
	start, end = bg.RangeUnchecked(x, y)
	return start, end, true
}

// RangeUnchecked is Range without the bounds check. The caller guarantees that
// (x, y) lies inside the grid.
func (bg *BoundedGrid) RangeUnchecked(x, y int) (start, end int) {
	r := bg.cellRanges[x+y*bg.nx]
	return r[0], r[1]
}

// ForEachNeighbor calls fn with every particle index in the cells within bound cells
// of (x, y), the cell itself included. The neighborhood is clamped to the grid.
func (bg *BoundedGrid) ForEachNeighbor(x, y, bound int, fn func(particle int)) {
	var (
		lowerX, lowerY = max(x-bound, 0), max(y-bound, 0)
		upperX, upperY = min(x+bound+1, bg.nx), min(y+bound+1, bg.ny)
	)
	for cy := lowerY; cy < upperY; cy++ {
		for cx := lowerX; cx < upperX; cx++ {
			start, end := bg.RangeUnchecked(cx, cy)
			for p := start; p < end; p++ {
				fn(p)
			}
		}
	}
}
