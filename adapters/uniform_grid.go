package adapters

import (
	"errors"
	"math"

	"github.com/reactopo/reactopo/particle"
)

// ErrNonPositiveCellSize indicates NewUniformGridList was given a cell
// size that cannot partition the box.
var ErrNonPositiveCellSize = errors.New("adapters: cell size must be positive")

// UniformGridList is a minimal periodic cell-list NeighborList (SPEC_FULL
// §4.7.1): the box is partitioned into a regular 3D grid of cellSize-sided
// cells, and ForEachNeighbor scans the 3x3x3 block of cells around a
// particle's own cell, wrapping indices for periodic axes the same way
// Context.DistSquared is expected to. It is a demonstration and test
// fixture, not a production neighbor-list algorithm (spec.md §1's
// Non-goals explicitly exclude that).
//
// Grounded on the teacher library's gridgraph package: cells are
// addressed by a flattened (x, y, z) index exactly as gridgraph addresses
// (x, y) grid cells, and rebuilding the list follows the same
// "bucket everything, then scan buckets" shape as
// gridgraph.ConnectedComponents' BFS over a cell array.
type UniformGridList struct {
	dims     [3]int
	cellSize float64
	periodic [3]bool
	cells    [][]int
	cellOf   map[int]int
}

// NewUniformGridList buckets every active particle in store into a grid
// of the given cell size over ctx's box, ready for ForEachNeighbor scans.
func NewUniformGridList(store *particle.Store, ctx Context, cellSize float64) (*UniformGridList, error) {
	if cellSize <= 0 {
		return nil, ErrNonPositiveCellSize
	}
	box := ctx.BoxSize()
	var dims [3]int
	for d := 0; d < 3; d++ {
		dims[d] = int(math.Max(1, math.Floor(box[d]/cellSize)))
	}

	g := &UniformGridList{
		dims:     dims,
		cellSize: cellSize,
		periodic: ctx.PeriodicBoundary(),
		cells:    make([][]int, dims[0]*dims[1]*dims[2]),
		cellOf:   make(map[int]int),
	}

	_ = store.Active(func(idx int, e *particle.Entry) error {
		cell := g.cellIndex(e.Position, box)
		g.cells[cell] = append(g.cells[cell], idx)
		g.cellOf[idx] = cell
		return nil
	})
	return g, nil
}

func (g *UniformGridList) cellIndex(pos particle.Vec3, box particle.Vec3) int {
	var coord [3]int
	for d := 0; d < 3; d++ {
		c := int(math.Floor(pos[d] / g.cellSize))
		c = ((c % g.dims[d]) + g.dims[d]) % g.dims[d]
		coord[d] = c
	}
	return coord[0] + g.dims[0]*(coord[1]+g.dims[1]*coord[2])
}

func (g *UniformGridList) coordOf(cell int) [3]int {
	x := cell % g.dims[0]
	rest := cell / g.dims[0]
	y := rest % g.dims[1]
	z := rest / g.dims[1]
	return [3]int{x, y, z}
}

// NCells returns the total number of grid cells.
func (g *UniformGridList) NCells() int { return len(g.cells) }

// ParticlesInCell returns the particle indices bucketed into cell.
func (g *UniformGridList) ParticlesInCell(cell int) []int {
	return g.cells[cell]
}

// ForEachNeighbor scans the 3x3x3 block of cells centered on cell and
// invokes f once per particle found there other than p itself. Each
// distinct cell is scanned once, even when wrapping on an axis with fewer
// than three cells reaches the same cell twice. On non-periodic axes,
// cells beyond the box boundary are skipped instead of wrapped.
func (g *UniformGridList) ForEachNeighbor(p int, cell int, f func(q int)) {
	coord := g.coordOf(cell)
	scanned := make(map[int]struct{}, 27)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nc, ok := g.shift(coord, [3]int{dx, dy, dz})
				if !ok {
					continue
				}
				idx := nc[0] + g.dims[0]*(nc[1]+g.dims[1]*nc[2])
				if _, dup := scanned[idx]; dup {
					continue
				}
				scanned[idx] = struct{}{}
				for _, q := range g.cells[idx] {
					if q == p {
						continue
					}
					f(q)
				}
			}
		}
	}
}

func (g *UniformGridList) shift(coord [3]int, delta [3]int) ([3]int, bool) {
	var out [3]int
	for d := 0; d < 3; d++ {
		v := coord[d] + delta[d]
		if g.periodic[d] {
			v = ((v % g.dims[d]) + g.dims[d]) % g.dims[d]
		} else if v < 0 || v >= g.dims[d] {
			return out, false
		}
		out[d] = v
	}
	return out, true
}

var _ NeighborList = (*UniformGridList)(nil)
