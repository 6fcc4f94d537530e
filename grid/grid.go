package grid

import (
	"github.com/katalvlaran/cubhom/cube"
	"github.com/katalvlaran/cubhom/cubicalset"
)

// FromGrid2D builds a CubicalSet from a row × column boolean grid. Element
// active[x][y] = true means the unit square with lower-left corner (x, y) is
// present, contributing the cube I(x) × I(y).
// Returns ErrEmptyGrid if active has no rows or no columns, ErrNonRectangular
// if rows differ in length.
// Complexity: O(rows*cols) time and memory.
func FromGrid2D(active [][]bool) (*cubicalset.CubicalSet, error) {
	if len(active) == 0 || len(active[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(active[0])
	for _, row := range active {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	k := cubicalset.New()
	for x, row := range active {
		for y, on := range row {
			if !on {
				continue
			}
			q, err := cube.New(cube.NewInterval(x), cube.NewInterval(y))
			if err != nil {
				return nil, err
			}
			if err := k.Insert(q); err != nil {
				return nil, err
			}
		}
	}
	return k, nil
}

// FromGrid3D builds a CubicalSet from a rows × columns × steps boolean
// grid, analogous to FromGrid2D: active[x][y][z] = true yields the cube
// I(x) × I(y) × I(z).
// Returns ErrEmptyGrid if any dimension is empty, ErrNonRectangular if rows
// or columns are not uniformly sized.
// Complexity: O(rows*cols*steps) time and memory.
func FromGrid3D(active [][][]bool) (*cubicalset.CubicalSet, error) {
	if len(active) == 0 || len(active[0]) == 0 || len(active[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(active[0])
	steps := len(active[0][0])
	for _, plane := range active {
		if len(plane) != cols {
			return nil, ErrNonRectangular
		}
		for _, col := range plane {
			if len(col) != steps {
				return nil, ErrNonRectangular
			}
		}
	}

	k := cubicalset.New()
	for x, plane := range active {
		for y, col := range plane {
			for z, on := range col {
				if !on {
					continue
				}
				q, err := cube.New(cube.NewInterval(x), cube.NewInterval(y), cube.NewInterval(z))
				if err != nil {
					return nil, err
				}
				if err := k.Insert(q); err != nil {
					return nil, err
				}
			}
		}
	}
	return k, nil
}
