// Package rotation describes how pieces rotate: the cell geometry of every
// (shape, orientation) pair, and where a shape spawns. A rotation system is
// immutable once built; any value satisfying System is interchangeable.
package rotation

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/spitewell/spitewell/move"
)

// GridSize is the side of the bounding box pieces are drawn in.
const GridSize = 4

var ErrNoOrientations = errors.New("shape has no orientations")

// Orientation is the geometry of one (shape, rotation) pair: a bounding box
// relative to the piece anchor, and one bitmask per box row. Bit j of a row
// is the column XMin+j.
type Orientation struct {
	YMin, YDim int
	XMin, XDim int
	Rows       []uint16
}

// CellCount returns the number of occupied cells in the orientation.
func (o Orientation) CellCount() int {
	count := 0
	for _, r := range o.Rows {
		for ; r != 0; r &= r - 1 {
			count++
		}
	}
	return count
}

// System is the rotation-system contract: per-shape orientation geometry
// plus the spawn placement for a given well width.
type System interface {
	Shapes() []move.Shape
	Orientations(s move.Shape) []Orientation
	Spawn(s move.Shape, width int) move.Piece
}

// Grid is one orientation drawn as GridSize strings of '.' and '#'.
type Grid [GridSize]string

// rotateCW turns a grid a quarter turn clockwise.
func (g Grid) rotateCW() Grid {
	var out Grid
	for y := 0; y < GridSize; y++ {
		row := make([]byte, GridSize)
		for x := 0; x < GridSize; x++ {
			row[x] = g[GridSize-1-x][y]
		}
		out[y] = string(row)
	}
	return out
}

// orientation derives the bounding box and row bitmasks from a drawn grid.
func (g Grid) orientation() (Orientation, error) {
	yMin, yMax, xMin, xMax := GridSize, -1, GridSize, -1
	for y := 0; y < GridSize; y++ {
		if len(g[y]) != GridSize {
			return Orientation{}, fmt.Errorf("grid row %d is %d chars, want %d", y, len(g[y]), GridSize)
		}
		for x := 0; x < GridSize; x++ {
			if g[y][x] != '#' {
				continue
			}
			if y < yMin {
				yMin = y
			}
			if y > yMax {
				yMax = y
			}
			if x < xMin {
				xMin = x
			}
			if x > xMax {
				xMax = x
			}
		}
	}
	if yMax < 0 {
		return Orientation{}, errors.New("grid has no occupied cells")
	}
	o := Orientation{
		YMin: yMin, YDim: yMax - yMin + 1,
		XMin: xMin, XDim: xMax - xMin + 1,
	}
	o.Rows = make([]uint16, o.YDim)
	for y := yMin; y <= yMax; y++ {
		var row uint16
		for x := xMin; x <= xMax; x++ {
			if g[y][x] == '#' {
				row |= 1 << (x - xMin)
			}
		}
		o.Rows[y-yMin] = row
	}
	return o, nil
}

// TableSystem is a rotation system backed by a fixed orientation table.
type TableSystem struct {
	shapes  []move.Shape
	orients map[move.Shape][]Orientation
}

// NewTableSystem builds a system from explicit per-shape orientation grids.
// Every listed shape must have at least one orientation; this is the one
// construction-time check the whole engine relies on.
func NewTableSystem(grids map[move.Shape][]Grid) (*TableSystem, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("%w: empty shape table", ErrNoOrientations)
	}
	sys := &TableSystem{orients: make(map[move.Shape][]Orientation)}
	for _, s := range move.AllShapes() {
		gs, ok := grids[s]
		if !ok {
			continue
		}
		if len(gs) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrNoOrientations, s)
		}
		orients := make([]Orientation, len(gs))
		for i, g := range gs {
			o, err := g.orientation()
			if err != nil {
				return nil, fmt.Errorf("shape %v orientation %d: %w", s, i, err)
			}
			orients[i] = o
		}
		sys.shapes = append(sys.shapes, s)
		sys.orients[s] = orients
	}
	if len(sys.shapes) != len(grids) {
		return nil, errors.New("shape table contains unknown shapes")
	}
	return sys, nil
}

// NewSpunSystem builds a system from one base grid per shape, deriving the
// remaining orientations by clockwise rotation.
func NewSpunSystem(base map[move.Shape]Grid, orientations int) (*TableSystem, error) {
	if orientations < 1 {
		return nil, fmt.Errorf("%w: %d orientations requested", ErrNoOrientations, orientations)
	}
	grids := make(map[move.Shape][]Grid, len(base))
	for s, g := range base {
		gs := make([]Grid, orientations)
		for i := range gs {
			gs[i] = g
			g = g.rotateCW()
		}
		grids[s] = gs
	}
	return NewTableSystem(grids)
}

func (t *TableSystem) Shapes() []move.Shape {
	return t.shapes
}

func (t *TableSystem) Orientations(s move.Shape) []Orientation {
	return t.orients[s]
}

// Spawn places the piece's box at the top of the well, horizontally
// centered.
func (t *TableSystem) Spawn(s move.Shape, width int) move.Piece {
	return move.Piece{X: (width - GridSize) / 2, Y: 0, O: 0, Shape: s}
}

//go:embed shapes.yaml
var shapesYAML []byte

type shapeFile struct {
	Shapes map[string][]string `yaml:"shapes"`
}

var standard *TableSystem

func init() {
	var sf shapeFile
	if err := yaml.Unmarshal(shapesYAML, &sf); err != nil {
		panic("rotation: bad embedded shape table: " + err.Error())
	}
	base := make(map[move.Shape]Grid, len(sf.Shapes))
	for name, rows := range sf.Shapes {
		s, err := move.ParseShape(name)
		if err != nil {
			panic("rotation: " + err.Error())
		}
		if len(rows) != GridSize {
			panic(fmt.Sprintf("rotation: shape %s has %d rows, want %d", name, len(rows), GridSize))
		}
		var g Grid
		copy(g[:], rows)
		base[s] = g
	}
	sys, err := NewSpunSystem(base, 4)
	if err != nil {
		panic("rotation: " + err.Error())
	}
	standard = sys
}

// Standard returns the built-in rotation system with the seven standard
// shapes and four clockwise orientations each.
func Standard() System {
	return standard
}
