package engine

import (
	"fmt"
	"math/bits"
)

// Size is the board dimension.
const Size = 4

// Cell identifies one board position.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Tile is a numbered tile. A tile is owned by exactly one cell at a time.
type Tile struct {
	Value int
}

// Values is a value matrix indexed [x][y]; 0 marks an empty cell.
type Values [Size][Size]int

// Grid is the 4x4 board. Cells hold at most one tile and a tile pointer is
// never stored in two cells.
type Grid struct {
	cells [Size][Size]*Tile
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// FromValues builds a grid from a value matrix.
// Every non-zero value must be a power of two of at least 2.
func FromValues(v Values) (*Grid, error) {
	g := NewGrid()
	for x := range Size {
		for y := range Size {
			val := v[x][y]
			if val == 0 {
				continue
			}
			if !isTileValue(val) {
				return nil, fmt.Errorf("engine: tile value %d at %v: %w", val, Cell{x, y}, ErrInvalidInput)
			}
			g.cells[x][y] = &Tile{Value: val}
		}
	}
	return g, nil
}

func isTileValue(v int) bool {
	return v >= 2 && bits.OnesCount(uint(v)) == 1
}

// CellValid reports whether (x, y) lies on the board.
func (g *Grid) CellValid(x, y int) bool {
	return 0 <= x && x < Size && 0 <= y && y < Size
}

// IsEmpty reports whether (x, y) is valid and holds no tile.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.CellValid(x, y) && g.cells[x][y] == nil
}

// CanMerge reports whether (x, y) is valid and holds a tile of the given value.
func (g *Grid) CanMerge(x, y, value int) bool {
	return g.CellValid(x, y) && g.cells[x][y] != nil && g.cells[x][y].Value == value
}

// At returns the tile at (x, y), or nil for empty or invalid cells.
func (g *Grid) At(x, y int) *Tile {
	if !g.CellValid(x, y) {
		return nil
	}
	return g.cells[x][y]
}

// EmptyCells returns all unoccupied cells in traversal order
// (x ascending, then y ascending).
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for x := range Size {
		for y := range Size {
			if g.cells[x][y] == nil {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Occupied returns the number of cells holding a tile.
func (g *Grid) Occupied() int {
	return Size*Size - len(g.EmptyCells())
}

// Place puts t into c, replacing whatever was there.
func (g *Grid) Place(c Cell, t *Tile) error {
	if !g.CellValid(c.X, c.Y) {
		return fmt.Errorf("engine: place at %v: %w", c, ErrInvariantViolation)
	}
	g.cells[c.X][c.Y] = t
	return nil
}

// Clear empties c.
func (g *Grid) Clear(c Cell) error {
	if !g.CellValid(c.X, c.Y) {
		return fmt.Errorf("engine: clear at %v: %w", c, ErrInvariantViolation)
	}
	g.cells[c.X][c.Y] = nil
	return nil
}

// MoveTile transfers the tile in src to dst and clears src.
// Any tile previously in dst is dropped.
func (g *Grid) MoveTile(src, dst Cell) error {
	if !g.CellValid(src.X, src.Y) || !g.CellValid(dst.X, dst.Y) {
		return fmt.Errorf("engine: move %v -> %v: %w", src, dst, ErrInvariantViolation)
	}
	t := g.cells[src.X][src.Y]
	g.cells[src.X][src.Y] = nil
	g.cells[dst.X][dst.Y] = t
	return nil
}

// Values returns the value matrix of the grid.
func (g *Grid) Values() Values {
	var v Values
	for x := range Size {
		for y := range Size {
			if t := g.cells[x][y]; t != nil {
				v[x][y] = t.Value
			}
		}
	}
	return v
}

// MaxTile returns the highest tile value, or 0 for an empty grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for x := range Size {
		for y := range Size {
			if t := g.cells[x][y]; t != nil && t.Value > maxVal {
				maxVal = t.Value
			}
		}
	}
	return maxVal
}

// allCells yields every cell, x outer and y inner, optionally reversing
// either axis.
func allCells(flipX, flipY bool) []Cell {
	cells := make([]Cell, 0, Size*Size)
	for i := range Size {
		x := i
		if flipX {
			x = Size - 1 - i
		}
		for j := range Size {
			y := j
			if flipY {
				y = Size - 1 - j
			}
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
