package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and the start/end markers.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool // Visited is scratch state owned by the generator.
	IsStart   bool // IsStart marks the cell the maze starts from.
	IsEnd     bool // IsEnd marks the cell the maze ends at.
}

// newCell returns a cell with all four walls up.
func newCell() *Cell {
	return &Cell{
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
	}
}

// HasWall reports whether the cell has a wall in the given direction.
// Unknown directions report a wall, so a cell never leaks a passage that
// was not explicitly carved.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

// removeWall clears the wall in the given direction on this cell only.
// The generator is responsible for clearing the paired wall on the
// neighbor so the shared edge stays symmetric.
func (c *Cell) removeWall(d Direction) {
	switch d {
	case North:
		c.NorthWall = false
	case South:
		c.SouthWall = false
	case East:
		c.EastWall = false
	case West:
		c.WestWall = false
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// ManhattanDistance returns the grid distance between two positions,
// ignoring walls.
func (cp CellPosition) ManhattanDistance(other CellPosition) int {
	dr := cp.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := cp.Col - other.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
