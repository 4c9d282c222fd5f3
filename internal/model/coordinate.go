package model

import "fmt"

// Coordinate identifies a cell on the board
type Coordinate struct {
	Col int `json:"col"` // 0-indexed from left
	Row int `json:"row"` // 0-indexed from top
}

// At is shorthand for Coordinate{Col: col, Row: row}
func At(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Neighbors returns the four orthogonal neighbours (left, right, up, down).
// Some may be off the board.
func (c Coordinate) Neighbors() [4]Coordinate {
	return [4]Coordinate{
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col, Row: c.Row - 1},
		{Col: c.Col, Row: c.Row + 1},
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Axis is the direction a placement runs in
type Axis string

const (
	AxisHorizontal Axis = "horizontal" // shared row, varying column
	AxisVertical   Axis = "vertical"   // shared column, varying row
)

// Along returns the coordinate component that varies along the axis
func (a Axis) Along(c Coordinate) int {
	if a == AxisVertical {
		return c.Row
	}
	return c.Col
}

// Point builds the coordinate at position v along the axis, holding the
// other component from fixed
func (a Axis) Point(fixed Coordinate, v int) Coordinate {
	if a == AxisVertical {
		return Coordinate{Col: fixed.Col, Row: v}
	}
	return Coordinate{Col: v, Row: fixed.Row}
}
