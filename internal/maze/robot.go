package maze

import (
	"fmt"
	"strings"
)

// Direction is a compass heading. The order is the turn-left cycle.
type Direction int

const (
	North Direction = iota
	West
	South
	East
)

var directionNames = [...]string{"north", "west", "south", "east"}

// y grows downwards, row 0 is the top wall
var directionOffsets = [...]Point{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

var directionGlyphs = [...]string{"▲", "◄", "▼", "►"}

func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("direction must be one of: north, west, south, east. Got: %s", s)
}

func (d Direction) String() string {
	if d < North || d > East {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset is the unit step taken when moving in direction d.
func (d Direction) Offset() Point {
	return directionOffsets[d]
}

func (d Direction) Left() Direction {
	return (d + 1) % 4
}

func (d Direction) Right() Direction {
	return (d + 3) % 4
}

// Point is a grid coordinate. Interior cells run from 1 to width/length.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Robot is the pose of the robot inside the maze.
type Robot struct {
	Location Point
	Facing   Direction
}

// Front is the cell the robot would enter by moving forward.
func (r Robot) Front() Point {
	return r.Location.Add(r.Facing.Offset())
}

func (r Robot) String() string {
	return fmt.Sprintf("%s facing %s", r.Location, r.Facing)
}
