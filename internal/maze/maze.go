// Package maze is the world model driven by RobotSpeak programs: a bordered
// grid holding walls, keys, a door, an exit and the robot.
package maze

import (
	"fmt"
	"strings"
)

// Symbol is one thing that can occupy a cell.
type Symbol uint8

const (
	Wall Symbol = 1 << iota
	Key
	Door
	Exit
	RobotMark
)

const (
	WallChar  = '*'
	EmptyChar = '.'
	KeyChar   = 'K'
	DoorChar  = 'D'
	ExitChar  = 'E'
	RobotChar = 'R'
)

var symbolChars = []struct {
	sym Symbol
	ch  byte
}{
	{Wall, WallChar},
	{Key, KeyChar},
	{Door, DoorChar},
	{Exit, ExitChar},
	{RobotMark, RobotChar},
}

// Cell is the set of symbols stacked on one grid square. The zero value is
// an empty floor cell.
type Cell uint8

func (c Cell) Has(s Symbol) bool { return c&Cell(s) != 0 }

func (c Cell) With(s Symbol) Cell { return c | Cell(s) }

func (c Cell) Without(s Symbol) Cell { return c &^ Cell(s) }

func (c Cell) String() string {
	if c == 0 {
		return string(EmptyChar)
	}
	var b strings.Builder
	for _, sc := range symbolChars {
		if c.Has(sc.sym) {
			b.WriteByte(sc.ch)
		}
	}
	return b.String()
}

// ValidationError lists every problem found while building a maze.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid maze: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) add(format string, args ...interface{}) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, args...))
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

// Maze is the grid plus the robot and what it carries. The grid is
// (Width+2) x (Length+2); the outer ring is wall.
type Maze struct {
	Width  int
	Length int
	Name   string

	grid  [][]Cell
	Robot Robot

	Keys       []Point
	CorrectKey Point
	Door       Point
	Exit       Point

	HasKey        bool
	HasCorrectKey bool
	HasOpenedDoor bool
}

// New builds an open room with one key, one door and one exit.
func New(width, length int, key, door, exit, robot Point, facing Direction) (*Maze, error) {
	var verr ValidationError
	if width < 1 || length < 1 {
		verr.add("width and length must be at least 1")
		return nil, &verr
	}
	m := blank(width, length)
	for _, loc := range []struct {
		name string
		p    Point
	}{{"key", key}, {"door", door}, {"exit", exit}, {"robot", robot}} {
		if loc.p.X < 1 || loc.p.X > width {
			verr.add("%s x-coordinate %d must be between 1 and %d", loc.name, loc.p.X, width)
		}
		if loc.p.Y < 1 || loc.p.Y > length {
			verr.add("%s y-coordinate %d must be between 1 and %d", loc.name, loc.p.Y, length)
		}
	}
	if facing < North || facing > East {
		verr.add("invalid robot direction %d", int(facing))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	m.Keys = []Point{key}
	m.CorrectKey = key
	m.Door, m.Exit = door, exit
	m.Robot = Robot{Location: robot, Facing: facing}
	m.place(key, Key)
	m.place(door, Door)
	m.place(exit, Exit)
	m.place(robot, RobotMark)
	return m, nil
}

// FromRows builds a maze from a bordered map drawn with the characters
// '*' '.' 'K' 'D' 'E' 'R'. Interior walls are allowed, but the correct key,
// the door and the exit must be reachable from the robot. correctKey names
// the key that opens the door and is required when the map has several keys.
func FromRows(rows []string, facing Direction, correctKey *Point) (*Maze, error) {
	var verr ValidationError
	if len(rows) < 3 {
		verr.add("map needs at least 3 rows, got %d", len(rows))
		return nil, &verr
	}
	cols := len(rows[0])
	if cols < 3 {
		verr.add("map needs at least 3 columns, got %d", cols)
		return nil, &verr
	}
	m := blank(cols-2, len(rows)-2)

	var robots, doors, exits []Point
	for y, row := range rows {
		if len(row) != cols {
			verr.add("row %d has %d columns, want %d", y, len(row), cols)
			continue
		}
		for x := 0; x < cols; x++ {
			p := Point{x, y}
			border := x == 0 || y == 0 || x == cols-1 || y == len(rows)-1
			ch := row[x]
			if border && ch != WallChar {
				verr.add("border cell %s must be wall, got %q", p, ch)
				continue
			}
			switch ch {
			case WallChar:
				m.grid[y][x] = Cell(Wall)
			case EmptyChar:
			case KeyChar:
				m.Keys = append(m.Keys, p)
				m.place(p, Key)
			case DoorChar:
				doors = append(doors, p)
				m.place(p, Door)
			case ExitChar:
				exits = append(exits, p)
				m.place(p, Exit)
			case RobotChar:
				robots = append(robots, p)
				m.place(p, RobotMark)
			default:
				verr.add("unknown map symbol %q at %s", ch, p)
			}
		}
	}

	if len(robots) != 1 {
		verr.add("map needs exactly one robot, got %d", len(robots))
	}
	if len(doors) != 1 {
		verr.add("map needs exactly one door, got %d", len(doors))
	}
	if len(exits) != 1 {
		verr.add("map needs exactly one exit, got %d", len(exits))
	}
	switch {
	case len(m.Keys) == 0:
		verr.add("map needs at least one key")
	case correctKey != nil:
		if !m.isKey(*correctKey) {
			verr.add("correct key %s is not a key location", *correctKey)
		}
		m.CorrectKey = *correctKey
	case len(m.Keys) == 1:
		m.CorrectKey = m.Keys[0]
	default:
		verr.add("map has %d keys but no correct key", len(m.Keys))
	}
	if facing < North || facing > East {
		verr.add("invalid robot direction %d", int(facing))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	m.Robot = Robot{Location: robots[0], Facing: facing}
	m.Door, m.Exit = doors[0], exits[0]
	m.checkReachable(&verr)
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return m, nil
}

func blank(width, length int) *Maze {
	grid := make([][]Cell, length+2)
	for y := range grid {
		grid[y] = make([]Cell, width+2)
		for x := range grid[y] {
			if x == 0 || y == 0 || x == width+1 || y == length+1 {
				grid[y][x] = Cell(Wall)
			}
		}
	}
	return &Maze{Width: width, Length: length, grid: grid}
}

func (m *Maze) place(p Point, s Symbol) {
	m.grid[p.Y][p.X] = m.grid[p.Y][p.X].With(s)
}

func (m *Maze) remove(p Point, s Symbol) {
	m.grid[p.Y][p.X] = m.grid[p.Y][p.X].Without(s)
}

func (m *Maze) isKey(p Point) bool {
	for _, k := range m.Keys {
		if k == p {
			return true
		}
	}
	return false
}

// CellAt returns the cell at p; anything outside the grid reads as wall.
func (m *Maze) CellAt(p Point) Cell {
	if p.Y < 0 || p.Y >= len(m.grid) || p.X < 0 || p.X >= len(m.grid[p.Y]) {
		return Cell(Wall)
	}
	return m.grid[p.Y][p.X]
}

// MultipleKeys reports whether only one of several keys opens the door.
func (m *Maze) MultipleKeys() bool {
	return len(m.Keys) > 1
}
