package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render draws the grid one row per line, the robot as an arrow showing
// where it faces.
func (m *Maze) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.grid {
		for x, c := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(m.glyph(c))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "robot %s, key: %v, door opened: %v\n", m.Robot, m.HasKey, m.HasOpenedDoor)
	return bw.Flush()
}

func (m *Maze) glyph(c Cell) string {
	switch {
	case c.Has(RobotMark):
		return directionGlyphs[m.Robot.Facing]
	case c.Has(Wall):
		return string(WallChar)
	case c.Has(Door):
		return string(DoorChar)
	case c.Has(Exit):
		return string(ExitChar)
	case c.Has(Key):
		return string(KeyChar)
	}
	return string(EmptyChar)
}

func (m *Maze) String() string {
	var b strings.Builder
	m.Render(&b)
	return b.String()
}
