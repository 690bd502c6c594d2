package maze

var steps = []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// IsFree reports whether the robot may stand on p.
func (m *Maze) IsFree(p Point) bool {
	return !m.CellAt(p).Has(Wall)
}

// FindPath returns a shortest walk from one cell to another through free
// cells, both ends included. Keys and the door do not block the way.
func (m *Maze) FindPath(from, to Point) ([]Point, bool) {
	type node struct {
		p    Point
		path []Point
	}
	if !m.IsFree(from) || !m.IsFree(to) {
		return nil, false
	}
	visited := make(map[Point]bool)
	q := []node{{p: from, path: []Point{from}}}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		if cur.p == to {
			return cur.path, true
		}
		if visited[cur.p] {
			continue
		}
		visited[cur.p] = true
		for _, st := range steps {
			next := cur.p.Add(st)
			if m.IsFree(next) && !visited[next] {
				np := append(append([]Point{}, cur.path...), next)
				q = append(q, node{next, np})
			}
		}
	}
	return nil, false
}

// checkReachable requires the correct key, the door and the exit to be
// reachable from the robot's start. The key to door leg always goes back
// through the start, so three searches cover it.
func (m *Maze) checkReachable(verr *ValidationError) {
	for _, goal := range []struct {
		name string
		p    Point
	}{{"correct key", m.CorrectKey}, {"door", m.Door}, {"exit", m.Exit}} {
		if _, ok := m.FindPath(m.Robot.Location, goal.p); !ok {
			verr.add("%s at %s is not reachable from the robot at %s", goal.name, goal.p, m.Robot.Location)
		}
	}
}
