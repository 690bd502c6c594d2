package interpreter

import (
	"errors"

	"robotspeak/internal/diag"
	"robotspeak/internal/maze"
	"robotspeak/internal/token"
)

func (c *Context) world(what token.Kind) (*maze.Maze, error) {
	if c.Maze == nil {
		return nil, diag.Runtime(c.line, "%s used before a maze was loaded", what)
	}
	return c.Maze, nil
}

// sense reads one of the robot's sensors.
func (c *Context) sense(kind token.Kind) (bool, error) {
	if !kind.IsSensor() {
		return false, diag.Syntax(c.line, "%s is not a sensor", kind)
	}
	m, err := c.world(kind)
	if err != nil {
		return false, err
	}
	switch kind {
	case token.FrontIsClear:
		return m.IsFrontClear(), nil
	case token.OnKey:
		return m.OnKey(), nil
	case token.AtDoor:
		return m.AtDoor(), nil
	}
	return m.AtExit(), nil
}

// act performs a robot action. A rejected action is logged and recorded as
// a warning; it never stops the run. solved reports a successful OPEN_DOOR
// that leaves the maze solved.
func (c *Context) act(kind token.Kind) (solved bool, err error) {
	m, err := c.world(kind)
	if err != nil {
		return false, err
	}
	var aerr error
	switch kind {
	case token.MoveForward:
		aerr = m.MoveForward()
	case token.TurnLeft:
		m.TurnLeft()
	case token.TurnRight:
		m.TurnRight()
	case token.PickKey:
		aerr = m.PickKey()
	case token.ThrowAwayKey:
		m.ThrowAwayKey()
	case token.OpenDoor:
		aerr = m.OpenDoor()
		solved = aerr == nil && m.IsSolved()
	default:
		return false, diag.Syntax(c.line, "%s is not an action", kind)
	}

	if c.cfg.Observer != nil {
		c.cfg.Observer(Event{Line: c.line, Action: kind, Maze: m, Err: aerr})
	}
	var actionErr *maze.ActionError
	if errors.As(aerr, &actionErr) {
		c.warnings = append(c.warnings, aerr)
		c.cfg.Logger.Warn("line %d: %v", c.line, aerr)
		return false, nil
	}
	if aerr != nil {
		return false, aerr
	}
	c.cfg.Logger.Debug("line %d: %s -> robot %s", c.line, kind, m.Robot)
	return solved, nil
}
