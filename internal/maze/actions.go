package maze

import (
	"errors"
	"fmt"
)

var (
	ErrFrontBlocked = errors.New("front is not clear")
	ErrNotOnKey     = errors.New("not on a key")
	ErrNotAtDoor    = errors.New("not at the door")
	ErrNoKey        = errors.New("no key")
	ErrWrongKey     = errors.New("wrong key, door does not open")
)

// ActionError reports a robot action that is illegal in the current state.
// The world is left unchanged.
type ActionError struct {
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func fail(action string, err error) error {
	return &ActionError{Action: action, Err: err}
}

func (m *Maze) here() Cell {
	return m.CellAt(m.Robot.Location)
}

func (m *Maze) IsFrontClear() bool {
	return !m.CellAt(m.Robot.Front()).Has(Wall)
}

func (m *Maze) OnKey() bool  { return m.here().Has(Key) }
func (m *Maze) AtDoor() bool { return m.here().Has(Door) }
func (m *Maze) AtExit() bool { return m.here().Has(Exit) }

func (m *Maze) MoveForward() error {
	if !m.IsFrontClear() {
		return fail("MOVE_FORWARD", ErrFrontBlocked)
	}
	m.remove(m.Robot.Location, RobotMark)
	m.Robot.Location = m.Robot.Front()
	m.place(m.Robot.Location, RobotMark)
	return nil
}

func (m *Maze) TurnLeft() {
	m.Robot.Facing = m.Robot.Facing.Left()
}

func (m *Maze) TurnRight() {
	m.Robot.Facing = m.Robot.Facing.Right()
}

// PickKey takes the key under the robot. The key stays on the map, so a
// thrown away key can be picked up again.
func (m *Maze) PickKey() error {
	if !m.OnKey() {
		return fail("PICK_KEY", ErrNotOnKey)
	}
	m.HasKey = true
	if m.Robot.Location == m.CorrectKey {
		m.HasCorrectKey = true
	}
	return nil
}

func (m *Maze) ThrowAwayKey() {
	m.HasKey = false
	m.HasCorrectKey = false
}

// OpenDoor always succeeds on the exit cell. On the door cell it needs a
// key, and the correct one when the maze has several.
func (m *Maze) OpenDoor() error {
	if m.AtExit() {
		m.HasOpenedDoor = true
		return nil
	}
	if !m.AtDoor() {
		return fail("OPEN_DOOR", ErrNotAtDoor)
	}
	if !m.HasKey {
		return fail("OPEN_DOOR", ErrNoKey)
	}
	if m.MultipleKeys() && !m.HasCorrectKey {
		return fail("OPEN_DOOR", ErrWrongKey)
	}
	m.HasOpenedDoor = true
	return nil
}

func (m *Maze) IsSolved() bool {
	return m.AtExit() || m.HasOpenedDoor
}
