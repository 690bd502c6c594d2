package interpreter

import (
	"robotspeak/internal/maze"
	"robotspeak/internal/token"
)

// Loader builds the maze selected by LOAD.
type Loader interface {
	Load(id string) (*maze.Maze, error)
}

type LoaderFunc func(id string) (*maze.Maze, error)

func (f LoaderFunc) Load(id string) (*maze.Maze, error) { return f(id) }

// Event describes one robot action. Err is the rejected action's error, if
// any.
type Event struct {
	Line   int
	Action token.Kind
	Maze   *maze.Maze
	Err    error
}

type Config struct {
	// Loader defaults to the built-in preset catalog.
	Loader Loader
	Logger *Logger
	// MaxIterations caps the iterations of any single WHILE loop; 0 means
	// no cap.
	MaxIterations int
	// Observer is called after every robot action.
	Observer func(Event)
}

// Context is the state of one run. Only the executor mutates it.

type Context struct {
	Env  *Environment
	Maze *maze.Maze

	cfg      Config
	prog     *Program
	line     int
	executed int
	blocks   map[int]Block
	exprs    map[int]*Expr
	warnings []error
}

func newContext(prog *Program, cfg Config) *Context {
	if cfg.Loader == nil {
		cfg.Loader = maze.DefaultCatalog()
	}
	if cfg.Logger == nil {
		cfg.Logger = Discard()
	}
	return &Context{
		Env:    NewEnvironment(),
		cfg:    cfg,
		prog:   prog,
		blocks: make(map[int]Block),
		exprs:  make(map[int]*Expr),
	}
}

// Result summarizes a finished run.
type Result struct {
	// Halted is set when the program ended through its final END or by
	// opening the way out.
	Halted   bool
	Solved   bool
	Maze     *maze.Maze
	Env      *Environment
	Warnings []error
	Executed int
}

func (c *Context) result(halted bool) *Result {
	r := &Result{
		Halted:   halted,
		Maze:     c.Maze,
		Env:      c.Env,
		Warnings: c.warnings,
		Executed: c.executed,
	}
	if c.Maze != nil {
		r.Solved = c.Maze.IsSolved()
	}
	return r
}
