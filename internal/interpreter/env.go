package interpreter

import (
	"fmt"
	"sort"
)

// Environment holds the program's boolean variables. There is one flat
// scope for the whole run.

type Environment struct {
	vars map[string]bool
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]bool)}
}

func (e *Environment) Get(name string) (bool, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val bool) {
	e.vars[name] = val
}

func (e *Environment) Len() int {
	return len(e.vars)
}

func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) String() string {
	return fmt.Sprint(e.vars)
}
