package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"robotspeak/internal/diag"
	"robotspeak/internal/interpreter"
	"robotspeak/internal/maze"
)

type options struct {
	presets       string
	variant       int
	seed          int64
	maxIterations int
	trace         bool
	delay         time.Duration
	verbose       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.presets, "presets", "", "YAML preset catalog to use instead of the built-in one")
	flag.IntVar(&opts.variant, "variant", -1, "always load this variant of a preset (0-based), random when negative")
	flag.Int64Var(&opts.seed, "seed", 0, "seed for picking preset variants, 0 uses the clock")
	flag.IntVar(&opts.maxIterations, "max-iterations", 0, "fail a WHILE loop after this many iterations, 0 for no cap")
	flag.BoolVar(&opts.trace, "trace", false, "draw the maze after every robot action")
	flag.DurationVar(&opts.delay, "delay", 300*time.Millisecond, "pause between traced steps")
	flag.BoolVar(&opts.verbose, "v", false, "log every executed line")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(run(flag.Arg(0), opts))
}

func run(path string, opts options) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read program: %v\n", err)
		return 1
	}
	if opts.delay < 0 {
		fmt.Fprintln(os.Stderr, "delay must be non-negative")
		return 1
	}

	catalog, err := loadCatalog(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := interpreter.NewLogger(os.Stderr, opts.verbose)
	cfg := interpreter.Config{
		Loader:        catalog,
		Logger:        logger,
		MaxIterations: opts.maxIterations,
	}
	if opts.trace {
		cfg.Observer = tracer(opts.delay)
	}

	fmt.Printf("--- Starting %s ---\n", path)
	res, err := interpreter.Run(string(src), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, diag.Snippet(err, string(src)))
		return 1
	}
	report(res)
	if opts.verbose {
		for _, name := range res.Env.Names() {
			v, _ := res.Env.Get(name)
			logger.Info("%s = %v", name, v)
		}
	}
	fmt.Println("--- Program finished successfully. ---")
	return 0
}

func loadCatalog(opts options) (*maze.Catalog, error) {
	catalog := maze.DefaultCatalog()
	if opts.presets != "" {
		var err error
		if catalog, err = maze.ReadCatalogFile(opts.presets); err != nil {
			return nil, err
		}
	}
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	catalog.Seed(seed)
	catalog.Pin(opts.variant)
	return catalog, nil
}

// tracer redraws the maze after each action. The screen is only cleared
// when stdout is a terminal.
func tracer(delay time.Duration) func(interpreter.Event) {
	clearScreen := term.IsTerminal(int(os.Stdout.Fd()))
	return func(ev interpreter.Event) {
		if clearScreen {
			fmt.Print("\033[2J\033[H")
		}
		fmt.Printf("line %d: %s\n", ev.Line, ev.Action)
		if ev.Err != nil {
			fmt.Printf("  rejected: %v\n", ev.Err)
		}
		ev.Maze.Render(os.Stdout)
		time.Sleep(delay)
	}
}

func report(res *interpreter.Result) {
	if res.Maze == nil {
		return
	}
	m := res.Maze
	fmt.Printf("maze: %s\n", m.Name)
	fmt.Printf("robot final position: %s\n", m.Robot)
	fmt.Printf("has key: %v, door opened: %v\n", m.HasKey, m.HasOpenedDoor)
	if res.Solved {
		fmt.Println("robot escaped")
	}
	if n := len(res.Warnings); n > 0 {
		fmt.Printf("%d action(s) rejected\n", n)
	}
}
