package maze

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresets []byte

// Variant is one concrete map of a preset.
type Variant struct {
	Name       string   `yaml:"name"`
	Facing     string   `yaml:"facing"`
	CorrectKey []int    `yaml:"correct_key,omitempty"`
	Rows       []string `yaml:"rows"`
}

// Build turns the variant into a fresh maze.
func (v Variant) Build() (*Maze, error) {
	facing, err := ParseDirection(v.Facing)
	if err != nil {
		return nil, &ValidationError{Issues: []string{err.Error()}}
	}
	var correct *Point
	if v.CorrectKey != nil {
		if len(v.CorrectKey) != 2 {
			return nil, &ValidationError{Issues: []string{"correct_key must be a list of 2 integers"}}
		}
		correct = &Point{v.CorrectKey[0], v.CorrectKey[1]}
	}
	m, err := FromRows(v.Rows, facing, correct)
	if err != nil {
		return nil, err
	}
	m.Name = v.Name
	return m, nil
}

type Preset struct {
	Name     string    `yaml:"name"`
	Variants []Variant `yaml:"variants"`
}

type catalogFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Catalog maps LOAD ids to presets and picks a variant on every load.
type Catalog struct {
	presets map[string]Preset
	rng     *rand.Rand
	pinned  int
}

// DefaultCatalog returns the presets compiled into the binary.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(bytes.NewReader(defaultPresets))
	if err != nil {
		panic(fmt.Sprintf("maze: embedded presets: %v", err))
	}
	return c
}

// ReadCatalogFile loads presets from a YAML file on disk.
func ReadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("presets: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("presets: %s: %w", path, err)
	}
	return c, nil
}

func ParseCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw catalogFile
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("preset catalog is empty")
		}
		return nil, fmt.Errorf("parse preset catalog: %w", err)
	}
	if len(raw.Presets) == 0 {
		return nil, fmt.Errorf("preset catalog defines no presets")
	}
	for id, p := range raw.Presets {
		if len(p.Variants) == 0 {
			return nil, fmt.Errorf("preset %q has no variants", id)
		}
	}
	return &Catalog{
		presets: raw.Presets,
		rng:     rand.New(rand.NewSource(1)),
		pinned:  -1,
	}, nil
}

func (c *Catalog) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Pin makes every load use variant n (0-based) instead of a random one.
// A negative n restores random selection.
func (c *Catalog) Pin(n int) {
	c.pinned = n
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.presets))
	for id := range c.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Catalog) Preset(id string) (Preset, bool) {
	p, ok := c.presets[id]
	return p, ok
}

// Load builds a maze for preset id.
func (c *Catalog) Load(id string) (*Maze, error) {
	p, ok := c.presets[id]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", id)
	}
	n := c.pinned
	if n < 0 {
		n = c.rng.Intn(len(p.Variants))
	}
	if n >= len(p.Variants) {
		return nil, fmt.Errorf("preset %q has %d variants, no variant %d", id, len(p.Variants), n)
	}
	return p.Variants[n].Build()
}
