package mh10

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidCatalog is returned when a catalog document cannot be loaded.
var ErrInvalidCatalog = errors.New("mh10: invalid catalog")

// Catalog maps identifier keys to entity definitions. Lookups must be free of
// side effects; the parser never modifies a Catalog.
type Catalog interface {
	Lookup(key int) (*Entity, bool)
}

// MapCatalog is a Catalog backed by a map.
type MapCatalog map[int]*Entity

// Lookup implements Catalog.
func (c MapCatalog) Lookup(key int) (*Entity, bool) {
	e, ok := c[key]
	return e, ok && e != nil
}

// CatalogOption configures catalog loading.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	timeout time.Duration
	eager   bool
}

// WithMatchTimeout sets the evaluation budget for every loaded entity.
func WithMatchTimeout(d time.Duration) CatalogOption {
	return func(c *catalogConfig) {
		c.timeout = d
	}
}

// WithEagerCompile compiles every pattern while loading, so that a bad
// pattern fails the load instead of surfacing later as a 3006 error.
func WithEagerCompile() CatalogOption {
	return func(c *catalogConfig) {
		c.eager = true
	}
}

// entry is one catalog record as it appears in a JSON or YAML document. An
// entry names its identifier with DI ("9N") or gives the key directly.
type entry struct {
	DI          string `yaml:"di"`
	Key         *int   `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`
}

// buildCatalog turns decoded entries into a MapCatalog.
func buildCatalog(entries []entry, opts []CatalogOption) (MapCatalog, error) {
	var cfg catalogConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c := make(MapCatalog, len(entries))
	for i, en := range entries {
		key := KeyUnresolved
		switch {
		case en.Key != nil:
			key = *en.Key
		case en.DI != "":
			key = ResolveKey(en.DI)
		}
		if key < 0 {
			return nil, fmt.Errorf("%w: entry %d (%q): no valid key", ErrInvalidCatalog, i, en.DI)
		}
		if _, dup := c[key]; dup {
			return nil, fmt.Errorf("%w: entry %d (%q): duplicate key %d", ErrInvalidCatalog, i, en.DI, key)
		}

		e := NewEntity(en.Title, en.Description, en.Pattern)
		e.Timeout = cfg.timeout
		if cfg.eager {
			if err := e.Compile(); err != nil {
				return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidCatalog, i, en.DI, err)
			}
		}
		c[key] = e
	}
	return c, nil
}

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     MapCatalog
)

// DefaultCatalog returns the built-in catalog of common MH10.8.2 data
// identifiers. The returned catalog is shared and must not be modified.
func DefaultCatalog() Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalogYAML(defaultCatalogYAML, WithEagerCompile())
		if err != nil {
			panic(fmt.Sprintf("mh10: built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
