package mh10

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single pattern evaluation when an Entity does
// not set its own Timeout.
const DefaultMatchTimeout = 250 * time.Millisecond

var errNoPattern = errors.New("entity has no pattern")

// Entity describes what a data identifier means and the shape its value must
// have. Pattern is a regular expression (.NET/Perl syntax, see regexp2) that
// must match the whole value.
//
// The compiled matcher is built on first use and cached on the Entity, so an
// Entity must not be copied after first use. Concurrent first use may compile
// the pattern more than once; only one result is kept.
type Entity struct {
	Title       string
	Description string
	Pattern     string

	// Timeout bounds one evaluation of Pattern. Zero means DefaultMatchTimeout.
	// It is read once, when the pattern is first compiled; later changes have
	// no effect. Set it before the Entity is first used.
	Timeout time.Duration

	compiled atomic.Pointer[compiledPattern]
}

type compiledPattern struct {
	re  *regexp2.Regexp
	err error
}

// NewEntity returns an Entity with the given title, description and pattern.
func NewEntity(title, description, pattern string) *Entity {
	return &Entity{Title: title, Description: description, Pattern: pattern}
}

// matcher returns the cached compiled pattern, compiling it if needed.
func (e *Entity) matcher() (*regexp2.Regexp, error) {
	if c := e.compiled.Load(); c != nil {
		return c.re, c.err
	}
	e.compiled.CompareAndSwap(nil, compilePattern(e.Pattern, e.timeout()))
	c := e.compiled.Load()
	return c.re, c.err
}

// Compile forces compilation of the pattern and reports any syntax error.
// Catalog loaders call it to compile matchers eagerly.
func (e *Entity) Compile() error {
	_, err := e.matcher()
	return err
}

func (e *Entity) timeout() time.Duration {
	if e.Timeout > 0 {
		return e.Timeout
	}
	return DefaultMatchTimeout
}

func compilePattern(pattern string, timeout time.Duration) *compiledPattern {
	if pattern == "" {
		return &compiledPattern{err: errNoPattern}
	}
	// Anchor so the pattern has to cover the entire value.
	re, err := regexp2.Compile(`^(?:`+pattern+`)\z`, regexp2.None)
	if err != nil {
		return &compiledPattern{err: err}
	}
	re.MatchTimeout = timeout
	return &compiledPattern{re: re}
}
