package mh10

import (
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Parser splits MH10.8.2 data streams into fields and resolves each field's
// data identifier against a Catalog.
//
// Usage:
//  1. Create a parser with New
//  2. Call Parse (or ParseAt, ParseReader) with a callback
//  3. Inspect each Resolved as it is delivered
//
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	catalog     Catalog
	logger      *slog.Logger
	haltOnFatal bool
	hooks       hooks
}

// New creates a Parser with the given options.
//
// By default the parser resolves identifiers against DefaultCatalog and
// discards log output.
//
// Example:
//
//	p := mh10.New(
//	    mh10.WithCatalog(catalog),
//	    mh10.WithLogger(slog.Default()),
//	    mh10.WithOnFatal(func(r *mh10.Resolved) {
//	        metrics.Incr("mh10.fatal")
//	    }),
//	)
func New(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.catalog == nil {
		p.catalog = DefaultCatalog()
	}
	return p
}

// Parse parses input with a parser built from opts. It is shorthand for
// New(opts...).Parse(input, fn).
func Parse(input string, fn func(*Resolved), opts ...Option) error {
	return New(opts...).Parse(input, fn)
}

// Parse splits input into records and fields and calls fn once per field,
// in input order, before returning. Positions start at zero.
//
// Malformed input never produces an error return: every problem is carried
// on a Resolved. The only error is ErrNilCallback.
//
// Example:
//
//	err := p.Parse("[)>\x1e06\x1dD050203\x1d9N12345\x1e\x04", func(r *mh10.Resolved) {
//	    if r.HasError() {
//	        log.Printf("%s at %d: %v", r.Identifier, r.Position, r.Err())
//	        return
//	    }
//	    fmt.Println(r.Title, r.Value)
//	})
func (p *Parser) Parse(input string, fn func(*Resolved)) error {
	return p.ParseAt(input, 0, fn)
}

// ParseAt is like Parse but reports positions relative to offset, for input
// that was cut from a larger document.
func (p *Parser) ParseAt(input string, offset int, fn func(*Resolved)) error {
	if fn == nil {
		return ErrNilCallback
	}

	if strings.TrimSpace(input) == "" {
		p.emit(wrapResolved(nil, newError(CodeNoRecords), offset), fn)
		return nil
	}

	rest, pos := input, offset
	if strings.HasPrefix(rest, MessageHeader) {
		rest = rest[len(MessageHeader):]
		pos += utf8.RuneCountInString(MessageHeader)
	}
	rest = strings.TrimSuffix(rest, string(EOT))

	if strings.TrimSpace(rest) == "" {
		p.emit(wrapResolved(nil, newError(CodeNoRecords), pos), fn)
		return nil
	}

	p.splitRecords(rest, pos, fn)
	return nil
}

// ParseReader reads r to the end and parses the content. A read failure is
// delivered as a single fatal result with code CodeNoData.
func (p *Parser) ParseReader(r io.Reader, fn func(*Resolved)) error {
	if fn == nil {
		return ErrNilCallback
	}
	data, err := io.ReadAll(r)
	if err != nil {
		p.emit(wrapResolved(nil, newErrorf(CodeNoData, "%v", err), 0), fn)
		return nil
	}
	return p.Parse(string(data), fn)
}

// Collect parses input and returns every result in order.
func (p *Parser) Collect(input string) []*Resolved {
	var out []*Resolved
	_ = p.Parse(input, func(r *Resolved) {
		out = append(out, r)
	})
	return out
}

// Resolve resolves a single field: token is the data identifier, value the
// rest of the field and pos the position reported on the result. It always
// returns a non-nil result.
func (p *Parser) Resolve(value, token string, pos int) *Resolved {
	if token == "" {
		return wrapResolved(newResolved(KeyUnresolved, "", value, "", "", pos), newError(CodeNoIdentifier), pos)
	}

	key := ResolveKey(token)
	if key == KeyUnresolved {
		return wrapResolved(
			newResolved(KeyUnresolved, token, value, "", "", pos),
			newErrorf(CodeInvalidIdentifier, "%q", token),
			pos,
		)
	}

	e, ok := p.catalog.Lookup(key)
	if !ok {
		return wrapResolved(
			newResolved(KeyUnresolved, token, value, "", "", pos),
			newErrorf(CodeInvalidIdentifier, "%q (key %d) is not in the catalog", token, key),
			pos,
		)
	}

	r := newResolved(key, token, value, e.Title, e.Description, pos)
	v := Validate(e, value)
	switch v.Outcome {
	case OutcomeMatch:
		return r
	case OutcomeMismatch:
		r = wrapResolved(r, newErrorf(CodeInvalidValue, "%q", token), pos)
		r.Errors = append(r.Errors, v.Errors...)
		return r
	default:
		return wrapResolved(r, v.Errors[0], pos)
	}
}

// emit runs the hooks for r and delivers it to fn. It reports whether parsing
// should continue.
func (p *Parser) emit(r *Resolved, fn func(*Resolved)) bool {
	if r.HasError() {
		for _, h := range p.hooks.onFieldError {
			h(r)
		}
	}

	fatal := r.IsFatal()
	if fatal {
		p.logger.Warn("mh10: fatal parse result",
			slog.String("identifier", r.Identifier),
			slog.Int("position", r.Position),
			slog.Any("error", r.Err()),
		)
		for _, h := range p.hooks.onFatal {
			h(r)
		}
	}

	fn(r)
	return !fatal || !p.haltOnFatal
}
