package mh10

import "log/slog"

// OnRecordFunc is called before the fields of a record are split. pos is the
// character offset of the record content (after any envelope header).
type OnRecordFunc func(pos int, record string)

// OnFieldErrorFunc is called for every result that carries at least one
// error, before the result is passed to the Parse callback.
type OnFieldErrorFunc func(r *Resolved)

// OnFatalFunc is called for every result that carries a fatal error, after
// any OnFieldError hooks.
type OnFatalFunc func(r *Resolved)

// hooks holds all configured hook functions.
type hooks struct {
	onRecord     []OnRecordFunc
	onFieldError []OnFieldErrorFunc
	onFatal      []OnFatalFunc
}

// Option configures a Parser.
type Option func(*Parser)

// WithCatalog sets the catalog used to resolve identifiers. Without it the
// parser uses DefaultCatalog.
func WithCatalog(c Catalog) Option {
	return func(p *Parser) {
		p.catalog = c
	}
}

// WithLogger sets the structured logger. Envelope format errors are logged
// at debug level and fatal results at warn level. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithHaltOnFatal stops parsing after the first fatal result has been
// delivered. By default parsing continues with the next field.
func WithHaltOnFatal() Option {
	return func(p *Parser) {
		p.haltOnFatal = true
	}
}

// WithOnRecord adds a hook called for each non-blank record.
// Multiple hooks are called in order.
//
// Example:
//
//	mh10.WithOnRecord(func(pos int, record string) {
//	    metrics.Incr("mh10.records")
//	})
func WithOnRecord(fn OnRecordFunc) Option {
	return func(p *Parser) {
		p.hooks.onRecord = append(p.hooks.onRecord, fn)
	}
}

// WithOnFieldError adds a hook called for each result carrying errors.
// Multiple hooks are called in order.
//
// Example:
//
//	mh10.WithOnFieldError(func(r *mh10.Resolved) {
//	    logger.Warn("bad field", "di", r.Identifier, "error", r.Err())
//	})
func WithOnFieldError(fn OnFieldErrorFunc) Option {
	return func(p *Parser) {
		p.hooks.onFieldError = append(p.hooks.onFieldError, fn)
	}
}

// WithOnFatal adds a hook called for each result carrying a fatal error.
// Multiple hooks are called in order.
func WithOnFatal(fn OnFatalFunc) Option {
	return func(p *Parser) {
		p.hooks.onFatal = append(p.hooks.onFatal, fn)
	}
}
