package mh10

import "errors"

// Resolved is the outcome of parsing one field: the identifier, its value,
// the entity it resolved to (if any) and every error found along the way.
//
// Position is a character offset into the original input. For fields with a
// recognized identifier it points just past the identifier, at the value.
type Resolved struct {
	Key        int    `json:"key"`
	Identifier string `json:"identifier"`

	// InverseExponent is reserved and always -1.
	InverseExponent int `json:"inverse_exponent"`

	Value       string         `json:"value"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Position    int            `json:"position"`
	Errors      []*ParserError `json:"errors,omitempty"`
}

func newResolved(key int, identifier, value, title, description string, pos int) *Resolved {
	return &Resolved{
		Key:             key,
		Identifier:      identifier,
		InverseExponent: -1,
		Value:           value,
		Title:           title,
		Description:     description,
		Position:        pos,
	}
}

// wrapResolved returns a copy of inner with err appended to its errors. A nil
// inner yields an unresolved placeholder at pos.
func wrapResolved(inner *Resolved, err *ParserError, pos int) *Resolved {
	if inner == nil {
		r := newResolved(KeyUnresolved, "", "", "", "", pos)
		r.Errors = []*ParserError{err}
		return r
	}
	r := *inner
	r.Position = pos
	r.Errors = make([]*ParserError, 0, len(inner.Errors)+1)
	r.Errors = append(r.Errors, inner.Errors...)
	r.Errors = append(r.Errors, err)
	return &r
}

// HasError reports whether any error was recorded.
func (r *Resolved) HasError() bool {
	return len(r.Errors) > 0
}

// IsFatal reports whether any recorded error is fatal.
func (r *Resolved) IsFatal() bool {
	for _, e := range r.Errors {
		if e.Fatal {
			return true
		}
	}
	return false
}

// Err joins the recorded errors, or returns nil when there are none. The
// result matches the code sentinels under errors.Is:
//
//	if errors.Is(r.Err(), mh10.ErrPatternMismatch) { ... }
func (r *Resolved) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Has reports whether an error with the given code was recorded.
func (r *Resolved) Has(code Code) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
