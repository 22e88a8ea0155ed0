package mh10

import (
	"errors"
	"fmt"
)

// Code identifies a class of parser error. Codes are stable and part of the
// contract toward callers.
type Code int

const (
	CodeNoData            Code = 3001
	CodeInvalidIdentifier Code = 3002
	CodeInvalidEnvelope   Code = 3003
	CodeNoRecords         Code = 3004
	CodeInvalidValue      Code = 3005
	CodeValueUnevaluable  Code = 3006
	CodeValidationTimeout Code = 3007
	CodeNoIdentifier      Code = 3008
	CodePatternMismatch   Code = 3100
)

// ErrNilCallback is returned by Parse when no callback is supplied.
var ErrNilCallback = errors.New("mh10: nil callback")

// prototypes holds the message and fatal flag for each code. Results are
// built from these, never from the exported sentinels.
var prototypes = map[Code]ParserError{
	CodeNoData:            {Code: CodeNoData, Message: "no data provided", Fatal: true},
	CodeInvalidIdentifier: {Code: CodeInvalidIdentifier, Message: "invalid data identifier"},
	CodeInvalidEnvelope:   {Code: CodeInvalidEnvelope, Message: "invalid envelope format"},
	CodeNoRecords:         {Code: CodeNoRecords, Message: "no records provided", Fatal: true},
	CodeInvalidValue:      {Code: CodeInvalidValue, Message: "value invalid for data identifier"},
	CodeValueUnevaluable:  {Code: CodeValueUnevaluable, Message: "value could not be evaluated"},
	CodeValidationTimeout: {Code: CodeValidationTimeout, Message: "validation timed out", Fatal: true},
	CodeNoIdentifier:      {Code: CodeNoIdentifier, Message: "invalid field: no identifier"},
	CodePatternMismatch:   {Code: CodePatternMismatch, Message: "value does not match the required pattern"},
}

// Sentinel errors, one per code, for use with errors.Is. A *ParserError
// matches the sentinel with the same code. Changing a sentinel has no effect
// on the errors the parser reports.
var (
	ErrNoData            = newError(CodeNoData)
	ErrInvalidIdentifier = newError(CodeInvalidIdentifier)
	ErrInvalidEnvelope   = newError(CodeInvalidEnvelope)
	ErrNoRecords         = newError(CodeNoRecords)
	ErrInvalidValue      = newError(CodeInvalidValue)
	ErrValueUnevaluable  = newError(CodeValueUnevaluable)
	ErrValidationTimeout = newError(CodeValidationTimeout)
	ErrNoIdentifier      = newError(CodeNoIdentifier)
	ErrPatternMismatch   = newError(CodePatternMismatch)
)

// ParserError describes one problem found while parsing. Fatal errors mean
// the operation that produced them cannot usefully continue.
type ParserError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Fatal   bool   `json:"fatal"`
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("mh10 %d: %s", e.Code, e.Message)
}

// Is reports whether target is a *ParserError with the same code.
func (e *ParserError) Is(target error) bool {
	var pe *ParserError
	if !errors.As(target, &pe) {
		return false
	}
	return pe.Code == e.Code
}

// newError returns a fresh error for code.
func newError(code Code) *ParserError {
	e := prototypes[code]
	return &e
}

// newErrorf returns a fresh error for code whose message carries detail.
func newErrorf(code Code, format string, args ...any) *ParserError {
	e := newError(code)
	e.Message += ": " + fmt.Sprintf(format, args...)
	return e
}
