package mh10

// Outcome classifies the result of validating a value against an Entity.
type Outcome int

const (
	// OutcomeMatch means the value has the required shape.
	OutcomeMatch Outcome = iota

	// OutcomeMismatch means the pattern ran and did not match.
	OutcomeMismatch

	// OutcomeUnevaluable means the pattern is missing or does not compile,
	// so the value could not be evaluated at all.
	OutcomeUnevaluable

	// OutcomeTimeout means the pattern exceeded its time budget.
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeUnevaluable:
		return "unevaluable"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Validation is the result of Validate. Errors is empty for OutcomeMatch and
// holds exactly one error otherwise.
type Validation struct {
	Outcome Outcome
	Errors  []*ParserError
}

// Validate applies the entity's pattern to the whole of value.
func Validate(e *Entity, value string) Validation {
	if e == nil {
		return Validation{
			Outcome: OutcomeUnevaluable,
			Errors:  []*ParserError{newErrorf(CodeValueUnevaluable, "no entity")},
		}
	}

	re, err := e.matcher()
	if err != nil {
		return Validation{
			Outcome: OutcomeUnevaluable,
			Errors:  []*ParserError{newErrorf(CodeValueUnevaluable, "%s: %v", e.Title, err)},
		}
	}

	ok, err := re.MatchString(value)
	if err != nil {
		// regexp2 only fails a match when MatchTimeout is exceeded.
		return Validation{
			Outcome: OutcomeTimeout,
			Errors:  []*ParserError{newErrorf(CodeValidationTimeout, "%s after %v", e.Title, re.MatchTimeout)},
		}
	}
	if ok {
		return Validation{Outcome: OutcomeMatch}
	}

	var mismatch *ParserError
	if value == "" {
		mismatch = newErrorf(CodePatternMismatch, "value is empty")
	} else {
		mismatch = newErrorf(CodePatternMismatch, "%q", value)
	}
	return Validation{Outcome: OutcomeMismatch, Errors: []*ParserError{mismatch}}
}
