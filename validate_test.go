package mh10

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ValidateSuite struct {
	suite.Suite
	date *Entity
}

func (s *ValidateSuite) SetupTest() {
	s.date = NewEntity("Date", "Date, format YYMMDD", `\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])`)
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) TestMatch() {
	v := Validate(s.date, "050203")

	s.Assert().Equal(OutcomeMatch, v.Outcome)
	s.Assert().Empty(v.Errors)
}

func (s *ValidateSuite) TestPatternMustCoverWholeValue() {
	v := Validate(s.date, "0502031")

	s.Assert().Equal(OutcomeMismatch, v.Outcome)
	s.Require().Len(v.Errors, 1)
	s.Assert().Equal(CodePatternMismatch, v.Errors[0].Code)
	s.Assert().False(v.Errors[0].Fatal)
	s.Assert().Contains(v.Errors[0].Message, `"0502031"`)
}

func (s *ValidateSuite) TestEmptyValueMismatch() {
	v := Validate(s.date, "")

	s.Assert().Equal(OutcomeMismatch, v.Outcome)
	s.Require().Len(v.Errors, 1)
	s.Assert().Contains(v.Errors[0].Message, "value is empty")
}

func (s *ValidateSuite) TestMissingPatternIsUnevaluable() {
	v := Validate(NewEntity("Nothing", "", ""), "x")

	s.Assert().Equal(OutcomeUnevaluable, v.Outcome)
	s.Require().Len(v.Errors, 1)
	s.Assert().Equal(CodeValueUnevaluable, v.Errors[0].Code)
	s.Assert().False(v.Errors[0].Fatal)
}

func (s *ValidateSuite) TestBadPatternIsUnevaluable() {
	e := NewEntity("Broken", "", "(")

	s.Assert().Error(e.Compile())
	s.Assert().Equal(OutcomeUnevaluable, Validate(e, "x").Outcome)
}

func (s *ValidateSuite) TestNilEntityIsUnevaluable() {
	s.Assert().Equal(OutcomeUnevaluable, Validate(nil, "x").Outcome)
}

func (s *ValidateSuite) TestTimeoutIsFatal() {
	e := NewEntity("Backtracking", "", `(a+)+b`)
	e.Timeout = time.Millisecond

	v := Validate(e, strings.Repeat("a", 64)+"c")

	s.Assert().Equal(OutcomeTimeout, v.Outcome)
	s.Require().Len(v.Errors, 1)
	s.Assert().Equal(CodeValidationTimeout, v.Errors[0].Code)
	s.Assert().True(v.Errors[0].Fatal)
}

func (s *ValidateSuite) TestMatcherIsCompiledOnce() {
	s.Require().NoError(s.date.Compile())
	first := s.date.compiled.Load()

	Validate(s.date, "050203")

	s.Assert().Same(first, s.date.compiled.Load())
}

func (s *ValidateSuite) TestConcurrentFirstUse() {
	e := NewEntity("PPN", "", `[0-9A-Za-z]{5,22}`)

	var wg sync.WaitGroup
	outcomes := make([]Outcome, 16)
	for i := range outcomes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = Validate(e, "12345").Outcome
		}()
	}
	wg.Wait()

	for _, o := range outcomes {
		s.Assert().Equal(OutcomeMatch, o)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeMatch:       "match",
		OutcomeMismatch:    "mismatch",
		OutcomeUnevaluable: "unevaluable",
		OutcomeTimeout:     "timeout",
		Outcome(42):        "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}

func (s *ValidateSuite) TestTimeoutIsFixedAtFirstUse() {
	e := NewEntity("Backtracking", "", `(a+)+b`)
	e.Timeout = time.Millisecond
	s.Require().NoError(e.Compile())

	e.Timeout = time.Hour
	v := Validate(e, strings.Repeat("a", 64)+"c")

	s.Assert().Equal(OutcomeTimeout, v.Outcome)
	s.Require().Len(v.Errors, 1)
	s.Assert().Contains(v.Errors[0].Message, "after 1ms")
}
