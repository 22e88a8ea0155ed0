package mh10

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapResolved(t *testing.T) {
	t.Run("copies inner data and errors forward", func(t *testing.T) {
		inner := newResolved(4000, "D", "0502", "Date", "YYMMDD", 1)
		inner.Errors = []*ParserError{newError(CodeInvalidValue)}

		r := wrapResolved(inner, newError(CodePatternMismatch), 7)

		assert.Equal(t, 4000, r.Key)
		assert.Equal(t, "D", r.Identifier)
		assert.Equal(t, "0502", r.Value)
		assert.Equal(t, "Date", r.Title)
		assert.Equal(t, -1, r.InverseExponent)
		assert.Equal(t, 7, r.Position)
		require.Len(t, r.Errors, 2)
		assert.Equal(t, CodeInvalidValue, r.Errors[0].Code)
		assert.Equal(t, CodePatternMismatch, r.Errors[1].Code)
	})

	t.Run("does not modify the inner result", func(t *testing.T) {
		inner := newResolved(4000, "D", "x", "", "", 0)

		_ = wrapResolved(inner, newError(CodeInvalidValue), 0)

		assert.Empty(t, inner.Errors)
	})

	t.Run("nil inner yields an unresolved placeholder", func(t *testing.T) {
		r := wrapResolved(nil, newError(CodeNoRecords), 3)

		assert.Equal(t, KeyUnresolved, r.Key)
		assert.Equal(t, 3, r.Position)
		assert.True(t, r.IsFatal())
		require.Len(t, r.Errors, 1)
		assert.Equal(t, CodeNoRecords, r.Errors[0].Code)
	})
}

func TestResolvedFlags(t *testing.T) {
	r := newResolved(4000, "D", "050203", "Date", "", 1)
	assert.False(t, r.HasError())
	assert.False(t, r.IsFatal())
	assert.NoError(t, r.Err())

	r = wrapResolved(r, newError(CodeInvalidValue), 1)
	assert.True(t, r.HasError())
	assert.False(t, r.IsFatal())
	assert.True(t, r.Has(CodeInvalidValue))
	assert.False(t, r.Has(CodeValidationTimeout))

	r = wrapResolved(r, newError(CodeValidationTimeout), 1)
	assert.True(t, r.IsFatal())
}

func TestResolvedErrMatchesSentinels(t *testing.T) {
	r := wrapResolved(nil, newErrorf(CodeInvalidValue, "%q", "9N"), 0)
	r.Errors = append(r.Errors, newErrorf(CodePatternMismatch, "%q", "123"))

	err := r.Err()

	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorIs(t, err, ErrPatternMismatch)
	assert.NotErrorIs(t, err, ErrInvalidIdentifier)
	assert.False(t, errors.Is(err, ErrNilCallback))
}

func TestParserError(t *testing.T) {
	e := newErrorf(CodePatternMismatch, "%q", "abc")

	assert.Equal(t, `mh10 3100: value does not match the required pattern: "abc"`, e.Error())
	assert.ErrorIs(t, e, ErrPatternMismatch)
	assert.False(t, e.Fatal)
	assert.True(t, newErrorf(CodeValidationTimeout, "x").Fatal)
	assert.Equal(t, "value does not match the required pattern", ErrPatternMismatch.Message)
}

func TestSentinelChangesDoNotLeakIntoResults(t *testing.T) {
	saved := *ErrNoRecords
	defer func() { *ErrNoRecords = saved }()

	ErrNoRecords.Fatal = false
	ErrNoRecords.Message = "changed"

	results := New().Collect("")

	require.Len(t, results, 1)
	assert.True(t, results[0].IsFatal())
	assert.Equal(t, "no records provided", results[0].Errors[0].Message)
	assert.ErrorIs(t, results[0].Err(), ErrNoRecords)
}
