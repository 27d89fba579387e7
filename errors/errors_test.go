package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		class ErrorClass
		want  string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.class.String())
	}
}

func TestWrapConvention(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, "Parser", "Parse", "card parsing")

	require.Error(t, err)
	assert.Equal(t, "Parser.Parse: card parsing failed: boom", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestWrapNilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "C", "M", "a"))
	assert.NoError(t, WrapInvalid(nil, "C", "M", "a"))
	assert.NoError(t, WrapFatal(nil, "C", "M", "a"))
}

func TestWrapInvalidClassification(t *testing.T) {
	err := WrapInvalid(ErrMalformedJSON, "Parser", "Parse", "syntax check")

	assert.True(t, IsInvalid(err))
	assert.False(t, IsFatal(err))
	assert.Equal(t, ErrorInvalid, Classify(err))
	assert.True(t, errors.Is(err, ErrMalformedJSON))

	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Parser", ce.Component)
	assert.Equal(t, "Parse", ce.Operation)
}

func TestWrapFatalClassification(t *testing.T) {
	err := WrapFatal(ErrAlreadyAttached, "BaseElement", "SetParent", "single-attach check")

	assert.True(t, IsFatal(err))
	assert.False(t, IsInvalid(err))
	assert.Equal(t, ErrorFatal, Classify(err))
}

func TestSentinelClassification(t *testing.T) {
	// Sentinels classify correctly even without wrapping.
	assert.True(t, IsInvalid(ErrUnknownElementType))
	assert.True(t, IsInvalid(ErrUnknownActionType))
	assert.True(t, IsFatal(ErrAlreadyAttached))
	assert.True(t, IsFatal(fmt.Errorf("context: %w", ErrAlreadyDispatched)))
}

func TestClassifyNil(t *testing.T) {
	assert.False(t, IsInvalid(nil))
	assert.False(t, IsFatal(nil))
}
