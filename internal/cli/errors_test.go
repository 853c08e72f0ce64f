package cli

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/truthtable/internal/logic"
)

func TestMapParseErrorCode(t *testing.T) {
	tests := []struct {
		code logic.ParseErrorCode
		want string
	}{
		{logic.ErrCodeEmptyInput, ErrCodeEmptyInput},
		{logic.ErrCodeInvalidToken, ErrCodeInvalidToken},
		{logic.ErrCodeUnexpectedEnd, ErrCodeUnexpectedEnd},
		{logic.ErrCodeUnmatchedParen, ErrCodeUnmatchedParen},
		{logic.ErrCodeTrailingInput, ErrCodeTrailingInput},
		{logic.ErrCodeNestingTooDeep, ErrCodeNestingTooDeep},
		{logic.ErrCodeInputTooLong, ErrCodeInputTooLong},
		{logic.ParseErrorCode("SOMETHING_ELSE"), ErrCodeGeneric},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, MapParseErrorCode(tt.code))
		})
	}
}

func TestDescribeEvalError(t *testing.T) {
	_, err := logic.Parse("(a")
	require.Error(t, err)

	code, msg, details := describeEvalError("(a", err)
	assert.Equal(t, ErrCodeUnmatchedParen, code)
	assert.Equal(t, "expected ')'", msg)
	require.NotNil(t, details)
	assert.Equal(t, "(a", details.Expr)
	assert.Equal(t, "UNMATCHED_PAREN", details.ParseCode)
	assert.Equal(t, 2, details.Offset)
}

func TestDescribeEvalErrorGeneric(t *testing.T) {
	code, msg, details := describeEvalError("a", errors.New("boom"))
	assert.Equal(t, ErrCodeGeneric, code)
	assert.Equal(t, "boom", msg)
	assert.Equal(t, -1, details.Offset)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	first := gen.Generate()
	second := gen.Generate()

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, first, second)
}
