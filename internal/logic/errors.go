package logic

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ParseErrorCode categorizes parse failures.
type ParseErrorCode string

const (
	// ErrCodeEmptyInput indicates the trimmed input was empty.
	ErrCodeEmptyInput ParseErrorCode = "EMPTY_INPUT"

	// ErrCodeInvalidToken indicates a character that cannot begin or continue a construct.
	ErrCodeInvalidToken ParseErrorCode = "INVALID_TOKEN"

	// ErrCodeUnexpectedEnd indicates the input ended where a primary was expected.
	ErrCodeUnexpectedEnd ParseErrorCode = "UNEXPECTED_END"

	// ErrCodeUnmatchedParen indicates an opening parenthesis without a closing one.
	ErrCodeUnmatchedParen ParseErrorCode = "UNMATCHED_PAREN"

	// ErrCodeTrailingInput indicates symbols left over after a complete expression.
	ErrCodeTrailingInput ParseErrorCode = "TRAILING_INPUT"

	// ErrCodeNestingTooDeep indicates parentheses or negations nested past the limit.
	ErrCodeNestingTooDeep ParseErrorCode = "NESTING_TOO_DEEP"

	// ErrCodeInputTooLong indicates the normalized input exceeds the length limit.
	ErrCodeInputTooLong ParseErrorCode = "INPUT_TOO_LONG"
)

// ParseError is the only error type produced by this package.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Message is a human-readable description.
	Message string

	// Pos is the byte offset into the normalized string, or -1 when the
	// error is not tied to a position.
	Pos int

	// Near is the offending character. Empty at end of input.
	Near string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s (offset %d)", e.Code, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsParseError reports whether err is a *ParseError with the given code.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error, code ParseErrorCode) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// EmptyInputError is returned by callers that reject blank input before parsing.
func EmptyInputError() *ParseError {
	return &ParseError{
		Code:    ErrCodeEmptyInput,
		Message: "expression is empty",
		Pos:     -1,
	}
}

func errUnexpectedEnd(pos int) *ParseError {
	return &ParseError{
		Code:    ErrCodeUnexpectedEnd,
		Message: "unexpected end of expression",
		Pos:     pos,
	}
}

func errInvalidToken(src string, pos int) *ParseError {
	near := runeAt(src, pos)
	return &ParseError{
		Code:    ErrCodeInvalidToken,
		Message: fmt.Sprintf("invalid token near '%s'; use A-D, !, &, |, ->, <->, parentheses", near),
		Pos:     pos,
		Near:    near,
	}
}

func errUnmatchedParen(src string, pos int) *ParseError {
	return &ParseError{
		Code:    ErrCodeUnmatchedParen,
		Message: "expected ')'",
		Pos:     pos,
		Near:    runeAt(src, pos),
	}
}

func errTrailingInput(src string, pos int) *ParseError {
	near := runeAt(src, pos)
	return &ParseError{
		Code:    ErrCodeTrailingInput,
		Message: fmt.Sprintf("trailing symbols after end of expression near '%s'", near),
		Pos:     pos,
		Near:    near,
	}
}

func errNestingTooDeep(src string, pos, limit int) *ParseError {
	return &ParseError{
		Code:    ErrCodeNestingTooDeep,
		Message: fmt.Sprintf("expression nests deeper than %d levels", limit),
		Pos:     pos,
		Near:    runeAt(src, pos),
	}
}

func errInputTooLong(length, limit int) *ParseError {
	return &ParseError{
		Code:    ErrCodeInputTooLong,
		Message: fmt.Sprintf("expression is %d bytes long, limit is %d", length, limit),
		Pos:     -1,
	}
}

// runeAt returns the character starting at byte offset pos, or "" past the end.
func runeAt(s string, pos int) string {
	if pos < 0 || pos >= len(s) {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return string(r)
}
