package cli

import (
	"errors"

	"github.com/roach88/truthtable/internal/logic"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoInput     = "E003" // No expressions given
	ErrCodeSuiteLoad   = "E004" // Suite file failed to load
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeInvalidFlag = "E008" // Flag value rejected

	// Parse errors
	ErrCodeEmptyInput     = "E201"
	ErrCodeInvalidToken   = "E202"
	ErrCodeUnexpectedEnd  = "E203"
	ErrCodeUnmatchedParen = "E204"
	ErrCodeTrailingInput  = "E205"
	ErrCodeNestingTooDeep = "E206"
	ErrCodeInputTooLong   = "E207"
)

// MapParseErrorCode maps a parser error code to a CLI error code.
func MapParseErrorCode(code logic.ParseErrorCode) string {
	switch code {
	case logic.ErrCodeEmptyInput:
		return ErrCodeEmptyInput
	case logic.ErrCodeInvalidToken:
		return ErrCodeInvalidToken
	case logic.ErrCodeUnexpectedEnd:
		return ErrCodeUnexpectedEnd
	case logic.ErrCodeUnmatchedParen:
		return ErrCodeUnmatchedParen
	case logic.ErrCodeTrailingInput:
		return ErrCodeTrailingInput
	case logic.ErrCodeNestingTooDeep:
		return ErrCodeNestingTooDeep
	case logic.ErrCodeInputTooLong:
		return ErrCodeInputTooLong
	default:
		return ErrCodeGeneric
	}
}

// ParseErrorDetails is the JSON details payload of a parse error.
type ParseErrorDetails struct {
	Expr      string `json:"expr"`
	ParseCode string `json:"parse_code"`
	Offset    int    `json:"offset"`
	Near      string `json:"near,omitempty"`
}

// describeEvalError extracts the CLI code, message and details from an
// evaluation error.
func describeEvalError(text string, err error) (string, string, *ParseErrorDetails) {
	var pe *logic.ParseError
	if !errors.As(err, &pe) {
		return ErrCodeGeneric, err.Error(), &ParseErrorDetails{Expr: text, Offset: -1}
	}
	return MapParseErrorCode(pe.Code), pe.Message, &ParseErrorDetails{
		Expr:      text,
		ParseCode: string(pe.Code),
		Offset:    pe.Pos,
		Near:      pe.Near,
	}
}
