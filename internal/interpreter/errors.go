package interpreter

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to grammar diagnostics so callers can branch on the
// specific violation without string matching.
const (
	CodeUnknownKey      = "GRAMMAR_UNKNOWN_KEY"
	CodeDuplicateKey    = "GRAMMAR_DUPLICATE_KEY"
	CodeBadString       = "GRAMMAR_BAD_STRING"
	CodeUnbalancedBrace = "GRAMMAR_UNBALANCED_BRACE"
	CodeMissingEquals   = "GRAMMAR_MISSING_EQUALS"
	CodeUnexpectedToken = "GRAMMAR_UNEXPECTED_TOKEN"
)

// grammarError builds a positioned, categorised diagnostic. The base error
// message carries the offending token's line and column so compiler-style
// tooling can anchor it; the wrapper carries the category and text code.
func grammarError(code string, tok Token, format string, args ...any) error {
	base := fmt.Errorf("%s at %d:%d", fmt.Sprintf(format, args...), tok.Line, tok.Column)
	return goerrors.Wrap(base, goerrors.CategoryValidation, "docgen interpreter: invalid directive arguments").
		WithTextCode(code)
}

func errUnexpectedRune(r rune, tok Token) error {
	return grammarError(CodeUnexpectedToken, tok, "unexpected character %q", string(r))
}

func errUnterminatedString(tok Token) error {
	return grammarError(CodeBadString, tok, "unterminated string literal")
}

func errBadEscape(tok Token) error {
	return grammarError(CodeBadString, tok, "invalid escape sequence %q", tok.Lexeme)
}
