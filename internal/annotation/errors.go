package annotation

import (
	"errors"
	"fmt"
	"go/token"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to structural diagnostics.
const (
	CodeNotAFunction      = "STRUCT_NOT_A_FUNCTION"
	CodeDanglingDirective = "STRUCT_DANGLING_DIRECTIVE"
	CodeMalformedMarker   = "STRUCT_MALFORMED_MARKER"
	CodeSourceUnparsable  = "STRUCT_SOURCE_UNPARSABLE"
)

var (
	// ErrNotAFunction indicates a directive attached to a non-function declaration.
	ErrNotAFunction = errors.New("docgen annotation: directive must be attached to a function declaration")
	// ErrDanglingDirective indicates a directive comment with no declaration beneath it.
	ErrDanglingDirective = errors.New("docgen annotation: directive is not attached to any declaration")
	// ErrMalformedMarker indicates a directive marker without a parenthesised argument list.
	ErrMalformedMarker = errors.New("docgen annotation: directive requires a parenthesised argument list")
)

func structuralError(base error, code string, pos token.Position) error {
	return goerrors.Wrap(base, goerrors.CategoryValidation, pos.String()).
		WithTextCode(code)
}

// positionedError prefixes an interpreter diagnostic with the directive's
// source position so the failure reads like a compiler diagnostic. The
// original error chain is preserved for category checks.
func positionedError(pos token.Position, err error) error {
	return fmt.Errorf("%s: %w", pos, err)
}
