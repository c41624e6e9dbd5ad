package interpreter

import "fmt"

// TokenKind enumerates the lexical classes of the directive argument language.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenString
	TokenEquals
	TokenComma
	TokenColon
	TokenLBrace
	TokenRBrace
)

// String returns the human readable name used in diagnostics.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenString:
		return "string literal"
	case TokenEquals:
		return "'='"
	case TokenComma:
		return "','"
	case TokenColon:
		return "':'"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

// Token is one lexical unit of a directive's argument text. Lexeme holds the
// verbatim source slice; Value holds the decoded payload for string literals
// and the identifier text for idents. Line is 1-based, Column is 0-based, and
// Offset is the byte offset of the token's start.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Value  string
	Line   int
	Column int
	Offset int
}

// describe renders the token for diagnostics, quoting the source text when
// there is any.
func (t Token) describe() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
