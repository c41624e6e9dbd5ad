package interpreter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenizer walks the argument text left to right producing Tokens, always
// ending with a TokenEOF entry. It is whitespace-insensitive: spaces, tabs
// and newlines only separate tokens.
type tokenizer struct {
	input  string
	offset int
	line   int
	column int
}

// Tokenize converts raw directive argument text into a token stream. The
// returned slice always terminates with a TokenEOF token carrying the
// position one past the final byte.
func Tokenize(input string) ([]Token, error) {
	tz := &tokenizer{input: input, line: 1}
	var tokens []Token
	for {
		tok, err := tz.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (tz *tokenizer) next() (Token, error) {
	tz.skipSpace()
	start := tz.mark()

	if tz.offset >= len(tz.input) {
		return tz.token(TokenEOF, start, ""), nil
	}

	r, size := utf8.DecodeRuneInString(tz.input[tz.offset:])
	switch {
	case r == '=':
		tz.advance(size)
		return tz.token(TokenEquals, start, ""), nil
	case r == ',':
		tz.advance(size)
		return tz.token(TokenComma, start, ""), nil
	case r == ':':
		tz.advance(size)
		return tz.token(TokenColon, start, ""), nil
	case r == '{':
		tz.advance(size)
		return tz.token(TokenLBrace, start, ""), nil
	case r == '}':
		tz.advance(size)
		return tz.token(TokenRBrace, start, ""), nil
	case r == '"':
		return tz.scanString(start)
	case isIdentStart(r):
		return tz.scanIdent(start), nil
	default:
		tok := tz.token(TokenEOF, start, "")
		tok.Lexeme = string(r)
		return Token{}, errUnexpectedRune(r, tok)
	}
}

// scanString consumes a double quoted literal, decoding the escape sequences
// the directive language supports: \" \\ \n \t \r.
func (tz *tokenizer) scanString(start position) (Token, error) {
	tz.advance(1) // opening quote

	var value strings.Builder
	for tz.offset < len(tz.input) {
		r, size := utf8.DecodeRuneInString(tz.input[tz.offset:])
		switch r {
		case '"':
			tz.advance(size)
			tok := tz.token(TokenString, start, value.String())
			return tok, nil
		case '\\':
			tz.advance(size)
			if tz.offset >= len(tz.input) {
				return Token{}, errUnterminatedString(tz.token(TokenString, start, ""))
			}
			esc, escSize := utf8.DecodeRuneInString(tz.input[tz.offset:])
			decoded, ok := decodeEscape(esc)
			if !ok {
				bad := tz.token(TokenString, tz.mark(), "")
				bad.Lexeme = "\\" + string(esc)
				return Token{}, errBadEscape(bad)
			}
			value.WriteRune(decoded)
			tz.advance(escSize)
		case '\n':
			// Literals cannot span lines; the closing quote is missing.
			return Token{}, errUnterminatedString(tz.token(TokenString, start, ""))
		default:
			value.WriteRune(r)
			tz.advance(size)
		}
	}
	return Token{}, errUnterminatedString(tz.token(TokenString, start, ""))
}

func (tz *tokenizer) scanIdent(start position) Token {
	for tz.offset < len(tz.input) {
		r, size := utf8.DecodeRuneInString(tz.input[tz.offset:])
		if !isIdentPart(r) {
			break
		}
		tz.advance(size)
	}
	tok := tz.token(TokenIdent, start, "")
	tok.Value = tok.Lexeme
	return tok
}

func decodeEscape(r rune) (rune, bool) {
	switch r {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	default:
		return 0, false
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type position struct {
	offset int
	line   int
	column int
}

func (tz *tokenizer) mark() position {
	return position{offset: tz.offset, line: tz.line, column: tz.column}
}

func (tz *tokenizer) token(kind TokenKind, start position, value string) Token {
	return Token{
		Kind:   kind,
		Lexeme: tz.input[start.offset:tz.offset],
		Value:  value,
		Line:   start.line,
		Column: start.column,
		Offset: start.offset,
	}
}

// advance consumes one rune of the given byte size, maintaining the
// line/column counters. Columns count runes, not bytes.
func (tz *tokenizer) advance(size int) {
	if tz.input[tz.offset] == '\n' {
		tz.line++
		tz.column = 0
	} else {
		tz.column++
	}
	tz.offset += size
}

func (tz *tokenizer) skipSpace() {
	for tz.offset < len(tz.input) {
		r, size := utf8.DecodeRuneInString(tz.input[tz.offset:])
		if !unicode.IsSpace(r) {
			return
		}
		tz.advance(size)
	}
}
