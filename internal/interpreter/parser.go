package interpreter

import (
	"strings"

	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

// validKeys lists every key the general form accepts, in the order diagnostics
// report them. params is included even though its value is a brace block.
var validKeys = []string{
	"summary",
	"returns",
	"params",
	"deprecated",
	"deprecated_since",
	"since",
	"example",
	"panics",
	"safety",
	"see_also",
	"invariants",
	"note",
}

const unimplementedKeyword = "unimplemented"

// Service interprets directive argument text into DocSpecs. It holds no
// mutable state, so a single instance can serve every file in a run.
type Service struct {
	logger interfaces.Logger
}

var _ interfaces.Interpreter = (*Service)(nil)

// NewService builds an interpreter. A nil logger falls back to the no-op
// implementation.
func NewService(logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{logger: logger}
}

// Interpret tokenizes and parses the raw argument text (the content between
// the directive's parentheses). On any grammar violation it returns a
// positioned error and a zero DocSpec; callers must not use the spec when an
// error is returned.
func (s *Service) Interpret(args string) (interfaces.DocSpec, error) {
	tokens, err := Tokenize(args)
	if err != nil {
		return interfaces.DocSpec{}, err
	}

	p := &parser{tokens: tokens}
	spec, err := p.parseArgs()
	if err != nil {
		s.logger.Debug("interpreter.parse.failed", "error", err)
		return interfaces.DocSpec{}, err
	}
	return spec, nil
}

// parser is a recursive-descent parser over the token stream. The grammar is
// LL(1): one token of lookahead decides every production.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind, code string, context string) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return Token{}, grammarError(code, tok, "expected %s %s, found %s", kind, context, tok.describe())
	}
	return tok, nil
}

// parseArgs is the entry production: either the unimplemented special form or
// a comma separated field list. Empty input is a valid, empty spec.
func (p *parser) parseArgs() (interfaces.DocSpec, error) {
	if tok := p.peek(); tok.Kind == TokenIdent && tok.Value == unimplementedKeyword {
		return p.parseUnimplemented()
	}
	return p.parseFields()
}

// parseUnimplemented handles `unimplemented` and `unimplemented = "reason"`.
// Any trailing token is rejected; the special form admits no other fields.
func (p *parser) parseUnimplemented() (interfaces.DocSpec, error) {
	p.next() // keyword

	spec := interfaces.DocSpec{Unimplemented: true}

	switch tok := p.peek(); tok.Kind {
	case TokenEOF:
		return spec, nil
	case TokenEquals:
		p.next()
		reason, err := p.expect(TokenString, CodeUnexpectedToken, "after '=' following unimplemented")
		if err != nil {
			return interfaces.DocSpec{}, err
		}
		spec.UnimplementedReason = interfaces.NewText(reason.Value)
		if trailing := p.peek(); trailing.Kind != TokenEOF {
			return interfaces.DocSpec{}, grammarError(CodeUnexpectedToken, trailing,
				"unexpected %s after unimplemented flag", trailing.describe())
		}
		return spec, nil
	default:
		return interfaces.DocSpec{}, grammarError(CodeUnexpectedToken, tok,
			"unexpected %s after unimplemented flag", tok.describe())
	}
}

// parseFields consumes `key = value` pairs separated by commas, allowing a
// trailing comma before end of input. Each key may appear at most once.
func (p *parser) parseFields() (interfaces.DocSpec, error) {
	var spec interfaces.DocSpec
	seen := map[string]bool{}

	for {
		if p.peek().Kind == TokenEOF {
			return spec, nil
		}

		key, err := p.expect(TokenIdent, CodeUnexpectedToken, "as field name")
		if err != nil {
			return interfaces.DocSpec{}, err
		}
		if !isValidKey(key.Value) {
			return interfaces.DocSpec{}, grammarError(CodeUnknownKey, key,
				"unknown field %q, expected one of: %s", key.Value, strings.Join(validKeys, ", "))
		}
		if seen[key.Value] {
			return interfaces.DocSpec{}, grammarError(CodeDuplicateKey, key,
				"duplicate field %q", key.Value)
		}
		seen[key.Value] = true

		if _, err := p.expect(TokenEquals, CodeMissingEquals, "after field "+key.Value); err != nil {
			return interfaces.DocSpec{}, err
		}

		if key.Value == "params" {
			params, err := p.parseParams()
			if err != nil {
				return interfaces.DocSpec{}, err
			}
			spec.Params = params
		} else {
			val, err := p.expect(TokenString, CodeUnexpectedToken, "as value for "+key.Value)
			if err != nil {
				return interfaces.DocSpec{}, err
			}
			assignField(&spec, key.Value, val.Value)
		}

		switch tok := p.peek(); tok.Kind {
		case TokenComma:
			p.next()
		case TokenEOF:
			return spec, nil
		default:
			return interfaces.DocSpec{}, grammarError(CodeUnexpectedToken, tok,
				"expected ',' or end of input after field %s, found %s", key.Value, tok.describe())
		}
	}
}

// parseParams consumes a brace delimited `"name": "description"` list.
// Insertion order is preserved and names are not deduplicated.
func (p *parser) parseParams() ([]interfaces.Param, error) {
	open, err := p.expect(TokenLBrace, CodeUnexpectedToken, "to open params block")
	if err != nil {
		return nil, err
	}

	var params []interfaces.Param
	for {
		switch tok := p.peek(); tok.Kind {
		case TokenRBrace:
			p.next()
			return params, nil
		case TokenEOF:
			return nil, grammarError(CodeUnbalancedBrace, open, "params block is missing its closing '}'")
		}

		name, err := p.expect(TokenString, CodeUnexpectedToken, "as parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenColon, CodeUnexpectedToken, "after parameter name"); err != nil {
			return nil, err
		}
		desc, err := p.expect(TokenString, CodeUnexpectedToken, "as parameter description")
		if err != nil {
			return nil, err
		}
		params = append(params, interfaces.Param{Name: name.Value, Description: desc.Value})

		switch tok := p.peek(); tok.Kind {
		case TokenComma:
			p.next()
		case TokenRBrace:
			// closing brace handled at the top of the loop
		case TokenEOF:
			return nil, grammarError(CodeUnbalancedBrace, open, "params block is missing its closing '}'")
		default:
			return nil, grammarError(CodeUnexpectedToken, tok,
				"expected ',' or '}' in params block, found %s", tok.describe())
		}
	}
}

func isValidKey(key string) bool {
	for _, valid := range validKeys {
		if key == valid {
			return true
		}
	}
	return false
}

func assignField(spec *interfaces.DocSpec, key, value string) {
	text := interfaces.NewText(value)
	switch key {
	case "summary":
		spec.Summary = text
	case "returns":
		spec.Returns = text
	case "deprecated":
		spec.Deprecated = text
	case "deprecated_since":
		spec.DeprecatedSince = text
	case "since":
		spec.Since = text
	case "example":
		spec.Example = text
	case "panics":
		spec.Panics = text
	case "safety":
		spec.Safety = text
	case "see_also":
		spec.SeeAlso = text
	case "invariants":
		spec.Invariants = text
	case "note":
		spec.Note = text
	}
}
