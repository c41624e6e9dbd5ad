package renderer

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	slug "github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmrenderer "github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

const (
	seeAlsoBulletOpen  = "* [`"
	seeAlsoBulletClose = "`]"
)

// Options configures the preview renderer.
type Options struct {
	// HardWraps renders single newlines as <br> tags.
	HardWraps bool
	// Unsafe allows raw HTML in documentation text to pass through.
	Unsafe bool
	// Resolver maps see-also symbols to URLs. When nil, entries link to
	// in-page anchors.
	Resolver SymbolResolver
}

// Service implements interfaces.DocRenderer. The goldmark engine is built
// once; the service is stateless afterwards and safe for concurrent use.
type Service struct {
	engine   goldmark.Markdown
	resolver SymbolResolver
	logger   interfaces.Logger
}

var _ interfaces.DocRenderer = (*Service)(nil)

// NewService builds a renderer with GFM extensions and heading anchors.
func NewService(opts Options, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		engine:   newEngine(opts),
		resolver: opts.Resolver,
		logger:   logger,
	}
}

func newEngine(opts Options) goldmark.Markdown {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
		parser.WithAttribute(),
	}

	rendererOptions := []gmrenderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return goldmark.New(engineOptions...)
}

// Render converts one function's documentation block to HTML.
func (s *Service) Render(ctx context.Context, doc interfaces.FunctionDoc) ([]byte, error) {
	markdown := s.functionMarkdown(ctx, doc)
	return s.convert(markdown)
}

// RenderFile converts every documented function in the file result to a
// single HTML page, one section per function in source order.
func (s *Service) RenderFile(ctx context.Context, res *interfaces.FileResult) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("renderer: file result is nil")
	}

	var sections []string
	sections = append(sections, fmt.Sprintf("# %s {#%s}", filepath.Base(res.Path), Anchor(res.Path)))
	for _, doc := range res.Docs {
		sections = append(sections, s.functionMarkdown(ctx, doc))
	}

	return s.convert(strings.Join(sections, "\n\n---\n\n"))
}

func (s *Service) convert(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.engine.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("renderer: markdown conversion: %w", err)
	}
	return buf.Bytes(), nil
}

// functionMarkdown lays out one function's section: an anchored heading
// followed by the assembled lines, with section headings demoted under the
// function heading and see-also bullets rewritten as links.
func (s *Service) functionMarkdown(ctx context.Context, doc interfaces.FunctionDoc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## `%s` {#%s}\n", doc.Function, Anchor(doc.Function))

	for _, line := range doc.Lines {
		switch {
		case strings.HasPrefix(line, "# "):
			b.WriteString("###" + line[1:])
		case strings.HasPrefix(line, seeAlsoBulletOpen) && strings.HasSuffix(line, seeAlsoBulletClose):
			entry := line[len(seeAlsoBulletOpen) : len(line)-len(seeAlsoBulletClose)]
			fmt.Fprintf(&b, "* [`%s`](%s)", entry, s.symbolURL(ctx, entry))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// symbolURL resolves a see-also entry. Resolver failures degrade to anchor
// links so one bad route never breaks the preview.
func (s *Service) symbolURL(ctx context.Context, symbol string) string {
	if s.resolver != nil {
		url, err := s.resolver.Resolve(ctx, symbol)
		if err != nil {
			s.logger.Warn("renderer.crossref.failed", "symbol", symbol, "error", err)
		} else if url != "" {
			return url
		}
	}
	return "#" + Anchor(symbol)
}

// Anchor derives a stable fragment identifier from a symbol or path.
func Anchor(value string) string {
	normalized, err := slug.Normalize(value)
	if err == nil && normalized != "" {
		return normalized
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, value)
	return strings.Trim(cleaned, "-")
}
