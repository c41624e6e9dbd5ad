package renderer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-docgen/pkg/interfaces"
)

func sampleDoc() interfaces.FunctionDoc {
	return interfaces.FunctionDoc{
		Function: "Add",
		Line:     10,
		Lines: []string{
			"Adds two numbers",
			"",
			"# Parameters",
			"* `x` - first operand",
			"",
			"# See Also",
			"* [`mul`]",
		},
	}
}

func TestRenderProducesAnchoredHeading(t *testing.T) {
	svc := NewService(Options{}, nil)

	out, err := svc.Render(context.Background(), sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, `id="add"`) {
		t.Fatalf("function heading should carry its anchor:\n%s", html)
	}
	if !strings.Contains(html, "<code>Add</code>") {
		t.Fatalf("function name should render as code:\n%s", html)
	}
	if !strings.Contains(html, "Adds two numbers") {
		t.Fatalf("summary text missing:\n%s", html)
	}
}

func TestRenderDemotesSectionHeadings(t *testing.T) {
	svc := NewService(Options{}, nil)

	out, err := svc.Render(context.Background(), sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<h3") || !strings.Contains(html, "Parameters") {
		t.Fatalf("section headings should sit below the function heading:\n%s", html)
	}
	if strings.Contains(html, "<h1") {
		t.Fatalf("a single function preview must not emit page level headings:\n%s", html)
	}
}

func TestRenderLinksSeeAlsoToAnchorsByDefault(t *testing.T) {
	svc := NewService(Options{}, nil)

	out, err := svc.Render(context.Background(), sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(string(out), `href="#mul"`) {
		t.Fatalf("see-also entries should fall back to in-page anchors:\n%s", out)
	}
}

type stubResolver struct {
	url string
	err error
}

func (s *stubResolver) Resolve(context.Context, string) (string, error) {
	return s.url, s.err
}

func TestRenderUsesConfiguredResolver(t *testing.T) {
	svc := NewService(Options{Resolver: &stubResolver{url: "https://docs.example.com/mul"}}, nil)

	out, err := svc.Render(context.Background(), sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(string(out), `href="https://docs.example.com/mul"`) {
		t.Fatalf("resolver URL should back the see-also link:\n%s", out)
	}
}

func TestRenderResolverFailureFallsBackToAnchor(t *testing.T) {
	svc := NewService(Options{Resolver: &stubResolver{err: errors.New("route missing")}}, nil)

	out, err := svc.Render(context.Background(), sampleDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(string(out), `href="#mul"`) {
		t.Fatalf("resolver failures should degrade to anchor links:\n%s", out)
	}
}

func TestRenderFileComposesSections(t *testing.T) {
	svc := NewService(Options{}, nil)

	res := &interfaces.FileResult{
		Path: "math/add.go",
		Docs: []interfaces.FunctionDoc{
			sampleDoc(),
			{Function: "Mul", Lines: []string{"Multiplies two numbers"}},
		},
	}

	out, err := svc.RenderFile(context.Background(), res)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "add.go") {
		t.Fatalf("file preview should open with the file heading:\n%s", html)
	}
	addIdx := strings.Index(html, "<code>Add</code>")
	mulIdx := strings.Index(html, "<code>Mul</code>")
	if addIdx == -1 || mulIdx == -1 || addIdx > mulIdx {
		t.Fatalf("functions must render in source order:\n%s", html)
	}
}

func TestRenderFileNilResult(t *testing.T) {
	if _, err := NewService(Options{}, nil).RenderFile(context.Background(), nil); err == nil {
		t.Fatalf("expected an error for a nil file result")
	}
}

func TestAnchorNormalizesSymbols(t *testing.T) {
	if got := Anchor("Add"); got != "add" {
		t.Fatalf("Anchor(Add) = %q", got)
	}
	got := Anchor("math::helper fn")
	if got == "" || strings.ContainsAny(got, ": ") {
		t.Fatalf("anchors must not carry separators or spaces: %q", got)
	}
}
