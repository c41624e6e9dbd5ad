// Package assembler expands an interpreted DocSpec into the ordered
// documentation line sequence. Assembly is deterministic and purely
// functional: every section is a small helper from DocSpec fields to lines,
// composed in a fixed order, and the DocSpec is never mutated.
package assembler

import (
	"strings"

	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

const (
	unimplementedHeading = "⚠️ **WARNING: NOT IMPLEMENTED**"
	unimplementedGeneric = "⚠️ **NOT IMPLEMENTED** - This function is not yet implemented"
	unimplementedPrefix  = "⚠️ **NOT IMPLEMENTED** - "
	unimplementedReturns = "This function will panic when called"
	deprecatedHeading    = "⚠️ **DEPRECATED**"
	exampleFenceOpen     = "```go"
	exampleFenceClose    = "```"
	noteGlyph            = "⚠️ "
)

// Service assembles documentation blocks. It is stateless; one instance can
// serve every function in a run.
type Service struct {
	logger interfaces.Logger
}

var _ interfaces.Assembler = (*Service)(nil)

// NewService builds an assembler. A nil logger falls back to the no-op
// implementation.
func NewService(logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{logger: logger}
}

// Assemble produces the documentation lines for spec in the fixed section
// order: unimplemented banner, deprecation banner, summary, since,
// parameters, returns, example, panics, safety, see also, invariants, note.
// A zero spec yields nil. Sections whose triggering field is absent are
// omitted entirely; explicitly empty fields still render their section.
func (s *Service) Assemble(spec interfaces.DocSpec) []string {
	var lines []string
	lines = append(lines, unimplementedSection(spec)...)
	lines = append(lines, deprecationSection(spec)...)
	lines = append(lines, summarySection(spec)...)
	lines = append(lines, sinceSection(spec)...)
	lines = append(lines, paramsSection(spec)...)
	lines = append(lines, textSection("# Returns", spec.Returns)...)
	lines = append(lines, exampleSection(spec)...)
	lines = append(lines, textSection("# Panics", spec.Panics)...)
	lines = append(lines, textSection("# Safety", spec.Safety)...)
	lines = append(lines, seeAlsoSection(spec)...)
	lines = append(lines, textSection("# Invariants", spec.Invariants)...)
	lines = append(lines, noteSection(spec)...)
	return lines
}

// unimplementedSection renders the stub banner. The summary line interpolates
// the reason when one was supplied; the returns line is fixed either way.
func unimplementedSection(spec interfaces.DocSpec) []string {
	if !spec.Unimplemented {
		return nil
	}

	summary := unimplementedGeneric
	if spec.UnimplementedReason.IsSet() {
		summary = unimplementedPrefix + spec.UnimplementedReason.Value
	}

	return []string{
		"",
		unimplementedHeading,
		"",
		summary,
		"",
		unimplementedReturns,
		"",
	}
}

// deprecationSection renders the deprecation banner. The message line varies
// by which of the two fields are present: both produce the combined template,
// a lone reason is emitted verbatim, and a lone version gets the since-only
// template.
func deprecationSection(spec interfaces.DocSpec) []string {
	reason, since := spec.Deprecated, spec.DeprecatedSince

	var message string
	switch {
	case reason.IsSet() && since.IsSet():
		message = "**Deprecated since " + since.Value + ":** " + reason.Value
	case reason.IsSet():
		message = reason.Value
	case since.IsSet():
		message = "**Deprecated since:** " + since.Value
	default:
		return nil
	}

	return []string{"", deprecatedHeading, message, ""}
}

func summarySection(spec interfaces.DocSpec) []string {
	if !spec.Summary.IsSet() {
		return nil
	}
	return []string{spec.Summary.Value}
}

func sinceSection(spec interfaces.DocSpec) []string {
	if !spec.Since.IsSet() {
		return nil
	}
	return []string{"", "**Since:** " + spec.Since.Value}
}

// paramsSection emits one bullet per parameter in insertion order. Duplicate
// names are kept as written.
func paramsSection(spec interfaces.DocSpec) []string {
	if len(spec.Params) == 0 {
		return nil
	}
	lines := []string{"", "# Parameters"}
	for _, param := range spec.Params {
		lines = append(lines, "* `"+param.Name+"` - "+param.Description)
	}
	return lines
}

func exampleSection(spec interfaces.DocSpec) []string {
	if !spec.Example.IsSet() {
		return nil
	}
	return []string{"", "# Example", "", exampleFenceOpen, spec.Example.Value, exampleFenceClose}
}

// seeAlsoSection splits the comma separated entry list lazily, trimming each
// entry and preserving input order. Entries are rendered as symbol-link
// bullets without any validation against a symbol table.
func seeAlsoSection(spec interfaces.DocSpec) []string {
	if !spec.SeeAlso.IsSet() {
		return nil
	}
	lines := []string{"", "# See Also"}
	for _, entry := range SeeAlsoEntries(spec.SeeAlso.Value) {
		lines = append(lines, "* [`"+entry+"`]")
	}
	return lines
}

func noteSection(spec interfaces.DocSpec) []string {
	if !spec.Note.IsSet() {
		return nil
	}
	return []string{"", "# Note", noteGlyph + spec.Note.Value}
}

// textSection covers the sections that share the blank/heading/content shape.
func textSection(heading string, text interfaces.Text) []string {
	if !text.IsSet() {
		return nil
	}
	return []string{"", heading, text.Value}
}

// SeeAlsoEntries exposes the see-also splitting rule so the renderer can
// produce one cross-reference per entry with identical semantics.
func SeeAlsoEntries(raw string) []string {
	parts := strings.Split(raw, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		entries = append(entries, strings.TrimSpace(part))
	}
	return entries
}
