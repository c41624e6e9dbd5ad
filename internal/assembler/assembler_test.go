package assembler

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-docgen/pkg/interfaces"
)

func text(v string) interfaces.Text { return interfaces.NewText(v) }

func TestAssembleZeroSpecIsEmpty(t *testing.T) {
	lines := NewService(nil).Assemble(interfaces.DocSpec{})
	if len(lines) != 0 {
		t.Fatalf("zero spec must assemble to nothing, got %#v", lines)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	spec := interfaces.DocSpec{
		Summary: text("Adds two numbers"),
		Returns: text("the sum"),
		Params: []interfaces.Param{
			{Name: "x", Description: "first operand"},
			{Name: "y", Description: "second operand"},
		},
		SeeAlso: text("Sub, math::Mul"),
	}

	svc := NewService(nil)
	first := svc.Assemble(spec)
	second := svc.Assemble(spec)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("assembly must be deterministic:\nfirst:  %#v\nsecond: %#v", first, second)
	}
}

func TestAssembleSummaryOnly(t *testing.T) {
	lines := NewService(nil).Assemble(interfaces.DocSpec{Summary: text("Adds two numbers")})
	if len(lines) != 1 || lines[0] != "Adds two numbers" {
		t.Fatalf("expected the single summary line, got %#v", lines)
	}
}

func TestAssembleExplicitEmptySummaryRenders(t *testing.T) {
	lines := NewService(nil).Assemble(interfaces.DocSpec{Summary: text("")})
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("explicit empty summary must render an empty line, got %#v", lines)
	}
}

func TestAssembleDeprecationVariants(t *testing.T) {
	cases := []struct {
		name    string
		spec    interfaces.DocSpec
		message string
	}{
		{
			"both fields",
			interfaces.DocSpec{Deprecated: text("use new_fn instead"), DeprecatedSince: text("1.2.0")},
			"**Deprecated since 1.2.0:** use new_fn instead",
		},
		{
			"reason only",
			interfaces.DocSpec{Deprecated: text("use new_fn instead")},
			"use new_fn instead",
		},
		{
			"since only",
			interfaces.DocSpec{DeprecatedSince: text("1.2.0")},
			"**Deprecated since:** 1.2.0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := []string{"", "⚠️ **DEPRECATED**", tc.message, ""}
			got := NewService(nil).Assemble(tc.spec)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("deprecation banner mismatch:\nwant %#v\ngot  %#v", want, got)
			}
		})
	}
}

func TestAssembleUnimplementedBanner(t *testing.T) {
	svc := NewService(nil)

	generic := svc.Assemble(interfaces.DocSpec{Unimplemented: true})
	want := []string{
		"",
		"⚠️ **WARNING: NOT IMPLEMENTED**",
		"",
		"⚠️ **NOT IMPLEMENTED** - This function is not yet implemented",
		"",
		"This function will panic when called",
		"",
	}
	if !reflect.DeepEqual(generic, want) {
		t.Fatalf("generic banner mismatch:\nwant %#v\ngot  %#v", want, generic)
	}

	reasoned := svc.Assemble(interfaces.DocSpec{
		Unimplemented:       true,
		UnimplementedReason: text("pending API design"),
	})
	if reasoned[3] != "⚠️ **NOT IMPLEMENTED** - pending API design" {
		t.Fatalf("reason must be interpolated into the summary line, got %q", reasoned[3])
	}
	if reasoned[5] != want[5] {
		t.Fatalf("returns line must not change with a reason, got %q", reasoned[5])
	}
}

func TestAssembleParamsBullets(t *testing.T) {
	lines := NewService(nil).Assemble(interfaces.DocSpec{
		Params: []interfaces.Param{
			{Name: "x", Description: "first operand"},
			{Name: "y", Description: "second operand"},
		},
	})

	want := []string{
		"",
		"# Parameters",
		"* `x` - first operand",
		"* `y` - second operand",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("parameters section mismatch:\nwant %#v\ngot  %#v", want, lines)
	}
}

func TestAssembleSeeAlsoBullets(t *testing.T) {
	lines := NewService(nil).Assemble(interfaces.DocSpec{SeeAlso: text("foo, bar::baz")})

	want := []string{
		"",
		"# See Also",
		"* [`foo`]",
		"* [`bar::baz`]",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("see also section mismatch:\nwant %#v\ngot  %#v", want, lines)
	}
}

func TestAssembleExampleFence(t *testing.T) {
	lines := NewService(nil).Assemble(interfaces.DocSpec{Example: text("Add(1, 2)")})

	want := []string{"", "# Example", "", "```go", "Add(1, 2)", "```"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("example section mismatch:\nwant %#v\ngot  %#v", want, lines)
	}
}

func TestAssembleSectionOrdering(t *testing.T) {
	spec := interfaces.DocSpec{
		Summary:             text("Adds two numbers"),
		Returns:             text("the sum"),
		Params:              []interfaces.Param{{Name: "x", Description: "first operand"}},
		Deprecated:          text("use AddChecked"),
		DeprecatedSince:     text("1.2.0"),
		Since:               text("0.9.0"),
		Example:             text("Add(1, 2)"),
		Panics:              text("never"),
		Safety:              text("goroutine safe"),
		SeeAlso:             text("Sub"),
		Invariants:          text("result is stable"),
		Note:                text("prefer AddChecked"),
		Unimplemented:       true,
		UnimplementedReason: text("still a stub"),
	}

	want := []string{
		"",
		"⚠️ **WARNING: NOT IMPLEMENTED**",
		"",
		"⚠️ **NOT IMPLEMENTED** - still a stub",
		"",
		"This function will panic when called",
		"",
		"",
		"⚠️ **DEPRECATED**",
		"**Deprecated since 1.2.0:** use AddChecked",
		"",
		"Adds two numbers",
		"",
		"**Since:** 0.9.0",
		"",
		"# Parameters",
		"* `x` - first operand",
		"",
		"# Returns",
		"the sum",
		"",
		"# Example",
		"",
		"```go",
		"Add(1, 2)",
		"```",
		"",
		"# Panics",
		"never",
		"",
		"# Safety",
		"goroutine safe",
		"",
		"# See Also",
		"* [`Sub`]",
		"",
		"# Invariants",
		"result is stable",
		"",
		"# Note",
		"⚠️ prefer AddChecked",
	}

	got := NewService(nil).Assemble(spec)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("full ordering mismatch:\nwant %#v\ngot  %#v", want, got)
	}
}

func TestSeeAlsoEntriesTrimAndPreserveOrder(t *testing.T) {
	entries := SeeAlsoEntries("  foo ,bar::baz,  qux  ")
	want := []string{"foo", "bar::baz", "qux"}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("entry splitting mismatch: %#v", entries)
	}
}
