package interpreter

import (
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

func interpret(t *testing.T, args string) interfaces.DocSpec {
	t.Helper()
	spec, err := NewService(nil).Interpret(args)
	if err != nil {
		t.Fatalf("Interpret(%q): %v", args, err)
	}
	return spec
}

func interpretErr(t *testing.T, args string) error {
	t.Helper()
	_, err := NewService(nil).Interpret(args)
	if err == nil {
		t.Fatalf("Interpret(%q): expected error", args)
	}
	return err
}

func TestInterpretEmptyArguments(t *testing.T) {
	spec := interpret(t, "")
	if !spec.IsZero() {
		t.Fatalf("empty arguments should produce a zero spec: %#v", spec)
	}
}

func TestInterpretSummaryOnly(t *testing.T) {
	spec := interpret(t, `summary = "Adds two numbers"`)
	if !spec.Summary.IsSet() || spec.Summary.Value != "Adds two numbers" {
		t.Fatalf("summary mismatch: %#v", spec.Summary)
	}
	if spec.Returns.IsSet() || len(spec.Params) != 0 || spec.Unimplemented {
		t.Fatalf("unexpected extra fields populated: %#v", spec)
	}
}

func TestInterpretAllFieldsAnyOrder(t *testing.T) {
	spec := interpret(t, `note = "careful",
		returns = "the sum",
		see_also = "Sub, math::Mul",
		summary = "Adds two numbers",
		deprecated = "use AddChecked",
		deprecated_since = "1.2.0",
		since = "0.9.0",
		example = "Add(1, 2)",
		panics = "never",
		safety = "goroutine safe",
		invariants = "result >= x when y >= 0",
		params = { "x": "first operand", "y": "second operand" }`)

	if spec.Summary.Value != "Adds two numbers" {
		t.Fatalf("summary mismatch: %q", spec.Summary.Value)
	}
	if spec.Returns.Value != "the sum" {
		t.Fatalf("returns mismatch: %q", spec.Returns.Value)
	}
	if spec.Deprecated.Value != "use AddChecked" || spec.DeprecatedSince.Value != "1.2.0" {
		t.Fatalf("deprecation mismatch: %#v", spec)
	}
	if spec.Since.Value != "0.9.0" || spec.Example.Value != "Add(1, 2)" {
		t.Fatalf("since/example mismatch: %#v", spec)
	}
	if spec.Panics.Value != "never" || spec.Safety.Value != "goroutine safe" {
		t.Fatalf("panics/safety mismatch: %#v", spec)
	}
	if spec.SeeAlso.Value != "Sub, math::Mul" || spec.Invariants.Value == "" || spec.Note.Value != "careful" {
		t.Fatalf("see_also/invariants/note mismatch: %#v", spec)
	}
	if len(spec.Params) != 2 || spec.Params[0].Name != "x" || spec.Params[1].Name != "y" {
		t.Fatalf("params mismatch: %#v", spec.Params)
	}
	if spec.Unimplemented {
		t.Fatalf("unimplemented flag should be clear")
	}
}

func TestInterpretParamsPreserveOrderAndDuplicates(t *testing.T) {
	spec := interpret(t, `params = { "n": "count", "n": "count again", "m": "other" }`)
	if len(spec.Params) != 3 {
		t.Fatalf("expected 3 params, got %d", len(spec.Params))
	}
	if spec.Params[0].Description != "count" || spec.Params[1].Description != "count again" {
		t.Fatalf("duplicate names must be preserved in order: %#v", spec.Params)
	}
	if spec.Params[2].Name != "m" {
		t.Fatalf("param order mismatch: %#v", spec.Params)
	}
}

func TestInterpretTrailingCommas(t *testing.T) {
	spec := interpret(t, `summary = "ok", params = { "x": "first", }, returns = "value",`)
	if spec.Summary.Value != "ok" || spec.Returns.Value != "value" {
		t.Fatalf("trailing commas should be accepted: %#v", spec)
	}
	if len(spec.Params) != 1 || spec.Params[0].Name != "x" {
		t.Fatalf("params mismatch: %#v", spec.Params)
	}
}

func TestInterpretExplicitEmptyStringStaysSet(t *testing.T) {
	spec := interpret(t, `summary = ""`)
	if !spec.Summary.IsSet() {
		t.Fatalf("explicit empty string must register as set")
	}
	if spec.Summary.Value != "" {
		t.Fatalf("expected empty value, got %q", spec.Summary.Value)
	}
}

func TestInterpretUnimplementedBare(t *testing.T) {
	spec := interpret(t, "unimplemented")
	if !spec.Unimplemented {
		t.Fatalf("expected unimplemented flag")
	}
	if spec.UnimplementedReason.IsSet() {
		t.Fatalf("bare form must not carry a reason: %#v", spec.UnimplementedReason)
	}
}

func TestInterpretUnimplementedWithReason(t *testing.T) {
	spec := interpret(t, `unimplemented = "pending API design"`)
	if !spec.Unimplemented || spec.UnimplementedReason.Value != "pending API design" {
		t.Fatalf("unimplemented reason mismatch: %#v", spec)
	}
	if spec.Summary.IsSet() || len(spec.Params) != 0 {
		t.Fatalf("special form must not populate other fields: %#v", spec)
	}
}

func TestInterpretUnimplementedRejectsTrailingTokens(t *testing.T) {
	for _, args := range []string{
		`unimplemented, summary = "x"`,
		`unimplemented = "reason", summary = "x"`,
		`unimplemented summary`,
	} {
		err := interpretErr(t, args)
		if !strings.Contains(err.Error(), "unimplemented flag") {
			t.Fatalf("error for %q should mention the unimplemented flag: %v", args, err)
		}
	}
}

func TestInterpretUnknownKey(t *testing.T) {
	err := interpretErr(t, `bogus = "x"`)
	if !strings.Contains(err.Error(), `"bogus"`) {
		t.Fatalf("error should name the unknown key: %v", err)
	}
	if !strings.Contains(err.Error(), "summary") || !strings.Contains(err.Error(), "see_also") {
		t.Fatalf("error should list the valid keys: %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestInterpretDuplicateKeyRejected(t *testing.T) {
	err := interpretErr(t, `summary = "one", summary = "two"`)
	if !strings.Contains(err.Error(), `duplicate field "summary"`) {
		t.Fatalf("expected duplicate field diagnostic, got %v", err)
	}
}

func TestInterpretMissingEquals(t *testing.T) {
	err := interpretErr(t, `summary "Adds two numbers"`)
	if !strings.Contains(err.Error(), "'='") {
		t.Fatalf("expected missing '=' diagnostic, got %v", err)
	}
}

func TestInterpretUnbalancedParams(t *testing.T) {
	err := interpretErr(t, `params = { "x": "first operand"`)
	if !strings.Contains(err.Error(), "closing '}'") {
		t.Fatalf("expected unbalanced brace diagnostic, got %v", err)
	}
}

func TestInterpretErrorsCarryPosition(t *testing.T) {
	err := interpretErr(t, `summary = "ok", bogus = "x"`)
	if !strings.Contains(err.Error(), "1:16") {
		t.Fatalf("expected diagnostic anchored at 1:16, got %v", err)
	}
}

func TestInterpretNonStringValueRejected(t *testing.T) {
	err := interpretErr(t, `summary = summary`)
	if !strings.Contains(err.Error(), "string literal") {
		t.Fatalf("expected string literal diagnostic, got %v", err)
	}
}
