package docscmd

import "testing"

func TestGenerateCommandValidateRequiresDirectory(t *testing.T) {
	cmd := GenerateCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for missing directory")
	}

	cmd.Directory = "   "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for blank directory")
	}

	cmd.Directory = "./pkg"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
}

func TestGenerateCommandValidateRejectsNonGoPattern(t *testing.T) {
	cmd := GenerateCommand{Directory: "./pkg", Pattern: "*.md"}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for non-Go pattern")
	}

	cmd.Pattern = "*_service.go"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("expected valid pattern, got %v", err)
	}
}

func TestPreviewCommandValidateRequiresPaths(t *testing.T) {
	cmd := PreviewCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for missing paths")
	}

	cmd.Path = "pkg/math/add.go"
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error for missing output")
	}

	cmd.Output = "preview.html"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
}

func TestMessageTypesAreStable(t *testing.T) {
	if got := (GenerateCommand{}).Type(); got != "docgen.docs.generate" {
		t.Fatalf("unexpected generate type %q", got)
	}
	if got := (PreviewCommand{}).Type(); got != "docgen.docs.preview" {
		t.Fatalf("unexpected preview type %q", got)
	}
}
