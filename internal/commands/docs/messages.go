package docscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	generateMessageType = "docgen.docs.generate"
	previewMessageType  = "docgen.docs.preview"
)

// GenerateCommand triggers a documentation generation run over the provided
// Directory. Options map directly onto interfaces.GenerateOptions.
type GenerateCommand struct {
	// Directory selects the filesystem path (relative or absolute) to scan for annotated Go files.
	Directory string `json:"directory"`
	// Pattern narrows the run to files matching the glob (defaults to *.go).
	Pattern string `json:"pattern,omitempty"`
	// Recursive walks nested directories when true.
	Recursive bool `json:"recursive,omitempty"`
	// DryRun reports pending rewrites without touching files on disk.
	DryRun bool `json:"dry_run,omitempty"`
	// UseManifest skips files whose recorded checksum is unchanged.
	UseManifest bool `json:"use_manifest,omitempty"`
}

// Type implements command.Message.
func (GenerateCommand) Type() string { return generateMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd GenerateCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docgen.docs.generate.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.Pattern, validation.By(func(value any) error {
			pattern := strings.TrimSpace(value.(string))
			if pattern != "" && !strings.HasSuffix(pattern, ".go") {
				return validation.NewError("docgen.docs.generate.pattern_invalid", "pattern must match Go files")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}

// PreviewCommand renders one annotated source file to an HTML preview at
// Output without rewriting the source on disk.
type PreviewCommand struct {
	// Path selects the Go source file to preview.
	Path string `json:"path"`
	// Output selects where the rendered HTML is written.
	Output string `json:"output"`
}

// Type implements command.Message.
func (PreviewCommand) Type() string { return previewMessageType }

// Validate ensures both file paths are present before handlers execute.
func (cmd PreviewCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docgen.docs.preview.path_required", "path is required")
			}
			return nil
		})),
		validation.Field(&cmd.Output, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docgen.docs.preview.output_required", "output is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}
