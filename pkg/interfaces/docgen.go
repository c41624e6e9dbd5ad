package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Interpreter parses the raw argument text of a document directive into a
// DocSpec. Implementations must fail with a positioned grammar error rather
// than guessing; partial specs are never returned alongside an error.
type Interpreter interface {
	Interpret(args string) (DocSpec, error)
}

// Assembler expands a DocSpec into the ordered documentation line sequence.
// Assembly is pure: the same DocSpec always yields the same lines, and the
// spec is never mutated.
type Assembler interface {
	Assemble(spec DocSpec) []string
}

// AnnotationService discovers document directives in Go source, interprets
// them, and splices the assembled documentation above the annotated function
// while passing the rest of the file through byte-identical.
type AnnotationService interface {
	// ProcessSource rewrites a single file's source bytes. A grammar or
	// structural error aborts the whole file: no partial rewrite is returned.
	ProcessSource(ctx context.Context, filename string, src []byte) (*FileResult, error)

	// ProcessFile loads path from disk and delegates to ProcessSource.
	ProcessFile(ctx context.Context, path string) (*FileResult, error)

	// GenerateDirectory walks dir for Go files matching the options, rewriting
	// annotated files in place. Failures are collected per file; one broken
	// file never blocks its siblings.
	GenerateDirectory(ctx context.Context, dir string, opts GenerateOptions) (*GenerateResult, error)
}

// DocRenderer converts assembled documentation into preview HTML.
type DocRenderer interface {
	// Render produces an HTML fragment for a single documented function.
	Render(ctx context.Context, doc FunctionDoc) ([]byte, error)

	// RenderFile produces a standalone HTML page covering every documented
	// function discovered in the file.
	RenderFile(ctx context.Context, result *FileResult) ([]byte, error)
}

// ManifestStore records per-file content checksums so repeated generate runs
// can skip files that have not changed since they were last rewritten.
// Implementations never influence emitted documentation, only which files a
// run visits.
type ManifestStore interface {
	// Lookup returns the stored record for path, or nil when the file has not
	// been seen before.
	Lookup(ctx context.Context, path string) (*ManifestRecord, error)

	// Record upserts the record for rec.Path.
	Record(ctx context.Context, rec ManifestRecord) error

	Close() error
}

// ManifestRecord is one row of the incremental-build manifest.
type ManifestRecord struct {
	ID          uuid.UUID
	Path        string
	Checksum    string
	GeneratedAt time.Time
}

// FunctionDoc captures one documented function inside a processed file.
type FunctionDoc struct {
	// Function is the declared name of the annotated function.
	Function string
	// Line is the 1-based line of the function declaration in the original source.
	Line int
	// Spec is the interpreted directive payload.
	Spec DocSpec
	// Lines is the assembled documentation block, one entry per rendered line.
	Lines []string
}

// FileResult reports the outcome of processing a single source file.
type FileResult struct {
	// Path of the processed file as supplied by the caller.
	Path string
	// Source holds the rewritten file bytes. When no directive matched it is
	// identical to the input.
	Source []byte
	// Docs lists the documented functions in source order.
	Docs []FunctionDoc
	// Changed reports whether Source differs from the input bytes.
	Changed bool
}

// GenerateOptions tunes a directory generation run.
type GenerateOptions struct {
	// Pattern is the glob applied to base filenames, defaulting to *.go.
	Pattern string
	// Recursive walks nested directories when true.
	Recursive bool
	// DryRun interprets and assembles but leaves files on disk untouched.
	DryRun bool
	// UseManifest consults the manifest store to skip unchanged files.
	UseManifest bool
}

// GenerateResult summarises a directory generation run.
type GenerateResult struct {
	// RunID is a deterministic identifier derived from the run's inputs.
	RunID uuid.UUID
	// Processed lists every file that was interpreted this run.
	Processed []string
	// Rewritten lists the files whose bytes changed (or would change, under DryRun).
	Rewritten []string
	// Skipped lists files bypassed via the manifest.
	Skipped []string
	// Errors collects per-file failures; the run continues past them.
	Errors []FileError
}

// FileError associates a failure with the file that produced it.
type FileError struct {
	Path string
	Err  error
}
