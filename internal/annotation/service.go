package annotation

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-docgen/internal/identity"
	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

const defaultPattern = "*.go"

// Service implements interfaces.AnnotationService on top of the interpreter
// and assembler. It owns no state beyond its collaborators, so one instance
// can serve a whole run.
type Service struct {
	interpreter interfaces.Interpreter
	assembler   interfaces.Assembler
	manifest    interfaces.ManifestStore
	logger      interfaces.Logger
	clock       func() time.Time
	marker      string
}

var _ interfaces.AnnotationService = (*Service)(nil)

// Option configures optional service collaborators.
type Option func(*Service)

// WithLogger injects the annotation logger. Defaults to the no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithManifest wires the incremental-build manifest store. Without it every
// generate run revisits every file.
func WithManifest(store interfaces.ManifestStore) Option {
	return func(s *Service) {
		s.manifest = store
	}
}

// WithClock overrides the timestamp source recorded on manifest rows.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMarker overrides the directive comment prefix. Defaults to
// DirectiveMarker.
func WithMarker(marker string) Option {
	return func(s *Service) {
		if marker = strings.TrimSpace(marker); marker != "" {
			s.marker = marker
		}
	}
}

// NewService builds the annotation service around the supplied interpreter
// and assembler.
func NewService(interp interfaces.Interpreter, asm interfaces.Assembler, opts ...Option) *Service {
	if interp == nil {
		panic("annotation: interpreter is required")
	}
	if asm == nil {
		panic("annotation: assembler is required")
	}
	s := &Service{
		interpreter: interp,
		assembler:   asm,
		logger:      logging.NoOp(),
		clock:       time.Now,
		marker:      DirectiveMarker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessSource rewrites one file's bytes. Directives are located through the
// file's comment groups; each must sit inside the doc comment of a function
// declaration. Any grammar or structural failure aborts the file: the
// returned result is nil and no partial rewrite is produced.
func (s *Service) ProcessSource(ctx context.Context, filename string, src []byte) (*interfaces.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "docgen annotation: source is not parsable").
			WithTextCode(CodeSourceUnparsable)
	}

	directives := collectDirectives(s.marker, file)
	result := &interfaces.FileResult{Path: filename, Source: src}
	if len(directives) == 0 {
		return result, nil
	}

	docs := declarationsByDoc(file)

	type insertion struct {
		offset int
		block  []byte
	}
	var insertions []insertion

	for _, dir := range directives {
		pos := fset.Position(dir.comment.Pos())

		if _, ok := directiveArgs(s.marker, dir.comment.Text); !ok {
			return nil, structuralError(ErrMalformedMarker, CodeMalformedMarker, pos)
		}

		decl, attached := docs[dir.group]
		if !attached {
			return nil, structuralError(ErrDanglingDirective, CodeDanglingDirective, pos)
		}
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			return nil, structuralError(ErrNotAFunction, CodeNotAFunction, pos)
		}

		spec, err := s.interpreter.Interpret(dir.args)
		if err != nil {
			return nil, positionedError(pos, err)
		}

		lines := s.assembler.Assemble(spec)
		doc := interfaces.FunctionDoc{
			Function: fn.Name.Name,
			Line:     fset.Position(fn.Pos()).Line,
			Spec:     spec,
			Lines:    lines,
		}
		result.Docs = append(result.Docs, doc)

		if len(lines) == 0 {
			continue
		}

		block := []byte(strings.Join(commentLines(lines), "\n") + "\n")
		offset := insertionOffset(fset, dir.group)

		// Re-running over already annotated output must be a no-op. A prior
		// run's block merges into this comment group, so it shows up as the
		// group's leading bytes.
		// TODO: detect and replace a stale block when directive arguments change.
		if bytes.HasPrefix(src[offset:], block) {
			continue
		}

		insertions = append(insertions, insertion{offset: offset, block: block})
		logging.WithSourceContext(s.logger, filename, fn.Name.Name, pos.Line).
			Debug("annotation.directive.assembled", "doc_lines", len(lines))
	}

	if len(insertions) == 0 {
		return result, nil
	}

	// Splice bottom-up so earlier offsets stay valid.
	sort.Slice(insertions, func(i, j int) bool { return insertions[i].offset > insertions[j].offset })

	out := src
	for _, ins := range insertions {
		rewritten := make([]byte, 0, len(out)+len(ins.block))
		rewritten = append(rewritten, out[:ins.offset]...)
		rewritten = append(rewritten, ins.block...)
		rewritten = append(rewritten, out[ins.offset:]...)
		out = rewritten
	}

	result.Source = out
	result.Changed = true
	return result, nil
}

// ProcessFile loads path from disk and delegates to ProcessSource.
func (s *Service) ProcessFile(ctx context.Context, path string) (*interfaces.FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.ProcessSource(ctx, path, src)
}

// GenerateDirectory walks dir for Go files matching the options and rewrites
// annotated files in place. Per-file failures are collected on the result so
// one broken file never blocks its siblings; only I/O-level walk failures
// abort the run.
func (s *Service) GenerateDirectory(ctx context.Context, dir string, opts interfaces.GenerateOptions) (*interfaces.GenerateResult, error) {
	pattern := strings.TrimSpace(opts.Pattern)
	if pattern == "" {
		pattern = defaultPattern
	}

	files, err := s.discover(dir, pattern, opts.Recursive)
	if err != nil {
		return nil, err
	}

	result := &interfaces.GenerateResult{
		RunID: identity.RunUUID(dir, pattern, files),
	}
	logger := logging.WithFields(s.logger, map[string]any{
		"run_id":    result.RunID,
		"directory": dir,
	})

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		src, err := os.ReadFile(path)
		if err != nil {
			result.Errors = append(result.Errors, interfaces.FileError{Path: path, Err: err})
			continue
		}

		if opts.UseManifest && s.manifest != nil {
			rec, err := s.manifest.Lookup(ctx, path)
			if err != nil {
				logger.Warn("annotation.manifest.lookup_failed", "path", path, "error", err)
			} else if rec != nil && rec.Checksum == Checksum(src) {
				result.Skipped = append(result.Skipped, path)
				continue
			}
		}

		res, err := s.ProcessSource(ctx, path, src)
		if err != nil {
			logger.Error("annotation.file.failed", "path", path, "error", err)
			result.Errors = append(result.Errors, interfaces.FileError{Path: path, Err: err})
			continue
		}
		result.Processed = append(result.Processed, path)

		if res.Changed {
			result.Rewritten = append(result.Rewritten, path)
			if !opts.DryRun {
				if err := writeFilePreservingMode(path, res.Source); err != nil {
					result.Errors = append(result.Errors, interfaces.FileError{Path: path, Err: err})
					continue
				}
			}
		}

		if opts.UseManifest && s.manifest != nil && !opts.DryRun {
			rec := interfaces.ManifestRecord{
				ID:          identity.FileUUID(path),
				Path:        path,
				Checksum:    Checksum(res.Source),
				GeneratedAt: s.clock().UTC(),
			}
			if err := s.manifest.Record(ctx, rec); err != nil {
				logger.Warn("annotation.manifest.record_failed", "path", path, "error", err)
			}
		}
	}

	logger.Info("annotation.generate.completed",
		"processed", len(result.Processed),
		"rewritten", len(result.Rewritten),
		"skipped", len(result.Skipped),
		"errors", len(result.Errors),
	)
	return result, nil
}

// Checksum returns the hex encoded SHA-256 digest the manifest keys file
// freshness on.
func Checksum(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// discover lists the files a run visits, sorted so run IDs are stable.
func (s *Service) discover(dir, pattern string, recursive bool) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !matchesPattern(pattern, entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
		sort.Strings(files)
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesPattern(pattern, d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func matchesPattern(pattern, name string) bool {
	if !strings.HasSuffix(name, ".go") {
		return false
	}
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func writeFilePreservingMode(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode)
}
