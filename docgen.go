// Package docgen generates function documentation from source annotations.
// Annotated Go files carry a //docgen:document(...) directive in a function's
// doc comment; the module interprets the directive arguments, assembles a
// deterministic documentation block, and splices it above the function.
package docgen

import (
	"github.com/goliatone/go-docgen/internal/di"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

// Interpreter exports the directive interpreter contract.
type Interpreter = interfaces.Interpreter

// Assembler exports the documentation assembler contract.
type Assembler = interfaces.Assembler

// AnnotationService exports the annotation processing contract.
type AnnotationService = interfaces.AnnotationService

// DocRenderer exports the HTML preview renderer contract.
type DocRenderer = interfaces.DocRenderer

// ManifestStore exports the incremental-build manifest contract.
type ManifestStore = interfaces.ManifestStore

// DocSpec exports the parsed directive record.
type DocSpec = interfaces.DocSpec

// Text exports the optional-string wrapper used by DocSpec.
type Text = interfaces.Text

// Param exports a documented parameter entry.
type Param = interfaces.Param

// FunctionDoc exports one function's assembled documentation.
type FunctionDoc = interfaces.FunctionDoc

// FileResult exports the outcome of processing one source file.
type FileResult = interfaces.FileResult

// GenerateOptions exports the options accepted by generate runs.
type GenerateOptions = interfaces.GenerateOptions

// GenerateResult exports the outcome of a generate run.
type GenerateResult = interfaces.GenerateResult

// Module represents the top level docgen runtime façade.
type Module struct {
	container *di.Container
}

// Option re-exports container wiring overrides.
type Option = di.Option

// WithLoggerProvider overrides the logger provider.
var WithLoggerProvider = di.WithLoggerProvider

// WithManifestStore overrides the manifest store.
var WithManifestStore = di.WithManifestStore

// WithRenderer overrides the preview renderer.
var WithRenderer = di.WithRenderer

// New constructs a docgen module using the provided configuration and
// optional wiring overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying wiring container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Annotations returns the configured annotation service.
func (m *Module) Annotations() AnnotationService {
	return m.container.AnnotationService()
}

// Interpreter returns the configured directive interpreter.
func (m *Module) Interpreter() Interpreter {
	return m.container.Interpreter()
}

// Assembler returns the configured documentation assembler.
func (m *Module) Assembler() Assembler {
	return m.container.Assembler()
}

// Renderer returns the configured preview renderer.
func (m *Module) Renderer() DocRenderer {
	return m.container.Renderer()
}

// Manifest returns the configured manifest store, nil when the feature is
// disabled.
func (m *Module) Manifest() ManifestStore {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ManifestStore()
}

// Close releases module owned resources.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
