// Package di wires the docgen services together from runtime configuration,
// exposing options so host applications can override individual collaborators.
package di

import (
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-docgen/internal/annotation"
	"github.com/goliatone/go-docgen/internal/assembler"
	"github.com/goliatone/go-docgen/internal/interpreter"
	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/internal/logging/gologger"
	"github.com/goliatone/go-docgen/internal/manifest"
	"github.com/goliatone/go-docgen/internal/renderer"
	"github.com/goliatone/go-docgen/internal/runtimeconfig"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

// Container owns the wired docgen services for one configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	interp         interfaces.Interpreter
	asm            interfaces.Assembler
	annotationSvc  interfaces.AnnotationService
	rendererSvc    interfaces.DocRenderer
	manifestStore  interfaces.ManifestStore
	routeManager   *urlkit.RouteManager
}

// Option overrides a container collaborator before wiring completes.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithInterpreter overrides the directive interpreter.
func WithInterpreter(interp interfaces.Interpreter) Option {
	return func(c *Container) {
		c.interp = interp
	}
}

// WithAssembler overrides the documentation assembler.
func WithAssembler(asm interfaces.Assembler) Option {
	return func(c *Container) {
		c.asm = asm
	}
}

// WithAnnotationService overrides the annotation service.
func WithAnnotationService(svc interfaces.AnnotationService) Option {
	return func(c *Container) {
		c.annotationSvc = svc
	}
}

// WithRenderer overrides the preview renderer.
func WithRenderer(svc interfaces.DocRenderer) Option {
	return func(c *Container) {
		c.rendererSvc = svc
	}
}

// WithManifestStore overrides the incremental-build manifest store.
func WithManifestStore(store interfaces.ManifestStore) Option {
	return func(c *Container) {
		c.manifestStore = store
	}
}

// NewContainer validates cfg and wires the docgen services, applying option
// overrides before any defaults are constructed.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureManifest(); err != nil {
		return nil, err
	}
	c.configurePipeline()
	c.configureRenderer()

	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		c.loggerProvider = noopProvider{}
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		c.loggerProvider = noopProvider{}
	}
	return nil
}

func (c *Container) configureManifest() error {
	if c.manifestStore != nil || !c.Config.Features.Manifest {
		return nil
	}
	store, err := manifest.Open(c.Config.Manifest.DSN, logging.ManifestLogger(c.loggerProvider))
	if err != nil {
		return err
	}
	c.manifestStore = store
	return nil
}

func (c *Container) configurePipeline() {
	if c.interp == nil {
		c.interp = interpreter.NewService(logging.InterpreterLogger(c.loggerProvider))
	}
	if c.asm == nil {
		c.asm = assembler.NewService(logging.AssemblerLogger(c.loggerProvider))
	}
	if c.annotationSvc == nil {
		opts := []annotation.Option{
			annotation.WithLogger(logging.AnnotationLogger(c.loggerProvider)),
			annotation.WithMarker(c.Config.Directive.Marker),
		}
		if c.manifestStore != nil {
			opts = append(opts, annotation.WithManifest(c.manifestStore))
		}
		c.annotationSvc = annotation.NewService(c.interp, c.asm, opts...)
	}
}

func (c *Container) configureRenderer() {
	if c.rendererSvc != nil {
		return
	}

	var resolver renderer.SymbolResolver
	if ref := c.Config.Renderer.CrossRef; ref.RouteConfig != nil {
		c.routeManager = urlkit.NewRouteManager(ref.RouteConfig)
		resolver = renderer.NewURLKitResolver(renderer.URLKitResolverOptions{
			Manager:     c.routeManager,
			Group:       strings.TrimSpace(ref.Group),
			Route:       strings.TrimSpace(ref.Route),
			SymbolParam: strings.TrimSpace(ref.SymbolParam),
		})
	}

	c.rendererSvc = renderer.NewService(renderer.Options{
		HardWraps: c.Config.Renderer.HardWraps,
		Unsafe:    c.Config.Renderer.Unsafe,
		Resolver:  resolver,
	}, logging.RendererLogger(c.loggerProvider))
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Interpreter exposes the configured directive interpreter.
func (c *Container) Interpreter() interfaces.Interpreter {
	return c.interp
}

// Assembler exposes the configured documentation assembler.
func (c *Container) Assembler() interfaces.Assembler {
	return c.asm
}

// AnnotationService exposes the configured annotation service.
func (c *Container) AnnotationService() interfaces.AnnotationService {
	return c.annotationSvc
}

// Renderer exposes the configured preview renderer.
func (c *Container) Renderer() interfaces.DocRenderer {
	return c.rendererSvc
}

// ManifestStore exposes the configured manifest store, nil when the feature
// is disabled.
func (c *Container) ManifestStore() interfaces.ManifestStore {
	return c.manifestStore
}

// Close releases container owned resources.
func (c *Container) Close() error {
	if c == nil || c.manifestStore == nil {
		return nil
	}
	return c.manifestStore.Close()
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
