// Package bootstrap builds configured docgen modules for the CLI entry points.
package bootstrap

import (
	"fmt"
	"strings"

	docgen "github.com/goliatone/go-docgen"
	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/internal/validation"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

// Options captures configuration for docgen CLI bootstraps.
type Options struct {
	ConfigPath     string
	Pattern        string
	Recursive      *bool
	UseManifest    bool
	ManifestDSN    string
	Preview        bool
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the docgen module and the services the CLI commands consume.
type Module struct {
	Module   *docgen.Module
	Service  interfaces.AnnotationService
	Renderer interfaces.DocRenderer
	Logger   interfaces.Logger
}

// BuildModule constructs a docgen module configured for CLI operations. A
// docgen.json document at Options.ConfigPath is validated and overlaid on the
// defaults before flag-level overrides apply.
func BuildModule(opts Options) (*Module, error) {
	cfg := docgen.DefaultConfig()

	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		project, err := validation.LoadProject(path)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		cfg = project.Apply(cfg)
	}

	if pattern := strings.TrimSpace(opts.Pattern); pattern != "" {
		cfg.Generate.Pattern = pattern
	}
	if opts.Recursive != nil {
		cfg.Generate.Recursive = *opts.Recursive
	}
	if opts.UseManifest {
		cfg.Features.Manifest = true
		if dsn := strings.TrimSpace(opts.ManifestDSN); dsn != "" {
			cfg.Manifest.DSN = dsn
		}
	}
	if opts.Preview {
		cfg.Features.Preview = true
	}

	cfg.Features.Logger = true
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	diOpts := []docgen.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, docgen.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := docgen.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise docgen module: %w", err)
	}

	return &Module{
		Module:   module,
		Service:  module.Annotations(),
		Renderer: module.Renderer(),
		Logger:   logging.ModuleLogger(module.Container().LoggerProvider(), "docgen.cli"),
	}, nil
}
