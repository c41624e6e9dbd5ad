package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrDirectiveMarkerInvalid indicates a directive marker that is not a line comment.
var ErrDirectiveMarkerInvalid = errors.New("docgen config: directive marker must be a single-line comment prefix")

// ErrGeneratePatternInvalid indicates a file pattern that cannot match Go files.
var ErrGeneratePatternInvalid = errors.New("docgen config: generate pattern must match Go files")

// ErrManifestDSNRequired ensures the manifest feature always has a database to write to.
var ErrManifestDSNRequired = errors.New("docgen config: manifest dsn is required when the manifest feature is enabled")

// ErrCrossRefRouteRequired ensures cross references carry a complete route binding.
var ErrCrossRefRouteRequired = errors.New("docgen config: renderer cross references require a route group and route")
var ErrCommandTimeoutInvalid = errors.New("docgen config: command timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("docgen config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("docgen config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docgen config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docgen config: logging format is invalid")

// Config aggregates feature flags and component bindings for the docgen
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled   bool
	Directive DirectiveConfig
	Generate  GenerateConfig
	Renderer  RendererConfig
	Manifest  ManifestConfig
	Commands  CommandsConfig
	Logging   LoggingConfig
	Features  Features
}

// DirectiveConfig captures how annotations are spelled in source files.
type DirectiveConfig struct {
	Marker string
}

// GenerateConfig captures filesystem behaviour for generate runs.
type GenerateConfig struct {
	Pattern   string
	Recursive bool
	DryRun    bool
}

// RendererConfig captures behaviour for the HTML preview renderer.
type RendererConfig struct {
	HardWraps bool
	Unsafe    bool
	CrossRef  CrossRefConfig
}

// CrossRefConfig configures the go-urlkit backed see-also link resolution.
// When RouteConfig is nil, see-also entries render as in-page anchors.
type CrossRefConfig struct {
	RouteConfig *urlkit.Config
	Group       string
	Route       string
	SymbolParam string
}

// ManifestConfig captures the incremental-build store binding.
type ManifestConfig struct {
	DSN string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Manifest bool
	Preview  bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults for an in-place generate run.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Directive: DirectiveConfig{
			Marker: "//docgen:document",
		},
		Generate: GenerateConfig{
			Pattern:   "*.go",
			Recursive: true,
		},
		Renderer: RendererConfig{},
		Manifest: ManifestConfig{
			DSN: "file:docgen.db?_fk=1",
		},
		Commands: CommandsConfig{
			Enabled: true,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if marker := strings.TrimSpace(cfg.Directive.Marker); marker != "" {
		if !strings.HasPrefix(marker, "//") || strings.ContainsAny(marker, " \t(") {
			return fmt.Errorf("%w: %s", ErrDirectiveMarkerInvalid, marker)
		}
	}
	if pattern := strings.TrimSpace(cfg.Generate.Pattern); pattern != "" {
		if !strings.HasSuffix(pattern, ".go") {
			return fmt.Errorf("%w: %s", ErrGeneratePatternInvalid, pattern)
		}
	}
	if cfg.Features.Manifest {
		if strings.TrimSpace(cfg.Manifest.DSN) == "" {
			return ErrManifestDSNRequired
		}
	}
	if cfg.Features.Preview && cfg.Renderer.CrossRef.RouteConfig != nil {
		if strings.TrimSpace(cfg.Renderer.CrossRef.Group) == "" ||
			strings.TrimSpace(cfg.Renderer.CrossRef.Route) == "" {
			return ErrCrossRefRouteRequired
		}
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
